package processing

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"photobook/config"
	"photobook/db"
	"photobook/models"
	"photobook/storage"
)

func setupPipelineTest(t *testing.T) storage.StorageAPI {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	models.Init()
	Init()
	return storage.NewDiskStorage(t.TempDir())
}

func assertStored(t *testing.T, store storage.StorageAPI, path string) {
	t.Helper()
	if _, err := store.Load(path, &bytes.Buffer{}); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func TestIngestUpload_EndToEnd(t *testing.T) {
	store := setupPipelineTest(t)
	batch := &UploadBatch{
		Files: []UploadFile{
			{Name: "A.jpg", Data: jpegWithDateTimeOriginal(t, "2024:01:01 00:00:00")},
			{Name: "A.mov", Data: []byte("pretend video bytes")},
			{Name: "B.heic", Data: []byte("corrupt bytes")},
			{Name: "c.mov", Data: []byte("orphan video")},
		},
	}
	result, err := IngestUpload(store, batch)
	if err != nil {
		t.Fatal(err)
	}
	if result.Inserted != 1 {
		t.Errorf("Inserted = %d, want 1", result.Inserted)
	}
	if result.SkippedVideos != 1 {
		t.Errorf("SkippedVideos = %d, want 1", result.SkippedVideos)
	}
	if result.FailedProcessing != 1 {
		t.Errorf("FailedProcessing = %d, want 1", result.FailedProcessing)
	}

	photos, total, err := models.PhotoList(models.PhotoFilter{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(photos) != 1 {
		t.Fatalf("catalog rows = %d (total %d), want 1", len(photos), total)
	}
	photo := photos[0]
	if photo.OriginalFilename != "A.jpg" {
		t.Errorf("OriginalFilename = %s, want A.jpg", photo.OriginalFilename)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	if photo.TakenAt != want {
		t.Errorf("TakenAt = %d, want %d", photo.TakenAt, want)
	}
	if photo.VideoStoredFilename == "" {
		t.Fatal("paired video was not recorded")
	}
	imageStem := strings.TrimSuffix(photo.StoredFilename, filepath.Ext(photo.StoredFilename))
	videoStem := strings.TrimSuffix(photo.VideoStoredFilename, filepath.Ext(photo.VideoStoredFilename))
	if imageStem != videoStem {
		t.Errorf("video stem %s does not match image stem %s", videoStem, imageStem)
	}

	assertStored(t, store, photo.GetOriginalPath())
	assertStored(t, store, photo.GetThumbPath())
	assertStored(t, store, photo.GetDisplayPath())
	assertStored(t, store, photo.GetVideoPath())
}

func TestIngestUpload_TakenAtFallback(t *testing.T) {
	store := setupPipelineTest(t)
	before := time.Now().Unix()
	result, err := IngestUpload(store, &UploadBatch{
		Files: []UploadFile{{Name: "plain.jpg", Data: encodeTestJPEG(t, 20, 20)}},
	})
	after := time.Now().Unix()
	if err != nil {
		t.Fatal(err)
	}
	if result.Inserted != 1 {
		t.Fatalf("Inserted = %d, want 1", result.Inserted)
	}
	photos, _, err := models.PhotoList(models.PhotoFilter{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if photos[0].TakenAt < before || photos[0].TakenAt > after {
		t.Errorf("TakenAt = %d, want ingestion time between %d and %d", photos[0].TakenAt, before, after)
	}
}

func TestIngestUpload_BatchMetadata(t *testing.T) {
	store := setupPipelineTest(t)
	album, err := models.AlbumCreate("Trip")
	if err != nil {
		t.Fatal(err)
	}
	_, err = IngestUpload(store, &UploadBatch{
		Files:   []UploadFile{{Name: "x.jpg", Data: encodeTestJPEG(t, 20, 20)}},
		Caption: "first day",
		AlbumID: &album.ID,
		Hidden:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	photos, _, err := models.PhotoList(models.PhotoFilter{}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	photo := photos[0]
	if photo.Caption != "first day" || !photo.Hidden {
		t.Errorf("metadata not applied: caption=%q hidden=%v", photo.Caption, photo.Hidden)
	}
	if photo.AlbumID == nil || *photo.AlbumID != album.ID {
		t.Errorf("AlbumID = %v, want %d", photo.AlbumID, album.ID)
	}
	// Hidden photos stay out of the feed but remain in the library
	_, feedTotal, err := models.PhotoList(models.PhotoFilter{FeedOnly: true}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if feedTotal != 0 {
		t.Errorf("feed total = %d, want 0 for a hidden photo", feedTotal)
	}
}
