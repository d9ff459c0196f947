package models

import (
	"path/filepath"
	"testing"
	"time"

	"photobook/config"
	"photobook/db"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	db.Init()
	Init()
}

func mustInsert(t *testing.T, photos ...Photo) []Photo {
	t.Helper()
	if err := InsertPhotosBatch(photos); err != nil {
		t.Fatal(err)
	}
	return photos
}

func TestDerivedJpegName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abcdef.heic", "abcdef.jpg"},
		{"abcdef.jpg", "abcdef.jpg"},
		{"abcdef.PNG", "abcdef.jpg"},
		{"noext", "noext.jpg"},
	}
	for _, tt := range tests {
		if got := DerivedJpegName(tt.in); got != tt.want {
			t.Errorf("DerivedJpegName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInsertPhotosBatch_Atomic(t *testing.T) {
	setupTestDB(t)
	// Second record violates the unique stored filename index; the
	// whole batch must roll back.
	err := InsertPhotosBatch([]Photo{
		{StoredFilename: "dup.jpg", TakenAt: 1},
		{StoredFilename: "dup.jpg", TakenAt: 2},
	})
	if err == nil {
		t.Fatal("expected a storage error for a conflicting batch")
	}
	var count int64
	if err := db.Instance.Model(&Photo{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("rows after failed batch = %d, want 0", count)
	}
}

func TestPhotoList_FiltersAndPagination(t *testing.T) {
	setupTestDB(t)
	album, err := AlbumCreate("Holidays")
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now().Unix()
	mustInsert(t,
		Photo{StoredFilename: "a.jpg", TakenAt: now - 3, AlbumID: &album.ID},
		Photo{StoredFilename: "b.jpg", TakenAt: now - 2, Hidden: true},
		Photo{StoredFilename: "c.jpg", TakenAt: now - 1},
	)

	tests := []struct {
		name      string
		filter    PhotoFilter
		wantTotal int64
		wantFirst string
	}{
		{"all", PhotoFilter{}, 3, "c.jpg"},
		{"feed excludes hidden", PhotoFilter{FeedOnly: true}, 2, "c.jpg"},
		{"by album", PhotoFilter{AlbumID: &album.ID}, 1, "a.jpg"},
		{"unassigned", PhotoFilter{UnassignedOnly: true}, 2, "c.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photos, total, err := PhotoList(tt.filter, 1, 10)
			if err != nil {
				t.Fatal(err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if len(photos) == 0 || photos[0].StoredFilename != tt.wantFirst {
				t.Errorf("first = %v, want %s", photos, tt.wantFirst)
			}
		})
	}

	// Page 2 of size 2 over all photos holds the single oldest photo
	photos, total, err := PhotoList(PhotoFilter{}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(photos) != 1 || photos[0].StoredFilename != "a.jpg" {
		t.Errorf("page 2 = %v (total %d), want [a.jpg] (3)", photos, total)
	}
}

func TestPhotosDelete_ReturnsFiles(t *testing.T) {
	setupTestDB(t)
	photos := mustInsert(t,
		Photo{StoredFilename: "one.jpg", VideoStoredFilename: "one.mov", TakenAt: 1},
		Photo{StoredFilename: "two.png", TakenAt: 2},
	)
	files, err := PhotosDelete([]uint64{photos[0].ID, photos[1].ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %d, want 2", len(files))
	}
	byName := map[string]string{}
	for _, f := range files {
		byName[f.StoredFilename] = f.VideoStoredFilename
	}
	if byName["one.jpg"] != "one.mov" || byName["two.png"] != "" {
		t.Errorf("unexpected files: %v", files)
	}
	var count int64
	db.Instance.Model(&Photo{}).Count(&count)
	if count != 0 {
		t.Errorf("rows after delete = %d, want 0", count)
	}
}

func TestPhotoSetAlbumAndHidden(t *testing.T) {
	setupTestDB(t)
	album, err := AlbumCreate("Pets")
	if err != nil {
		t.Fatal(err)
	}
	photos := mustInsert(t, Photo{StoredFilename: "p.jpg", TakenAt: 1})
	if err := PhotoSetAlbum(photos[0].ID, &album.ID); err != nil {
		t.Fatal(err)
	}
	if err := PhotoSetHidden(photos[0].ID, true); err != nil {
		t.Fatal(err)
	}
	photo, err := PhotoGet(photos[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if photo.AlbumID == nil || *photo.AlbumID != album.ID || !photo.Hidden {
		t.Errorf("photo = %+v, want album %d and hidden", photo, album.ID)
	}
	if photo.Album.Name != "Pets" {
		t.Errorf("album name = %s, want Pets", photo.Album.Name)
	}
	// Clearing the album leaves the photo unassigned
	if err := PhotoSetAlbum(photos[0].ID, nil); err != nil {
		t.Fatal(err)
	}
	photo, _ = PhotoGet(photos[0].ID)
	if photo.AlbumID != nil {
		t.Errorf("AlbumID = %v, want nil", photo.AlbumID)
	}
}
