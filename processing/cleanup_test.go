package processing

import (
	"bytes"
	"testing"

	"photobook/models"
	"photobook/storage"
)

func TestRemovePhotoFiles(t *testing.T) {
	store := storage.NewDiskStorage(t.TempDir())
	existing := models.PhotoFiles{
		StoredFilename:      "abc.jpg",
		VideoStoredFilename: "abc.mov",
	}
	for _, path := range []string{
		models.OriginalsDir + "/abc.jpg",
		models.ThumbnailsDir + "/abc.jpg",
		models.DisplayDir + "/abc.jpg",
		models.VideosDir + "/abc.mov",
	} {
		if _, err := store.Save(path, bytes.NewReader([]byte("x"))); err != nil {
			t.Fatal(err)
		}
	}
	// One photo with files present, one whose files are already gone
	RemovePhotoFiles(store, []models.PhotoFiles{
		existing,
		{StoredFilename: "missing.png", VideoStoredFilename: "missing.mov"},
	})
	for _, path := range []string{
		models.OriginalsDir + "/abc.jpg",
		models.ThumbnailsDir + "/abc.jpg",
		models.DisplayDir + "/abc.jpg",
		models.VideosDir + "/abc.mov",
	} {
		if _, err := store.Load(path, &bytes.Buffer{}); err == nil {
			t.Errorf("%s still exists after cleanup", path)
		}
	}
}

func TestRemovePhotoFiles_Idempotent(t *testing.T) {
	store := storage.NewDiskStorage(t.TempDir())
	files := []models.PhotoFiles{{StoredFilename: "gone.jpg"}}
	// Both calls must be no-ops without errors surfacing
	RemovePhotoFiles(store, files)
	RemovePhotoFiles(store, files)
}
