package processing

import (
	"bytes"
	"encoding/hex"
	"log"
	"path/filepath"
	"strings"
	"time"

	"photobook/models"
	"photobook/storage"

	"github.com/google/uuid"
)

// UploadBatch is one upload request: a set of named blobs plus the
// metadata applied to every resulting photo.
type UploadBatch struct {
	Files   []UploadFile
	Caption string
	AlbumID *uint64
	Hidden  bool
}

type IngestResult struct {
	Inserted         int
	SkippedVideos    int
	FailedProcessing int
}

// newStoredFilename assigns the opaque on-disk name for an uploaded
// file. Only the (lowercased) extension survives from user input.
func newStoredFilename(originalName string) string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + strings.ToLower(filepath.Ext(originalName))
}

// IngestUpload runs the whole pipeline for one upload batch: pair the
// files into units, process each image, write the original, renditions
// and paired video, then insert all catalog records in one transaction.
// Per-unit failures are logged and counted; only a catalog write
// failure is returned as an error, in which case nothing was inserted.
func IngestUpload(store storage.StorageAPI, batch *UploadBatch) (IngestResult, error) {
	units, skippedVideos := PairFiles(batch.Files)
	result := IngestResult{SkippedVideos: skippedVideos}

	var photos []models.Photo
	for _, unit := range units {
		photo, ok := ingestUnit(store, &unit, batch)
		if !ok {
			result.FailedProcessing++
			continue
		}
		photos = append(photos, photo)
	}

	if err := models.InsertPhotosBatch(photos); err != nil {
		return result, err
	}
	result.Inserted = len(photos)
	return result, nil
}

func ingestUnit(store storage.StorageAPI, unit *UploadUnit, batch *UploadBatch) (models.Photo, bool) {
	photo := models.Photo{
		StoredFilename:   newStoredFilename(unit.Image.Name),
		OriginalFilename: unit.Image.Name,
		Caption:          batch.Caption,
		AlbumID:          batch.AlbumID,
		Hidden:           batch.Hidden,
	}
	start := time.Now()
	if _, err := store.Save(photo.GetOriginalPath(), bytes.NewReader(unit.Image.Data)); err != nil {
		log.Printf("Error saving original for %s: %v", unit.Image.Name, err)
		return photo, false
	}
	// From here on a failure leaves the original behind as an orphan;
	// those are not reconciled automatically.
	processed, err := ProcessImage(unit.Image.Data)
	if err != nil {
		log.Printf("Error processing %s: %v", unit.Image.Name, err)
		return photo, false
	}
	if _, err = store.Save(photo.GetDisplayPath(), bytes.NewReader(processed.Display)); err != nil {
		log.Printf("Error saving display rendition for %s: %v", unit.Image.Name, err)
		return photo, false
	}
	if _, err = store.Save(photo.GetThumbPath(), bytes.NewReader(processed.Thumb)); err != nil {
		log.Printf("Error saving thumbnail for %s: %v", unit.Image.Name, err)
		return photo, false
	}
	if processed.TakenAt != nil {
		photo.TakenAt = processed.TakenAt.Unix()
	} else {
		photo.TakenAt = time.Now().Unix()
	}
	if unit.Video != nil {
		stem := strings.TrimSuffix(photo.StoredFilename, filepath.Ext(photo.StoredFilename))
		photo.VideoStoredFilename = stem + strings.ToLower(filepath.Ext(unit.Video.Name))
		if _, err = store.Save(photo.GetVideoPath(), bytes.NewReader(unit.Video.Data)); err != nil {
			log.Printf("Error saving paired video for %s: %v", unit.Video.Name, err)
			return photo, false
		}
	}
	log.Printf("Processed %s in %v", unit.Image.Name, time.Since(start))
	return photo, true
}
