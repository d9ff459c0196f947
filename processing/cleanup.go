package processing

import (
	"log"

	"photobook/models"
	"photobook/storage"
)

// RemovePhotoFiles deletes the on-disk artifacts of deleted catalog
// rows: the original, both renditions and the paired video if any.
// Already-missing files are fine, and a failure on one photo's files
// doesn't block cleanup of the others.
func RemovePhotoFiles(store storage.StorageAPI, files []models.PhotoFiles) {
	for _, f := range files {
		jpgName := models.DerivedJpegName(f.StoredFilename)
		paths := []string{
			models.OriginalsDir + "/" + f.StoredFilename,
			models.ThumbnailsDir + "/" + jpgName,
			models.DisplayDir + "/" + jpgName,
		}
		if f.VideoStoredFilename != "" {
			paths = append(paths, models.VideosDir+"/"+f.VideoStoredFilename)
		}
		for _, path := range paths {
			if err := store.DeleteIfExists(path); err != nil {
				log.Printf("Error removing %s: %v", path, err)
			}
		}
	}
}
