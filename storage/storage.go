package storage

import (
	"io"
	"net/http"

	"photobook/config"
	"photobook/models"
)

// StorageAPI is write-once file storage keyed by a relative path
// ("photos/<name>", "thumbnails/<name>", ...).
type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	DeleteIfExists(path string) error
}

var defaultStorage StorageAPI

func Init() {
	disk := NewDiskStorage(config.DATA_DIR)
	for _, dir := range []string{
		models.OriginalsDir, models.ThumbnailsDir, models.DisplayDir, models.VideosDir,
	} {
		if err := disk.EnsureDirExists(dir); err != nil {
			panic(err)
		}
	}
	defaultStorage = disk
}

func Get() StorageAPI {
	if defaultStorage == nil {
		panic("storage not initialized")
	}
	return defaultStorage
}
