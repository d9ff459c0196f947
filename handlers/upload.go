package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"photobook/models"
	"photobook/processing"
	"photobook/storage"

	"github.com/gin-gonic/gin"
)

const newAlbumMarker = "__new__"

// Upload takes a multipart batch of photos (optionally with paired
// videos), runs the ingestion pipeline and reports what happened.
// Processing failures only reduce the count; a catalog write failure
// fails the whole batch.
func Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	fileHeaders := form.File["photos"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, NoFilesResponse)
		return
	}

	albumID, ok := resolveAlbumID(c)
	if !ok {
		return
	}

	batch := processing.UploadBatch{
		Caption: c.PostForm("caption"),
		Hidden:  c.PostForm("hidden") == "1",
		AlbumID: albumID,
	}
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			log.Printf("Error opening upload %s: %v", fh.Filename, err)
			continue
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Printf("Error reading upload %s: %v", fh.Filename, err)
			continue
		}
		batch.Files = append(batch.Files, processing.UploadFile{Name: fh.Filename, Data: data})
	}

	result, err := processing.IngestUpload(storage.Get(), &batch)
	if err != nil {
		log.Printf("Batch insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"album_id":       albumID,
		"count":          result.Inserted,
		"skipped_videos": result.SkippedVideos,
	})
}

// resolveAlbumID reads the album choice from the form: empty for none,
// an existing album's ID, or the new-album marker plus a name.
func resolveAlbumID(c *gin.Context) (*uint64, bool) {
	raw := c.PostForm("album_id")
	switch raw {
	case "":
		return nil, true
	case newAlbumMarker:
		name := c.PostForm("new_album_name")
		if name == "" {
			return nil, true
		}
		album, err := models.AlbumCreate(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, DBError1Response)
			return nil, false
		}
		return &album.ID, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{"bad album_id"})
		return nil, false
	}
	if _, err = models.AlbumGet(id); err != nil {
		c.JSON(http.StatusNotFound, Response{"no such album"})
		return nil, false
	}
	return &id, true
}
