package handlers

import (
	"net/http"

	"photobook/models"
	"photobook/processing"
	"photobook/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type PhotoInfo struct {
	ID            uint64  `json:"id"`
	Filename      string  `json:"filename"`
	OriginalName  string  `json:"original_name"`
	Caption       string  `json:"caption"`
	AlbumID       *uint64 `json:"album_id"`
	AlbumName     string  `json:"album_name"`
	Hidden        bool    `json:"hidden"`
	VideoFilename string  `json:"video_filename"`
	TakenAt       int64   `json:"taken_at"`
	UploadedAt    int64   `json:"uploaded_at"`
}

type PhotoListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	AlbumID  uint64 `form:"album_id"`
	Feed     bool   `form:"feed"`
}

type PhotoIDRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

type PhotoAlbumRequest struct {
	ID      uint64 `form:"id" binding:"required"`
	AlbumID uint64 `form:"album_id"` // 0 clears the album
}

type PhotoHiddenRequest struct {
	ID     uint64 `form:"id" binding:"required"`
	Hidden bool   `form:"hidden"`
}

type PhotoIDsRequest struct {
	IDs []uint64 `json:"ids" binding:"required"`
}

type PhotoBulkAlbumRequest struct {
	IDs     []uint64 `json:"ids" binding:"required"`
	AlbumID uint64   `json:"album_id"` // 0 clears the album
}

func photoInfoFrom(p *models.Photo) PhotoInfo {
	return PhotoInfo{
		ID:            p.ID,
		Filename:      p.StoredFilename,
		OriginalName:  p.OriginalFilename,
		Caption:       p.Caption,
		AlbumID:       p.AlbumID,
		AlbumName:     p.Album.Name,
		Hidden:        p.Hidden,
		VideoFilename: p.VideoStoredFilename,
		TakenAt:       p.TakenAt,
		UploadedAt:    p.UploadedAt,
	}
}

// Page sizes from the three original views
const (
	feedPageSize    = 10
	albumPageSize   = 40
	libraryPageSize = 80
)

func PhotoList(c *gin.Context) {
	r := PhotoListRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	filter := models.PhotoFilter{FeedOnly: r.Feed}
	if r.AlbumID > 0 {
		filter.AlbumID = &r.AlbumID
	}
	if r.PageSize <= 0 {
		switch {
		case r.Feed:
			r.PageSize = feedPageSize
		case r.AlbumID > 0:
			r.PageSize = albumPageSize
		default:
			r.PageSize = libraryPageSize
		}
	}
	photos, total, err := models.PhotoList(filter, r.Page, r.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := make([]PhotoInfo, 0, len(photos))
	for i := range photos {
		result = append(result, photoInfoFrom(&photos[i]))
	}
	c.JSON(http.StatusOK, gin.H{"photos": result, "total": total})
}

func PhotoGet(c *gin.Context) {
	r := PhotoIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	photo, err := models.PhotoGet(r.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, NopeResponse)
		return
	}
	c.JSON(http.StatusOK, photoInfoFrom(&photo))
}

func PhotoSetAlbum(c *gin.Context) {
	r := PhotoAlbumRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var albumID *uint64
	if r.AlbumID > 0 {
		if _, err := models.AlbumGet(r.AlbumID); err != nil {
			c.JSON(http.StatusNotFound, Response{"no such album"})
			return
		}
		albumID = &r.AlbumID
	}
	if err := models.PhotoSetAlbum(r.ID, albumID); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PhotoSetHidden(c *gin.Context) {
	r := PhotoHiddenRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := models.PhotoSetHidden(r.ID, r.Hidden); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

func PhotoAssignAlbumBulk(c *gin.Context) {
	r := PhotoBulkAlbumRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	var albumID *uint64
	if r.AlbumID > 0 {
		if _, err := models.AlbumGet(r.AlbumID); err != nil {
			c.JSON(http.StatusNotFound, Response{"no such album"})
			return
		}
		albumID = &r.AlbumID
	}
	if err := models.PhotosAssignAlbum(r.IDs, albumID); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// PhotoDelete removes catalog rows first, then the files they pointed
// at. Missing files are fine by then.
func PhotoDelete(c *gin.Context) {
	r := PhotoIDsRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	files, err := models.PhotosDelete(r.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	processing.RemovePhotoFiles(storage.Get(), files)
	c.JSON(http.StatusOK, gin.H{"deleted": len(files)})
}
