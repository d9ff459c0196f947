package handlers

import (
	"net/http"

	"photobook/db"
	"photobook/models"
	"photobook/processing"
	"photobook/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type AlbumInfo struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	CreatedAt     int64  `json:"created_at"`
	PhotoCount    int64  `json:"photo_count"`
	CoverFilename string `json:"cover_filename"`
}

type AlbumCreateRequest struct {
	Name string `form:"name" binding:"required"`
}

type AlbumRenameRequest struct {
	AlbumID uint64 `form:"album_id" binding:"required"`
	Name    string `form:"name" binding:"required"`
}

type AlbumDeleteRequest struct {
	AlbumID      uint64 `form:"album_id" binding:"required"`
	DeletePhotos bool   `form:"delete_photos"`
}

func AlbumList(c *gin.Context) {
	rows, err := db.Instance.
		Table("albums").
		Select("albums.id, albums.name, albums.created_at, count(photos.id), " +
			"ifnull((select p2.stored_filename from photos p2 where p2.album_id = albums.id " +
			"order by p2.uploaded_at desc limit 1), '')").
		Joins("left join photos on photos.album_id = albums.id").
		Group("albums.id, albums.name, albums.created_at").
		Order("albums.created_at DESC").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	defer rows.Close()
	result := []AlbumInfo{}
	for rows.Next() {
		info := AlbumInfo{}
		if err = rows.Scan(&info.ID, &info.Name, &info.CreatedAt, &info.PhotoCount, &info.CoverFilename); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		result = append(result, info)
	}
	c.JSON(http.StatusOK, result)
}

func AlbumCreate(c *gin.Context) {
	r := AlbumCreateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	album, err := models.AlbumCreate(r.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, AlbumInfo{
		ID:        album.ID,
		Name:      album.Name,
		CreatedAt: album.CreatedAt,
	})
}

func AlbumRename(c *gin.Context) {
	r := AlbumRenameRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if err := models.AlbumRename(r.AlbumID, r.Name); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// AlbumDelete removes the album; delete_photos selects cascade over
// detach for its photos.
func AlbumDelete(c *gin.Context) {
	r := AlbumDeleteRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	files, err := models.AlbumDelete(r.AlbumID, r.DeletePhotos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	processing.RemovePhotoFiles(storage.Get(), files)
	c.JSON(http.StatusOK, gin.H{"deleted_photos": len(files)})
}
