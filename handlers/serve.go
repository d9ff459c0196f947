package handlers

import (
	"path/filepath"

	"photobook/models"
	"photobook/storage"

	"github.com/gin-gonic/gin"
)

// assetName strips any path components from the requested filename
func assetName(c *gin.Context) string {
	return filepath.Base(c.Param("filename"))
}

func ServePhoto(c *gin.Context) {
	storage.Get().Serve(models.OriginalsDir+"/"+assetName(c), c.Request, c.Writer)
}

// ServeThumbnail resolves the normalized .jpg rendition name, so the
// original's filename can be used in URLs as-is.
func ServeThumbnail(c *gin.Context) {
	storage.Get().Serve(models.ThumbnailsDir+"/"+models.DerivedJpegName(assetName(c)), c.Request, c.Writer)
}

func ServeDisplay(c *gin.Context) {
	storage.Get().Serve(models.DisplayDir+"/"+models.DerivedJpegName(assetName(c)), c.Request, c.Writer)
}

func ServeVideo(c *gin.Context) {
	storage.Get().Serve(models.VideosDir+"/"+assetName(c), c.Request, c.Writer)
}
