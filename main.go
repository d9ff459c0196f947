package main

import (
	"log"
	"strings"
	"time"

	"photobook/auth"
	"photobook/config"
	"photobook/db"
	"photobook/handlers"
	"photobook/models"
	"photobook/processing"
	"photobook/storage"
	"photobook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
	assetCacheTime        = 365 * 86400 // originals never change
)

func main() {
	db.Init()
	models.Init()
	storage.Init()
	processing.Init()
	auth.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"PUT", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SECRET_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression,
			gzip.WithExcludedPaths([]string{"/photos/", "/thumbnails/", "/display/", "/videos/"})))
	}
	// No cache by default, asset routes override below
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler())

	router.POST("/user/login", handlers.UserLogin)

	authRouter := &auth.Router{Base: router}
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.GET("/user/status", handlers.UserGetStatus)
	// Upload pipeline
	authRouter.POST("/upload", handlers.Upload)
	// Photo handlers
	authRouter.GET("/photo/list", handlers.PhotoList)
	authRouter.GET("/photo/get", handlers.PhotoGet)
	authRouter.POST("/photo/album", handlers.PhotoSetAlbum)
	authRouter.POST("/photo/hidden", handlers.PhotoSetHidden)
	authRouter.POST("/photo/album-bulk", handlers.PhotoAssignAlbumBulk)
	authRouter.POST("/photo/delete", handlers.PhotoDelete)
	// Album handlers
	authRouter.GET("/album/list", handlers.AlbumList)
	authRouter.POST("/album/create", handlers.AlbumCreate)
	authRouter.POST("/album/rename", handlers.AlbumRename)
	authRouter.POST("/album/delete", handlers.AlbumDelete)
	// Asset serving
	assets := router.Group("/", auth.Required, (&utils.CacheRouter{CacheTime: assetCacheTime}).Handler())
	assets.GET("/photos/:filename", handlers.ServePhoto)
	assets.GET("/thumbnails/:filename", handlers.ServeThumbnail)
	assets.GET("/display/:filename", handlers.ServeDisplay)
	assets.GET("/videos/:filename", handlers.ServeVideo)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
