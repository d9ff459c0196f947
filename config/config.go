package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = ""                 // e.g. "photos.example.com" - Let's Encrypt is used when set
	MYSQL_DSN    = ""                 // MySQL will be used if this is set
	SQLITE_FILE  = "data/photobook.db" // SQLite is the default
	BIND_ADDRESS = "0.0.0.0:8080"
	DATA_DIR     = "data" // Root of the originals/thumbnails/display/videos directories
	SECRET_KEY   = "dev-secret-key"
	DEBUG_MODE   = true

	// Up to two accounts, defined in the environment
	USERNAME  = "admin"
	PASSWORD  = "password"
	USERNAME2 = ""
	PASSWORD2 = ""

	IMAGE_EXTENSIONS = "png,jpg,jpeg,gif,webp,heic"
	VIDEO_EXTENSIONS = "mov"

	THUMBNAIL_SIZE    = 400
	DISPLAY_SIZE      = 1400
	THUMBNAIL_QUALITY = 70
	DISPLAY_QUALITY   = 82
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("DATA_DIR", &DATA_DIR)
	readEnvString("SECRET_KEY", &SECRET_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("USERNAME", &USERNAME)
	readEnvString("PASSWORD", &PASSWORD)
	readEnvString("USERNAME2", &USERNAME2)
	readEnvString("PASSWORD2", &PASSWORD2)
	readEnvString("IMAGE_EXTENSIONS", &IMAGE_EXTENSIONS)
	readEnvString("VIDEO_EXTENSIONS", &VIDEO_EXTENSIONS)
	readEnvInt("THUMBNAIL_SIZE", &THUMBNAIL_SIZE)
	readEnvInt("DISPLAY_SIZE", &DISPLAY_SIZE)
	readEnvInt("THUMBNAIL_QUALITY", &THUMBNAIL_QUALITY)
	readEnvInt("DISPLAY_QUALITY", &DISPLAY_QUALITY)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
