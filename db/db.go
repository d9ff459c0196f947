package db

import (
	"os"
	"path/filepath"

	"photobook/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var dialector gorm.Dialector
	if config.MYSQL_DSN != "" {
		dialector = mysql.Open(config.MYSQL_DSN)
	} else {
		if err := os.MkdirAll(filepath.Dir(config.SQLITE_FILE), 0777); err != nil {
			panic(err)
		}
		dialector = sqlite.Open(config.SQLITE_FILE)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil || db == nil {
		panic(err)
	}
	if config.MYSQL_DSN == "" {
		// SQLite doesn't enforce foreign keys unless told to
		db.Exec("PRAGMA foreign_keys = ON")
	}
	Instance = db
}
