package models

import (
	"photobook/db"
)

func Init() {
	db.Instance.AutoMigrate(&Album{})
	db.Instance.AutoMigrate(&Photo{})
}
