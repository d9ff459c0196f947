package models

import (
	"photobook/db"

	"gorm.io/gorm"
)

type Album struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	Name      string `gorm:"type:varchar(300);not null"`
}

func AlbumCreate(name string) (Album, error) {
	album := Album{Name: name}
	return album, db.Instance.Create(&album).Error
}

func AlbumRename(id uint64, name string) error {
	return db.Instance.Model(&Album{ID: id}).Update("name", name).Error
}

func AlbumGet(id uint64) (album Album, err error) {
	err = db.Instance.First(&album, id).Error
	return
}

// AlbumDelete removes the album. With deletePhotos the album's photos are
// removed from the catalog too and their stored filenames returned for
// file cleanup; otherwise the photos survive with a cleared album reference.
func AlbumDelete(id uint64, deletePhotos bool) (files []PhotoFiles, err error) {
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if deletePhotos {
			if err := tx.Model(&Photo{}).
				Select("stored_filename", "video_stored_filename").
				Where("album_id = ?", id).
				Find(&files).Error; err != nil {
				return err
			}
			if err := tx.Where("album_id = ?", id).Delete(&Photo{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&Photo{}).Where("album_id = ?", id).
				Update("album_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&Album{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
