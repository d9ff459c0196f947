package models

import (
	"path/filepath"
	"strings"

	"photobook/db"

	"gorm.io/gorm"
)

const (
	OriginalsDir  = "photos"
	ThumbnailsDir = "thumbnails"
	DisplayDir    = "display"
	VideosDir     = "videos"
)

type Photo struct {
	ID                  uint64 `gorm:"primaryKey"`
	StoredFilename      string `gorm:"type:varchar(100);index:uniq_stored_filename,unique;not null"`
	OriginalFilename    string `gorm:"type:varchar(300)"`
	Caption             string `gorm:"type:varchar(2000)"`
	AlbumID             *uint64
	Album               Album  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Hidden              bool   `gorm:"not null;default:false"`
	VideoStoredFilename string `gorm:"type:varchar(100)"`
	TakenAt             int64  `gorm:"not null;index"`
	UploadedAt          int64  `gorm:"autoCreateTime"`
}

// PhotoFiles carries the stored filenames a delete operation yields,
// so the on-disk artifacts can be removed afterwards.
type PhotoFiles struct {
	StoredFilename      string
	VideoStoredFilename string
}

// DerivedJpegName returns the name thumbnail and display renditions are
// stored under: same base as the original, normalized .jpg extension.
func DerivedJpegName(storedFilename string) string {
	return strings.TrimSuffix(storedFilename, filepath.Ext(storedFilename)) + ".jpg"
}

func (p *Photo) GetOriginalPath() string {
	return OriginalsDir + "/" + p.StoredFilename
}

func (p *Photo) GetThumbPath() string {
	return ThumbnailsDir + "/" + DerivedJpegName(p.StoredFilename)
}

func (p *Photo) GetDisplayPath() string {
	return DisplayDir + "/" + DerivedJpegName(p.StoredFilename)
}

// GetVideoPath returns "" when the photo has no paired video.
func (p *Photo) GetVideoPath() string {
	if p.VideoStoredFilename == "" {
		return ""
	}
	return VideosDir + "/" + p.VideoStoredFilename
}

// InsertPhotosBatch persists the whole batch in a single transaction:
// either every record becomes visible or none do.
func InsertPhotosBatch(photos []Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&photos).Error
	})
}

type PhotoFilter struct {
	AlbumID        *uint64
	FeedOnly       bool // exclude hidden photos
	UnassignedOnly bool // photos without an album
}

// PhotoList returns one page of photos, newest capture first, plus the
// total count matching the filter.
func PhotoList(filter PhotoFilter, page, pageSize int) ([]Photo, int64, error) {
	if page < 1 {
		page = 1
	}
	filtered := func() *gorm.DB {
		tx := db.Instance.Model(&Photo{})
		if filter.AlbumID != nil {
			tx = tx.Where("album_id = ?", *filter.AlbumID)
		} else if filter.UnassignedOnly {
			tx = tx.Where("album_id IS NULL")
		}
		if filter.FeedOnly {
			tx = tx.Where("hidden = ?", false)
		}
		return tx
	}
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var photos []Photo
	err := filtered().Preload("Album").
		Order("taken_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&photos).Error
	if err != nil {
		return nil, 0, err
	}
	return photos, total, nil
}

func PhotoGet(id uint64) (photo Photo, err error) {
	err = db.Instance.Preload("Album").First(&photo, id).Error
	return
}

func PhotoSetAlbum(id uint64, albumID *uint64) error {
	return db.Instance.Model(&Photo{ID: id}).Update("album_id", albumID).Error
}

func PhotoSetHidden(id uint64, hidden bool) error {
	return db.Instance.Model(&Photo{ID: id}).Update("hidden", hidden).Error
}

func PhotosAssignAlbum(ids []uint64, albumID *uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Instance.Model(&Photo{}).Where("id IN ?", ids).
		Update("album_id", albumID).Error
}

// PhotosDelete removes the catalog rows and returns their stored
// filenames for file cleanup. Rows and filenames are resolved in the
// same transaction so a concurrent writer cannot race the listing.
func PhotosDelete(ids []uint64) (files []PhotoFiles, err error) {
	if len(ids) == 0 {
		return nil, nil
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Photo{}).
			Select("stored_filename", "video_stored_filename").
			Where("id IN ?", ids).
			Find(&files).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&Photo{}).Error
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
