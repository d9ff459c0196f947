package processing

import (
	"path/filepath"
	"strings"

	"photobook/config"
)

// UploadFile is one named blob from an upload request.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadUnit is an image plus its optional paired video ("live photo").
type UploadUnit struct {
	Image UploadFile
	Video *UploadFile
}

var (
	imageExtensions map[string]bool
	videoExtensions map[string]bool
)

func Init() {
	imageExtensions = parseExtensions(config.IMAGE_EXTENSIONS)
	videoExtensions = parseExtensions(config.VIDEO_EXTENSIONS)
}

func parseExtensions(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ext := range strings.Split(list, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" {
			result[ext] = true
		}
	}
	return result
}

// extOf returns the lowercased extension without the dot, or "".
func extOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// pairKey normalizes the filename stem for pairing. Cameras can export
// IMG_1.JPG and img_1.mov for the same capture, so the case is folded.
func pairKey(name string) string {
	return strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))
}

// PairFiles groups the uploaded files into upload units keyed by the
// normalized filename stem. Files with an empty name or unsupported
// extension are dropped. When several images share a key the last one
// wins. Videos without a matching image are discarded and counted -
// a video needs a companion image to anchor its catalog record.
func PairFiles(files []UploadFile) (units []UploadUnit, skippedVideos int) {
	images := make(map[string]UploadFile)
	videos := make(map[string]UploadFile)
	var order []string

	for _, file := range files {
		if file.Name == "" {
			continue
		}
		ext := extOf(file.Name)
		key := pairKey(file.Name)
		switch {
		case videoExtensions[ext]:
			videos[key] = file
		case imageExtensions[ext]:
			if _, seen := images[key]; !seen {
				order = append(order, key)
			}
			images[key] = file
		}
	}

	for _, key := range order {
		unit := UploadUnit{Image: images[key]}
		if video, ok := videos[key]; ok {
			unit.Video = &video
			delete(videos, key)
		}
		units = append(units, unit)
	}
	return units, len(videos)
}
