package storage

import "errors"

// ErrObjectNotFound is returned by Fetch for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// File categories and the extension allow-lists shared by upload
// validation, download probing and deletion cleanup.
var (
	Categories      = []string{"images", "videos"}
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	VideoExtensions = []string{".mp4", ".avi"}
)

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".mp4":  "video/mp4",
	".avi":  "video/x-msvideo",
}

// ContentTypeFor maps a known extension to its MIME type.
func ContentTypeFor(ext string) string {
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsImageExtension reports whether ext is in the image allow-list.
func IsImageExtension(ext string) bool {
	for _, e := range ImageExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// IsVideoExtension reports whether ext is in the video allow-list.
func IsVideoExtension(ext string) bool {
	for _, e := range VideoExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// AllExtensions returns images then videos, the probe order used by media
// lookup.
func AllExtensions() []string {
	out := make([]string, 0, len(ImageExtensions)+len(VideoExtensions))
	out = append(out, ImageExtensions...)
	out = append(out, VideoExtensions...)
	return out
}
