package api

import (
	"strings"
)

var mediaTypesByExtension = map[string]string{
	"gif":  "image/gif",
	"jpeg": "image/jpeg",
	"jpg":  "image/jpeg",
	"pdf":  "application/pdf",
	"png":  "image/png",
	"svg":  "image/svg+xml",
	"webp": "image/webp",
}

// ContentTypeByExtension returns the media type of a diagram file extension
// The extension is matched without its leading dot and regardless of case
func ContentTypeByExtension(ext string) (string, bool) {
	mediaType, ok := mediaTypesByExtension[strings.ToLower(ext)]
	return mediaType, ok
}
