package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the default allowed file extensions for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
}

// MaxUploadMBDefault caps the size of a single uploaded invoice image.
const MaxUploadMBDefault = 10

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether the filename carries a supported image extension.
func IsAllowedExt(filename string) bool {
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(filename))]
	return ok
}
