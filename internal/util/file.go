package util

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectName builds the storage key for an uploaded file: the caller's
// prefix plus a random name keeping the original extension.
func ObjectName(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".bin"
	}
	return prefix + "/" + uuid.New().String() + ext
}
