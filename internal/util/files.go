package util

import (
	"os"
	"strings"

	"quizbuddy/internal/logger"

	"go.uber.org/zap"
)

// GetFileExtension returns the lower-cased extension of filename without
// the leading dot, or "" when there is none.
func GetFileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// RemoveFiles deletes the given files from the filesystem. Removal is
// best-effort: a missing or undeletable file is logged and skipped so the
// remaining files still get cleaned up.
func RemoveFiles(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Get().Warn("Failed to remove uploaded file",
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}
}
