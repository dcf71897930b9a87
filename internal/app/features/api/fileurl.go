// internal/app/features/api/fileurl.go
package api

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// simulatedFileURL generates a unique download path for a resource whose
// upload is simulated: /files/resources/YYYY/MM/uuid-filename. No file is
// stored under it; the path only has to be unique and stable.
func simulatedFileURL(filename string) string {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("/files/resources/%04d/%02d", now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	return dateDir + "/" + uniqueName
}

// sanitizeFilename removes or replaces characters that could be problematic
// in filenames.
func sanitizeFilename(filename string) string {
	// Drop any path components before cleaning the name itself.
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve the extension if present.
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
