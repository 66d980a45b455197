// File: filex.go
// Title: Core File Utilities
// Description: File type detection and size helpers shared by the upload
//              and image validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-17 v0.2.0: Reduced to type detection and sizes, content sniffing
//                       for unknown extensions

package filex

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// Megabyte is the unit of upload size limits
const Megabyte = 1024 * 1024

// OctetStream is reported when a type cannot be determined
const OctetStream = "application/octet-stream"

var mimeTypes = map[string]string{
	".txt":  "text/plain",
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".csv":  "text/csv",
	".js":   "application/javascript",
	".json": "application/json",
	".xml":  "application/xml",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// DetectMimeType returns the MIME type for a file name based on its
// extension, or OctetStream when the extension is unknown.
func DetectMimeType(path string) string {
	if mimeType, exists := mimeTypes[strings.ToLower(filepath.Ext(path))]; exists {
		return mimeType
	}
	return OctetStream
}

// SniffMimeType detects the type from the first 512 bytes of r. Parameters
// such as "; charset=utf-8" are dropped.
func SniffMimeType(r io.Reader) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	return BaseMimeType(http.DetectContentType(head[:n])), nil
}

// BaseMimeType strips parameters and surrounding space from a MIME type
func BaseMimeType(mimeType string) string {
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.TrimSpace(mimeType)
}

// IsImageFile checks if a file is an image based on its extension
func IsImageFile(path string) bool {
	return strings.HasPrefix(DetectMimeType(path), "image/")
}

// FormatSize formats a size in bytes to a human-readable string
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}
