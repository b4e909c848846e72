package utils

import (
	"io"
	"net/http"
	"strings"
)

// MaxUploadBytes caps uploaded files at 10 MiB.
const MaxUploadBytes = 10 << 20

var allowedDocTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// AllowedUploadType accepts any image plus PDF, DOC and DOCX.
func AllowedUploadType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	return allowedDocTypes[ct]
}

// SniffContentType reads the first 512 bytes to detect the real MIME type,
// then rewinds the reader. DOC sniffs as octet-stream and DOCX as zip, so the
// declared type is trusted for those.
func SniffContentType(file io.ReadSeeker, declared string) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	detected := http.DetectContentType(buf[:n])
	if (detected == "application/octet-stream" || detected == "application/zip") && declared != "" {
		return declared, nil
	}
	return detected, nil
}
