package storage

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// AttachmentPolicy constrains what a feedback form may upload.
type AttachmentPolicy struct {
	MaxFileMB  float64
	MimeTypes  []string
	Extensions []string
}

// FeedbackPolicy is the default policy for feedback attachments: voice notes
// and photos only, capped per file.
func FeedbackPolicy() *AttachmentPolicy {
	return &AttachmentPolicy{
		MaxFileMB:  10,
		MimeTypes:  []string{"audio/*", "image/*"},
		Extensions: []string{"webm", "mp3", "m4a", "wav", "jpg", "jpeg", "png"},
	}
}

// ValidateFile validates a file against the policy
func (p *AttachmentPolicy) ValidateFile(fileName, contentType string, fileSizeBytes int64) error {
	if p == nil {
		return nil // No policy means no restrictions
	}

	if p.MaxFileMB > 0 {
		maxBytes := int64(p.MaxFileMB * 1024 * 1024)
		if fileSizeBytes > maxBytes {
			return fmt.Errorf("file size %d bytes exceeds maximum %d bytes (%.2f MB)",
				fileSizeBytes, maxBytes, p.MaxFileMB)
		}
	}

	if len(p.MimeTypes) > 0 && !p.matchesMimeType(contentType) {
		return fmt.Errorf("content type %s is not allowed. Allowed types: %v",
			contentType, p.MimeTypes)
	}

	if len(p.Extensions) > 0 && !p.matchesExtension(fileName) {
		return fmt.Errorf("file extension is not allowed. Allowed extensions: %v",
			p.Extensions)
	}

	return nil
}

// matchesMimeType checks if contentType matches any of the allowed MIME type patterns
func (p *AttachmentPolicy) matchesMimeType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}

	for _, allowed := range p.MimeTypes {
		// Support wildcard patterns like "audio/*"
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "/*")
			if strings.HasPrefix(mediaType, prefix+"/") {
				return true
			}
		} else if mediaType == allowed {
			return true
		}
	}
	return false
}

// matchesExtension checks if fileName has an allowed extension
func (p *AttachmentPolicy) matchesExtension(fileName string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" {
		return false
	}

	for _, allowed := range p.Extensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
