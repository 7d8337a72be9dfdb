// Package extract pulls plain text out of uploaded resume files.
package extract

import (
	"strings"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// Supported reports whether a content type can be extracted and analyzed.
func Supported(mimeType string) bool {
	switch mimeType {
	case entities.MimePDF, entities.MimeDOCX, entities.MimePlain:
		return true
	}
	return false
}

// Text extracts plain text from file content by mime type. Unsupported types
// and extraction failures yield an empty string; the caller decides whether
// that is fatal.
func Text(content []byte, mimeType string) string {
	if len(content) == 0 {
		return ""
	}

	var text string
	switch mimeType {
	case entities.MimePDF:
		text, _ = pdfText(content)
	case entities.MimeDOCX:
		text, _ = docxText(content)
	case entities.MimePlain:
		text = string(content)
	}

	return strings.TrimSpace(text)
}
