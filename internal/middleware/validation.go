package middleware

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// maxAttachmentBytes caps decoded attachment size at 8MB.
const maxAttachmentBytes = 8 << 20

// ValidateTurnText validates user turn text.
func ValidateTurnText(text string) error {
	if len(text) > 100000 { // ~100KB limit
		return errors.New("text exceeds maximum length")
	}
	if !utf8.ValidString(text) {
		return errors.New("text must be valid UTF-8")
	}
	return nil
}

// ValidateSessionID validates a session ID.
func ValidateSessionID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New("invalid session ID format")
	}
	return nil
}

// ValidateAttachment validates an attachment's encoding and media type.
func ValidateAttachment(data, mimeType string) error {
	if data == "" {
		return errors.New("attachment data cannot be empty")
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return errors.New("attachment must be an image")
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return errors.New("attachment data must be valid base64")
	}
	if len(decoded) > maxAttachmentBytes {
		return errors.New("attachment exceeds maximum size")
	}
	return nil
}
