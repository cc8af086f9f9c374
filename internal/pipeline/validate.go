package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxBytes is the input size ceiling when no config overrides it.
const DefaultMaxBytes = 1 << 20

// Typed precondition errors. Validate is the only hard gate in the pipeline;
// everything downstream degrades instead of failing.
var (
	ErrEmptyInput  = errors.New("input is empty")
	ErrBinaryInput = errors.New("input is not text")
)

// SizeError reports input larger than the configured ceiling.
type SizeError struct {
	Size int
	Max  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("input too large: %d bytes (max %d)", e.Size, e.Max)
}

// Validate checks the default preconditions on raw input text.
func Validate(text string) error {
	return validateInput(text, DefaultMaxBytes)
}

func validateInput(text string, maxBytes int) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	if len(text) > maxBytes {
		return &SizeError{Size: len(text), Max: maxBytes}
	}
	if strings.ContainsRune(text, 0) || !utf8.ValidString(text) {
		return ErrBinaryInput
	}
	return nil
}
