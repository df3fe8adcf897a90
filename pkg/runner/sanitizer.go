package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "TAPROOM_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// InputError reports a line rejected by the sanitizer.
type InputError struct {
	Err   error
	Size  int
	Limit int
}

func (e *InputError) Error() string {
	if errors.Is(e.Err, ErrInputTooLarge) {
		return fmt.Sprintf("%v: size=%d limit=%d", e.Err, e.Size, e.Limit)
	}
	return e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// SanitizeInput cleans user input by enforcing a size limit, validating UTF-8 and stripping
// control characters. A limit <= 0 uses MaxInputSize.
func SanitizeInput(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = MaxInputSize()
	}
	// Reject rather than truncate: a truncated order is a different order.
	if len(input) > limit {
		return "", &InputError{Err: ErrInputTooLarge, Size: len(input), Limit: limit}
	}

	if !utf8.ValidString(input) {
		return "", &InputError{Err: ErrInvalidUTF8, Size: len(input), Limit: limit}
	}

	// Newline, tab and carriage return survive; ESC, NUL, BEL and friends do not.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

// MaxInputSize returns the limit from EnvMaxInputSize, or DefaultMaxInputSize.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
