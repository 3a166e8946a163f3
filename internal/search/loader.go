package search

import (
	"unicode/utf8"

	"github.com/harrison/minigrep/internal/fileutil"
)

// LoadFile reads the whole of filename into memory.
// Compressed files are decoded by fileutil.ReadFile. The result must be
// valid UTF-8. Every failure is returned as a KindIO *Error wrapping the cause.
func LoadFile(filename string) (string, error) {
	data, err := fileutil.ReadFile(filename)
	if err != nil {
		return "", ioError(filename, err)
	}
	if !utf8.Valid(data) {
		return "", ioError(filename, ErrInvalidUTF8)
	}
	return string(data), nil
}
