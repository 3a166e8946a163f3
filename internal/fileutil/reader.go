package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the encoding of a file on disk.
type Compression uint8

const (
	// CompressionNone indicates a plain file.
	CompressionNone Compression = iota
	// CompressionGzip indicates a gzip stream.
	CompressionGzip
	// CompressionZstd indicates a zstd frame.
	CompressionZstd
	// CompressionLZ4 indicates an LZ4 frame.
	CompressionLZ4
)

// String returns the string representation of Compression.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// compressionForExt maps a lowercase extension to the format it announces.
func compressionForExt(ext string) Compression {
	switch ext {
	case ".gz":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// DetectCompression returns the format of data given its file name.
// The extension and the magic bytes must both match; otherwise the data is plain.
func DetectCompression(name string, data []byte) Compression {
	c := compressionForExt(strings.ToLower(filepath.Ext(name)))
	switch {
	case c == CompressionGzip && bytes.HasPrefix(data, gzipMagic):
		return CompressionGzip
	case c == CompressionZstd && bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case c == CompressionLZ4 && bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// ReadFile reads the named file and returns its decoded contents.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DetectCompression(path, data)
	if c == CompressionNone {
		return data, nil
	}

	decoded, err := Decompress(c, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s data: %w", c, err)
	}
	return decoded, nil
}

// Decompress decodes data that is encoded with c.
func Decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("unsupported compression %d", c)
	}
}
