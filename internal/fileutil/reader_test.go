package fileutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "Rust:\nsafe, fast, productive.\nPick three.\n"

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll([]byte(s), nil)
}

func lz4Bytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestReadFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		data func(t *testing.T) []byte
	}{
		{"plain", "poem.txt", func(t *testing.T) []byte { return []byte(sample) }},
		{"gzip", "poem.txt.gz", func(t *testing.T) []byte { return gzipBytes(t, sample) }},
		{"gzip upper-case extension", "POEM.GZ", func(t *testing.T) []byte { return gzipBytes(t, sample) }},
		{"zstd", "poem.txt.zst", func(t *testing.T) []byte { return zstdBytes(t, sample) }},
		{"zstd long extension", "poem.txt.zstd", func(t *testing.T) []byte { return zstdBytes(t, sample) }},
		{"lz4", "poem.txt.lz4", func(t *testing.T) []byte { return lz4Bytes(t, sample) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.data(t))

			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, sample, string(got))
		})
	}
}

func TestReadFilePlainTextWithCompressedExtension(t *testing.T) {
	path := writeTemp(t, "notes.gz", []byte("just text\n"))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "just text\n", string(got))
}

func TestReadFileCompressedBytesWithPlainExtension(t *testing.T) {
	raw := gzipBytes(t, sample)
	path := writeTemp(t, "poem.txt", raw)

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	var pathErr *fs.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestReadFileCorruptGzip(t *testing.T) {
	raw := gzipBytes(t, sample)
	corrupt := append([]byte{}, raw[:len(raw)/2]...)
	path := writeTemp(t, "poem.gz", corrupt)

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode gzip data")
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		name string
		file string
		data []byte
		want Compression
	}{
		{"plain", "a.txt", []byte("hello"), CompressionNone},
		{"empty gz", "a.gz", nil, CompressionNone},
		{"gzip", "a.gz", []byte{0x1f, 0x8b, 0x08}, CompressionGzip},
		{"zstd", "a.zst", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}, CompressionZstd},
		{"lz4", "a.lz4", []byte{0x04, 0x22, 0x4d, 0x18, 0x64}, CompressionLZ4},
		{"magic without extension", "a.txt", []byte{0x28, 0xb5, 0x2f, 0xfd}, CompressionNone},
		{"extension mismatch", "a.lz4", []byte{0x1f, 0x8b}, CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCompression(tt.file, tt.data))
		})
	}
}

func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", CompressionNone.String())
	assert.Equal(t, "gzip", CompressionGzip.String())
	assert.Equal(t, "zstd", CompressionZstd.String())
	assert.Equal(t, "lz4", CompressionLZ4.String())
}
