// Package fileutil provides whole-file reads for minigrep.
//
// ReadFile is the single entry point used by the search loader. It returns
// the complete contents of a file, transparently decoding the compressed
// formats below when both the extension and the leading magic bytes agree:
//
//	Extension      Format   Magic         Library
//	.gz            gzip     1f 8b         github.com/klauspost/compress/gzip
//	.zst, .zstd    zstd     28 b5 2f fd   github.com/klauspost/compress/zstd
//	.lz4           lz4      04 22 4d 18   github.com/pierrec/lz4/v4
//
// Requiring both signals keeps a plain text file named "notes.gz" readable
// as text, and keeps a text file that happens to start with one of the
// magic sequences from being decoded.
//
// Open and read failures are returned as the *fs.PathError produced by the
// os package so callers can still test them with errors.Is.
package fileutil
