//go:build cgozstd

package compress

import "github.com/valyala/gozstd"

// Compress compresses the input data using the reference C Zstandard
// implementation.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}

// DecompressWithSize decompresses Zstd data whose uncompressed size is known,
// sizing the output buffer up front.
func (c ZstdCompressor) DecompressWithSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if size <= 0 || size > maxDecompressedSize {
		return c.Decompress(data)
	}

	return gozstd.Decompress(make([]byte, 0, size), data)
}
