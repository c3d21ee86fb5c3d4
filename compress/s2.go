package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps S2, a Snappy-compatible codec tuned for speed over
// ratio. A good default when batches are compressed on the hot path.
type S2Compressor struct{}

var (
	_ Codec                  = (*S2Compressor)(nil)
	_ SizeHintedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressWithSize decompresses S2 data whose uncompressed size is known,
// sizing the output buffer up front.
func (c S2Compressor) DecompressWithSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if size <= 0 || size > maxDecompressedSize {
		return c.Decompress(data)
	}

	return s2.Decode(make([]byte, size), data)
}
