package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// maxDecompressedSize bounds decompression buffers so a corrupted payload
// cannot demand arbitrary memory.
const maxDecompressedSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances; they keep internal state
// that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps LZ4 block compression.
type LZ4Compressor struct{}

var (
	_ Codec                  = (*LZ4Compressor)(nil)
	_ SizeHintedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data as a single LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a single LZ4 block of unknown uncompressed size.
//
// LZ4 blocks do not store that size, so the buffer starts at 4x the
// compressed size and doubles on ErrInvalidSourceShortBuffer, capped at
// maxDecompressedSize. Callers that know the size should use
// DecompressWithSize instead.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxDecompressedSize; bufSize *= 2 {
		out, err := c.decompressInto(data, bufSize)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressWithSize decompresses a single LZ4 block whose uncompressed size
// is known, allocating the output buffer exactly once.
func (c LZ4Compressor) DecompressWithSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if size <= 0 || size > maxDecompressedSize {
		return c.Decompress(data)
	}

	return c.decompressInto(data, size)
}

func (c LZ4Compressor) decompressInto(data []byte, bufSize int) ([]byte, error) {
	buf := make([]byte, bufSize)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
