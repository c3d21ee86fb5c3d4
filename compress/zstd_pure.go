//go:build !cgozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are pooled: the klauspost implementations are built
// for reuse and run allocation-free after warmup.
var (
	zstdEncoderPool = sync.Pool{New: func() any { return newZstdEncoder() }}
	zstdDecoderPool = sync.Pool{New: func() any { return newZstdDecoder() }}
)

func newZstdEncoder() *zstd.Encoder {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		// Cannot happen with valid options.
		panic(fmt.Sprintf("zstd encoder options rejected: %v", err))
	}

	return encoder
}

func newZstdDecoder() *zstd.Decoder {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		// Cannot happen with valid options.
		panic(fmt.Sprintf("zstd decoder options rejected: %v", err))
	}

	return decoder
}

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless, safe with a pooled encoder.
	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.decodeAll(data, nil)
}

// DecompressWithSize decompresses Zstd data whose uncompressed size is known,
// sizing the output buffer up front.
func (c ZstdCompressor) DecompressWithSize(data []byte, size int) ([]byte, error) {
	if size <= 0 || size > maxDecompressedSize {
		return c.Decompress(data)
	}

	return c.decodeAll(data, make([]byte, 0, size))
}

func (c ZstdCompressor) decodeAll(data, dst []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
