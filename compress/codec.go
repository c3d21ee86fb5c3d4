// Package compress provides the compression codecs used by the batch
// container.
//
// Batch bodies are newline-joined formatted lines: highly repetitive text
// that compresses well. Zstd gives the best ratio, S2 and LZ4 trade ratio for
// speed, and NoOp passes data through for debugging and baselines.
package compress

import (
	"fmt"

	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/format"
)

// Compressor compresses a complete batch body.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller (except
	// for NoOp, which returns the input); the input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a batch body compressed with the matching algorithm.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	// It returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// SizeHintedDecompressor is implemented by codecs that can use a known
// uncompressed size to allocate the output buffer up front.
//
// The batch container records the uncompressed body size in its header, so
// its decoder prefers this path over plain Decompress. Implementations fall
// back to Decompress when the size is implausible (non-positive or beyond the
// decompression limit), since it comes from untrusted input.
type SizeHintedDecompressor interface {
	// DecompressWithSize decompresses the input data whose uncompressed size
	// is already known.
	DecompressWithSize(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
