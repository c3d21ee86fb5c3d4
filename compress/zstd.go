package compress

// ZstdCompressor wraps Zstandard compression, the best-ratio codec for batch
// bodies. Use it when batches are archived or shipped over constrained links.
//
// Two implementations exist behind build tags: the default pure-Go path
// (klauspost/compress/zstd) and an opt-in cgo path (valyala/gozstd, build tag
// "cgozstd") for deployments that want the reference C implementation.
type ZstdCompressor struct{}

var (
	_ Codec                  = (*ZstdCompressor)(nil)
	_ SizeHintedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
