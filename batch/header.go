package batch

import (
	"fmt"

	"github.com/fluxwire/lineproto/endian"
	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/format"
)

const (
	// EndiannessMask selects the endianness bit (bit 0) of the options field:
	// 0 means little-endian, 1 means big-endian.
	EndiannessMask = 0x0001

	// ReservedMask selects the reserved bits (1-3) of the options field; they
	// must be zero.
	ReservedMask = 0x000E

	// MagicMask selects the magic number bits (bits 4-15) of the options field.
	MagicMask = 0xFFF0

	// MagicBatchV1Opt is the version 1 magic number of the batch format.
	MagicBatchV1Opt = 0xE110

	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16
)

// Header is the fixed-size prefix of a batch payload.
type Header struct {
	// Options packs the magic number (bits 4-15) and the endianness bit
	// (bit 0). Bits 1-3 are reserved and must be 0.
	Options uint16

	// Compression identifies the codec applied to the body.
	Compression format.CompressionType

	// Count is the number of lines in the body.
	Count uint32

	// BodySize is the uncompressed body size in bytes.
	BodySize uint32

	// Checksum is the CRC32 (IEEE) of the uncompressed body.
	Checksum uint32
}

// NewHeader creates a header with default settings: little-endian, Zstd.
func NewHeader() Header {
	return Header{
		Options:     MagicBatchV1Opt,
		Compression: format.CompressionZstd,
	}
}

// IsBigEndian reports whether multi-byte header fields use big-endian order.
func (h Header) IsBigEndian() bool {
	return h.Options&EndiannessMask != 0
}

// WithBigEndian marks the header as big-endian.
func (h *Header) WithBigEndian() {
	h.Options |= EndiannessMask
}

// WithLittleEndian marks the header as little-endian.
func (h *Header) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// Engine returns the endian engine matching the endianness bit.
func (h Header) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// appendTo appends the encoded header to dst.
func (h Header) appendTo(dst []byte) []byte {
	engine := h.Engine()
	dst = engine.AppendUint16(dst, h.Options)
	dst = append(dst, uint8(h.Compression), 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.BodySize)
	dst = engine.AppendUint32(dst, h.Checksum)

	return dst
}

// parseHeader decodes and validates a header from the start of data.
//
// The magic number reads differently under the two byte orders, so the
// decoder tries little-endian first and falls back to big-endian; the
// endianness bit must agree with the order that produced the match.
func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, need %d", errs.ErrInvalidHeader, len(data), HeaderSize)
	}

	var engine endian.EndianEngine

	options := endian.GetLittleEndianEngine().Uint16(data[0:2])
	switch {
	case options&MagicMask == MagicBatchV1Opt && options&EndiannessMask == 0:
		engine = endian.GetLittleEndianEngine()
	default:
		options = endian.GetBigEndianEngine().Uint16(data[0:2])
		if options&MagicMask != MagicBatchV1Opt || options&EndiannessMask == 0 {
			return Header{}, fmt.Errorf("%w: bad magic number", errs.ErrInvalidHeader)
		}
		engine = endian.GetBigEndianEngine()
	}

	if options&ReservedMask != 0 || data[3] != 0 {
		return Header{}, fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeader)
	}

	h := Header{
		Options:     options,
		Compression: format.CompressionType(data[2]),
		Count:       engine.Uint32(data[4:8]),
		BodySize:    engine.Uint32(data[8:12]),
		Checksum:    engine.Uint32(data[12:16]),
	}

	return h, nil
}
