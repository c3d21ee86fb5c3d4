package batch

import (
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/fluxwire/lineproto/compress"
	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/internal/hash"
	"github.com/fluxwire/lineproto/line"
)

// Decoder reads a framed batch payload back into lines.
//
// NewDecoder validates the header, decompresses the body, and verifies its
// size and checksum; line-level parsing is deferred to Lines so callers that
// only relay raw text never pay for it.
type Decoder struct {
	header Header
	raws   []string
	lines  []*line.Line
}

// NewDecoder creates a decoder over a complete batch payload.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	body, err := decompressBody(codec, data[HeaderSize:], int(header.BodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress batch body: %w", err)
	}

	if uint32(len(body)) != header.BodySize { //nolint:gosec
		return nil, fmt.Errorf("%w: header claims %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, header.BodySize, len(body))
	}
	if crc32.ChecksumIEEE(body) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	raws := strings.Split(string(body), "\n")
	if uint32(len(raws)) != header.Count { //nolint:gosec
		return nil, fmt.Errorf("%w: header claims %d lines, got %d",
			errs.ErrLineCountMismatch, header.Count, len(raws))
	}

	return &Decoder{header: header, raws: raws}, nil
}

// decompressBody hands the header's uncompressed body size to codecs that can
// exploit it, so the common path allocates the output buffer exactly once.
func decompressBody(codec compress.Codec, data []byte, size int) ([]byte, error) {
	if sized, ok := codec.(compress.SizeHintedDecompressor); ok {
		return sized.DecompressWithSize(data, size)
	}

	return codec.Decompress(data)
}

// Count returns the number of lines in the batch.
func (d *Decoder) Count() int {
	return len(d.raws)
}

// Compression returns the compression type the batch was encoded with.
func (d *Decoder) Compression() string {
	return d.header.Compression.String()
}

// Raw returns the raw wire text of every line, in batch order.
func (d *Decoder) Raw() []string {
	return d.raws
}

// Lines parses every line in the batch. The result is cached, repeated calls
// are cheap.
func (d *Decoder) Lines() ([]*line.Line, error) {
	if d.lines != nil {
		return d.lines, nil
	}

	lines := make([]*line.Line, len(d.raws))
	for i, raw := range d.raws {
		l, err := line.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines[i] = l
	}
	d.lines = lines

	return lines, nil
}

// SeriesIndex groups batch positions by 64-bit series identifier, the
// xxHash64 of each line's canonical series key. Positions within one series
// keep batch order.
func (d *Decoder) SeriesIndex() (map[uint64][]int, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}

	index := make(map[uint64][]int)
	for i, l := range lines {
		id := hash.ID(l.SeriesKey())
		index[id] = append(index[id], i)
	}

	return index, nil
}
