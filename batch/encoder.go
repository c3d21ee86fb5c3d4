package batch

import (
	"fmt"
	"hash/crc32"

	"github.com/fluxwire/lineproto/compress"
	"github.com/fluxwire/lineproto/errs"
	"github.com/fluxwire/lineproto/format"
	"github.com/fluxwire/lineproto/internal/options"
	"github.com/fluxwire/lineproto/internal/pool"
	"github.com/fluxwire/lineproto/line"
)

// Encoder accumulates lines and produces one framed, compressed payload.
//
// An Encoder is single-use: after Finish it must not be appended to again.
// It is not safe for concurrent use.
type Encoder struct {
	header Header
	buf    *pool.ByteBuffer
	count  uint32
}

// EncoderOption represents a functional option for configuring the Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the body compression type.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.header.Compression = comp
			return nil
		default:
			return fmt.Errorf("%w: %v", errs.ErrInvalidCompression, comp)
		}
	})
}

// WithLittleEndian selects little-endian header fields (the default).
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithLittleEndian()
	})
}

// WithBigEndian selects big-endian header fields.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithBigEndian()
	})
}

// NewEncoder creates an encoder. Defaults: little-endian header, Zstd body.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		header: NewHeader(),
		buf:    pool.GetBatchBuffer(),
	}
	if err := options.Apply(e, opts...); err != nil {
		e.release()
		return nil, err
	}

	return e, nil
}

// Append adds one line to the batch in its canonical wire form.
func (e *Encoder) Append(l *line.Line) {
	if e.count > 0 {
		e.buf.MustWriteByte('\n')
	}
	e.buf.MustWriteString(l.String())
	e.count++
}

// Len returns the number of lines appended so far.
func (e *Encoder) Len() int {
	return int(e.count)
}

// Finish compresses the body, prepends the header, and returns the payload.
//
// The returned slice is newly allocated and owned by the caller. Finishing an
// empty encoder is an error: a batch, like a line, must carry data.
func (e *Encoder) Finish() ([]byte, error) {
	if e.count == 0 {
		e.release()
		return nil, errs.ErrEmptyBatch
	}

	codec, err := compress.GetCodec(e.header.Compression)
	if err != nil {
		e.release()
		return nil, err
	}

	body := e.buf.Bytes()
	e.header.Count = e.count
	e.header.BodySize = uint32(len(body)) //nolint:gosec
	e.header.Checksum = crc32.ChecksumIEEE(body)

	compressed, err := codec.Compress(body)
	if err != nil {
		e.release()
		return nil, fmt.Errorf("failed to compress batch body: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = e.header.appendTo(out)
	out = append(out, compressed...)

	e.release()

	return out, nil
}

func (e *Encoder) release() {
	if e.buf != nil {
		pool.PutBatchBuffer(e.buf)
		e.buf = nil
	}
}
