// Package batch frames multiple lines into a single compressed payload.
//
// The core codec deliberately handles one line at a time; batch is the
// collaborator that joins formatted lines into a body, compresses it, and
// prefixes a fixed 16-byte header:
//
//	Offset  Size  Field
//	0       2     options (bits 4-15 magic 0xE110, bit 0 endianness)
//	2       1     compression type (see format.CompressionType)
//	3       1     reserved, must be 0
//	4       4     line count
//	8       4     uncompressed body size in bytes
//	12      4     CRC32 (IEEE) of the uncompressed body
//
// The body is the newline-joined canonical wire form of every line, with no
// trailing newline. Multi-byte header fields use the byte order named by the
// endianness bit; the magic number is asymmetric, so the decoder detects the
// order from the first two bytes.
//
// Encoding:
//
//	encoder, _ := batch.NewEncoder(batch.WithCompression(format.CompressionZstd))
//	encoder.Append(l1)
//	encoder.Append(l2)
//	payload, err := encoder.Finish()
//
// Decoding:
//
//	decoder, err := batch.NewDecoder(payload)
//	lines, err := decoder.Lines()
package batch
