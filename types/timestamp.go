package types

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/fluxwire/lineproto/errs"
)

// Timestamp is a signed 64-bit nanosecond count, the optional final segment
// of a line. It carries no suffix and no escaping on the wire.
type Timestamp int64

// nsMin and nsMax bound the calendar instants representable as a 64-bit
// nanosecond offset (roughly years 1678 through 2262).
var (
	nsMin = time.Unix(0, math.MinInt64)
	nsMax = time.Unix(0, math.MaxInt64)
)

// ParseTimestamp decodes a bare signed integer timestamp segment.
func ParseTimestamp(raw string) (Timestamp, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrTimestampNotParsed, raw)
	}

	return Timestamp(v), nil
}

// TimestampFromTime converts a calendar instant to a Timestamp.
//
// It fails with errs.ErrTimestampOutOfRange when the instant cannot be
// represented as a 64-bit nanosecond offset from the Unix epoch.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	if t.Before(nsMin) || t.After(nsMax) {
		return 0, fmt.Errorf("%w: %v", errs.ErrTimestampOutOfRange, t)
	}

	return Timestamp(t.UnixNano()), nil
}

// Time returns the timestamp as a calendar instant in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// String returns the wire form, a bare base-10 integer.
func (t Timestamp) String() string {
	return strconv.FormatInt(int64(t), 10)
}
