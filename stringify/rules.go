package stringify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

const (
	// TimestampLayout renders timestamps with microsecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000000"
	// ZoneLayout is appended to TimestampLayout for zone aware timestamps.
	ZoneLayout = "-0700"
)

// Timestamp is implemented by values that can render themselves with a Go
// time layout. time.Time satisfies it.
type Timestamp interface {
	Format(layout string) string
}

// Naive is implemented by timestamps that may carry no zone information.
type Naive interface {
	Naive() bool
}

// NaiveTime is a wall-clock reading without zone information.
// Its zone is ignored when it is formatted.
type NaiveTime struct {
	time.Time
}

// Naive always reports true.
func (NaiveTime) Naive() bool { return true }

// view is implemented by the read-only byte views the view rule accepts.
type view interface {
	io.ReaderAt
	Size() int64
}

// rule is a single entry of the conversion table.
// convert may return bytes, which are decoded afterwards.
type rule struct {
	name    string
	matches func(v any) bool
	convert func(v any) (any, error)
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{
		name: "uuid",
		matches: func(v any) bool {
			switch v.(type) {
			case uuid.UUID, *uuid.UUID:
				return true
			}
			return false
		},
		convert: func(v any) (any, error) {
			if p, ok := v.(*uuid.UUID); ok {
				return p.String(), nil
			}
			return v.(uuid.UUID).String(), nil
		},
	},
	{
		name: "timestamp",
		matches: func(v any) bool {
			_, ok := v.(Timestamp)
			return ok
		},
		convert: func(v any) (any, error) {
			return formatTimestamp(v.(Timestamp)), nil
		},
	},
	{
		name: "view",
		matches: func(v any) bool {
			switch v.(type) {
			case *bytes.Reader, *io.SectionReader:
				return true
			}
			return false
		},
		convert: func(v any) (any, error) {
			return materialize(v.(view))
		},
	},
	{
		name: "buffer",
		matches: func(v any) bool {
			_, ok := v.(*bytes.Buffer)
			return ok
		},
		convert: func(v any) (any, error) {
			return bytes.Clone(v.(*bytes.Buffer).Bytes()), nil
		},
	},
}

func formatTimestamp(ts Timestamp) string {
	if n, ok := ts.(Naive); ok && n.Naive() {
		return ts.Format(TimestampLayout)
	}
	return ts.Format(TimestampLayout + ZoneLayout)
}

// materialize copies the full content of the view without moving any read
// position the view might have.
func materialize(v view) ([]byte, error) {
	size := v.Size()
	if size <= 0 {
		return []byte{}, nil
	}
	buf := make([]byte, size)
	// ReadAt may report io.EOF together with a completely filled buffer.
	n, err := v.ReadAt(buf, 0)
	if err != nil && (!errors.Is(err, io.EOF) || int64(n) < size) {
		return nil, fmt.Errorf("cannot read %d bytes from %T: %w", size, v, err)
	}
	return buf, nil
}
