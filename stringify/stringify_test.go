package stringify

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
)

const weissbier = "Wei\xC3\x9Fbier"

func TestStringifyBinary(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"bytes", []byte(weissbier)},
		{"raw message", json.RawMessage(weissbier)},
		{"buffer", bytes.NewBufferString(weissbier)},
		{"reader", bytes.NewReader([]byte(weissbier))},
		{"section reader", io.NewSectionReader(bytes.NewReader([]byte("xx"+weissbier)), 2, int64(len(weissbier)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, "Weißbier", got)
		})
	}
}

func TestStringifyViewKeepsReadPosition(t *testing.T) {
	r := bytes.NewReader([]byte("abcdef"))
	_, err := r.Seek(3, io.SeekStart)
	require.NoError(t, err)

	got, err := Stringify(r)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", got)
	assert.Equal(t, 3, r.Len())
}

func TestStringifyBufferIsNotDrained(t *testing.T) {
	buf := bytes.NewBufferString("abc")
	got, err := Stringify(buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "abc", buf.String())
}

func TestStringifyEmptyBinary(t *testing.T) {
	for _, input := range []any{[]byte{}, []byte(nil), new(bytes.Buffer), bytes.NewReader(nil)} {
		got, err := Stringify(input)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
}

func TestStringifyInvalidUTF8(t *testing.T) {
	for _, input := range []any{[]byte("ab\xff"), bytes.NewBufferString("ab\xff"), bytes.NewReader([]byte("ab\xff"))} {
		got, err := Stringify(input)
		require.Error(t, err)
		assert.Nil(t, got)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.ErrorIs(t, err, encoding.ErrInvalidUTF8)
		assert.LessOrEqual(t, decodeErr.Offset, 2)
	}
}

func TestStringifyUUID(t *testing.T) {
	u := uuid.New()

	got, err := Stringify(u)
	require.NoError(t, err)
	again, err := Stringify(u.String())
	require.NoError(t, err)
	assert.Equal(t, again, got)

	got, err = Stringify(&u)
	require.NoError(t, err)
	assert.Equal(t, u.String(), got)

	got, err = Stringify(uuid.MustParse("6BA7B810-9DAD-11D1-80B4-00C04FD430C8"))
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", got)
}

func TestStringifyTimestamp(t *testing.T) {
	instant := time.Date(2016, time.March, 7, 8, 9, 10, 11000, time.UTC)
	eastern := time.FixedZone("EST", -5*60*60)
	india := time.FixedZone("IST", 5*60*60+30*60)

	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"utc", instant, "2016-03-07T08:09:10.000011+0000"},
		{"negative offset", instant.In(eastern), "2016-03-07T03:09:10.000011-0500"},
		{"half hour offset", instant.In(india), "2016-03-07T13:39:10.000011+0530"},
		{"pointer", &instant, "2016-03-07T08:09:10.000011+0000"},
		{"naive", NaiveTime{instant.In(eastern)}, "2016-03-07T03:09:10.000011"},
		{"truncated to microseconds", time.Date(2016, 1, 2, 3, 4, 5, 999, time.UTC), "2016-01-02T03:04:05.000000+0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStringifyTimestampSuffix(t *testing.T) {
	now := time.Now()

	aware, err := Stringify(now)
	require.NoError(t, err)
	naive, err := Stringify(NaiveTime{now})
	require.NoError(t, err)

	assert.Len(t, aware.(string), len(naive.(string))+5)
	assert.True(t, strings.HasPrefix(aware.(string), naive.(string)))
	assert.Equal(t, now.Format("2006-01-02T15:04:05.000000"), naive)
}

type customStamp struct{}

func (customStamp) Format(layout string) string { return "custom:" + layout }

func TestStringifyTimestampCapability(t *testing.T) {
	got, err := Stringify(customStamp{})
	require.NoError(t, err)
	assert.Equal(t, "custom:"+TimestampLayout+ZoneLayout, got)
}

func TestStringifyPassThrough(t *testing.T) {
	type point struct{ X, Y int }
	var nilTime *time.Time
	var nilBuffer *bytes.Buffer
	var nilUUID *uuid.UUID

	tests := []struct {
		name  string
		input any
	}{
		{"int", 42},
		{"float", 22.0 / 7.0},
		{"true", true},
		{"false", false},
		{"nil", nil},
		{"string", "Hi there"},
		{"struct", point{1, 2}},
		{"nil time pointer", nilTime},
		{"nil buffer", nilBuffer},
		{"nil uuid pointer", nilUUID},
		{"byte array", [4]byte{1, 2, 3, 4}},
		{"big int", big.NewInt(65)},
		{"big int with invalid utf-8 bytes", big.NewInt(255)},
		{"big float", big.NewFloat(1.5)},
		{"json number", json.Number("12.50")},
		{"string reader", strings.NewReader(weissbier)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestStringifyIdempotent(t *testing.T) {
	for _, input := range []any{uuid.New(), time.Now(), []byte("x"), bytes.NewBufferString("y"), 1, nil} {
		once, err := Stringify(input)
		require.NoError(t, err)
		twice, err := Stringify(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	}
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt([]byte, int64) (int, error) { return 0, errors.New("boom") }

func TestStringifyViewReadFailure(t *testing.T) {
	_, err := Stringify(io.NewSectionReader(failingReaderAt{}, 0, 4))
	assert.ErrorContains(t, err, "boom")
}

func TestRuleOrder(t *testing.T) {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{"uuid", "timestamp", "view", "buffer"}, names)
}
