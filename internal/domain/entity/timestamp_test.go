package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimestamp_TruncaYConvierteAUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	in := time.Date(2025, 3, 15, 10, 30, 45, 987654321, loc)

	out := NormalizeTimestamp(in)

	assert.Equal(t, time.UTC, out.Location())
	assert.Zero(t, out.Nanosecond(), "la precisión canónica es el segundo")
	assert.Equal(t, time.Date(2025, 3, 15, 15, 30, 45, 0, time.UTC), out)
}

func TestFormatParse_RoundTrip(t *testing.T) {
	orig := NormalizeTimestamp(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))

	s := FormatTimestamp(orig)
	assert.Equal(t, "2025-12-31 23:59:59", s)

	parsed, err := ParseTimestamp(s)
	require.NoError(t, err)
	assert.True(t, orig.Equal(parsed))
}

func TestParseTimestamp_FormatoInvalido(t *testing.T) {
	_, err := ParseTimestamp("31/12/2025 23:59")
	assert.Error(t, err)
}
