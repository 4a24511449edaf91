package pg

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	assert "github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	now := time.Now()

	assert.Equal(t, map[string]any{
		"id":      1,
		"small":   2,
		"ratio":   0.5,
		"whole":   3,
		"price":   12.5,
		"missing": nil,
		"uuid":    "01020304-0506-0708-090a-0b0c0d0e0f10",
		"tags":    []any{1, "a"},
		"at":      now,
	}, normalize(map[string]any{
		"id":      int64(1),
		"small":   int16(2),
		"ratio":   float32(0.5),
		"whole":   float64(3),
		"price":   pgtype.Numeric{Int: big.NewInt(125), Exp: -1, Valid: true},
		"missing": pgtype.Numeric{},
		"uuid":    [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		"tags":    []any{int32(1), "a"},
		"at":      now,
	}))
}

func TestNormalizeTimesToUTC(t *testing.T) {
	local := time.Date(2024, 1, 2, 5, 4, 5, 0, time.FixedZone("EET", 2*60*60))

	v := normalize(map[string]any{"at": local})
	assert.Equal(t, map[string]any{"at": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}, v)
}

func TestResolveLine(t *testing.T) {
	sql := "SELECT 1;\n\nSELECT 2"
	assert.Equal(t, 1, resolveLine(sql, 0))
	assert.Equal(t, 3, resolveLine(sql, 11))
}
