package pg

import (
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func resolveLine(sql string, pos int) int {
	line := 1

	for i := 0; i < len(sql); i += 1 {
		if i == pos {
			break
		}

		if sql[i] == '\n' {
			line += 1
		}
	}

	return line
}

// normalize converts a value scanned from postgres into the representation
// fixture documents decode into, so that strict equality holds between the
// two. Integers become `int`, floats `float64` (or `int` when integral),
// numerics the same, times UTC, and UUIDs their canonical string form.
func normalize(v any) any {
	switch v := v.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case float32:
		return normalizeFloat(float64(v))
	case float64:
		return normalizeFloat(v)
	case pgtype.Numeric:
		return normalizeNumeric(v)
	case time.Time:
		return v.UTC()
	case [16]byte:
		return formatUUID(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, c := range v {
			out[k] = normalize(c)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, c := range v {
			out[i] = normalize(c)
		}
		return out
	}

	return v
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int(f)
	}

	return f
}

func normalizeNumeric(n pgtype.Numeric) any {
	if !n.Valid {
		return nil
	}

	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return nil
	}

	return normalizeFloat(f.Float64)
}

func formatUUID(u [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
