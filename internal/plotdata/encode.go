package plotdata

import (
	"encoding/json"
	"math"
	"strconv"
)

// Sentinel strings carrying non-finite floats through JSON.
const (
	SentinelNaN         = "NaN"
	SentinelInfinity    = "Infinity"
	SentinelNegInfinity = "-Infinity"
)

// jsonFloat encodes non-finite values as sentinel strings.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"` + SentinelNaN + `"`), nil
	case math.IsInf(v, 1):
		return []byte(`"` + SentinelInfinity + `"`), nil
	case math.IsInf(v, -1):
		return []byte(`"` + SentinelNegInfinity + `"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// MarshalJSON encodes a tooltip column as its annotation object and a data
// column as its label.
func (c Column) MarshalJSON() ([]byte, error) {
	if c.Role != "" {
		return json.Marshal(map[string]string{"type": c.Type, "role": c.Role})
	}
	return json.Marshal(c.Label)
}

// MarshalJSON encodes the row as its ordered tuple.
func (r PlotRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		jsonFloat(r.Threshold),
		jsonFloat(r.Accuracy), r.AccuracyTooltip,
		jsonFloat(r.Precision), r.PrecisionTooltip,
		jsonFloat(r.Recall), r.RecallTooltip,
		jsonFloat(r.F1), r.F1Tooltip,
	})
}

// MarshalJSON encodes the table as a 2D array, header first.
func (t PlotTable) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, t.Len())
	header := t.Header
	if header == nil {
		header = HeaderRow()
	}
	out = append(out, header)
	for _, row := range t.Rows {
		out = append(out, row)
	}
	return json.Marshal(out)
}
