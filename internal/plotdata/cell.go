// internal/plotdata/cell.go
package plotdata

import (
	"encoding/json"
	"math"
	"strconv"
)

// CellKind tags the shape of an extracted cell value.
type CellKind int

const (
	// CellAbsent means the field was missing or had no recognised shape.
	CellAbsent CellKind = iota
	// CellNumber holds a plain float.
	CellNumber
	// CellString holds text, typically a "NaN" or "Infinity" sentinel.
	CellString
)

// CellValue is what an Extractor pulls out of a record field.
type CellValue struct {
	Kind   CellKind
	Number float64
	Text   string
}

// NumberCell wraps a float.
func NumberCell(v float64) CellValue { return CellValue{Kind: CellNumber, Number: v} }

// StringCell wraps text.
func StringCell(s string) CellValue { return CellValue{Kind: CellString, Text: s} }

// Falsy reports whether the cell counts as missing: absent, the number 0,
// a numeric NaN or the empty string. A real 0 and a missing value are
// indistinguishable here.
func (c CellValue) Falsy() bool {
	switch c.Kind {
	case CellNumber:
		return c.Number == 0 || math.IsNaN(c.Number)
	case CellString:
		return c.Text == ""
	default:
		return true
	}
}

// Float resolves the cell to the value that is plotted. Falsy cells become
// 0; strings go through ParseFloat so "NaN" and "Infinity" survive.
func (c CellValue) Float() float64 {
	if c.Falsy() {
		return 0
	}
	if c.Kind == CellString {
		return ParseFloat(c.Text)
	}
	return c.Number
}

// Extractor pulls a float-like value for field out of a record.
type Extractor interface {
	ExtractFloatValue(record MetricRecord, field string) CellValue
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(record MetricRecord, field string) CellValue

// ExtractFloatValue calls f.
func (f ExtractorFunc) ExtractFloatValue(record MetricRecord, field string) CellValue {
	return f(record, field)
}

// DefaultExtractor understands plain numbers, strings and the wrapper
// objects metric writers emit: {"value": x}, {"doubleValue": x} and
// {"boundedValue": {"value": x}}.
type DefaultExtractor struct{}

// ExtractFloatValue implements Extractor.
func (DefaultExtractor) ExtractFloatValue(record MetricRecord, field string) CellValue {
	if record == nil {
		return CellValue{}
	}
	raw, ok := record[field]
	if !ok {
		return CellValue{}
	}
	return cellFromAny(raw)
}

var wrapperKeys = []string{"value", "doubleValue", "boundedValue"}

func cellFromAny(v any) CellValue {
	switch val := v.(type) {
	case float64:
		return NumberCell(val)
	case float32:
		return NumberCell(float64(val))
	case int:
		return NumberCell(float64(val))
	case int64:
		return NumberCell(float64(val))
	case int32:
		return NumberCell(float64(val))
	case uint:
		return NumberCell(float64(val))
	case uint64:
		return NumberCell(float64(val))
	case uint32:
		return NumberCell(float64(val))
	case json.Number:
		if f, err := strconv.ParseFloat(string(val), 64); err == nil {
			return NumberCell(f)
		}
		return StringCell(string(val))
	case string:
		return StringCell(val)
	case map[string]any:
		for _, key := range wrapperKeys {
			if inner, ok := val[key]; ok {
				return cellFromAny(inner)
			}
		}
		return CellValue{}
	case MetricRecord:
		return cellFromAny(map[string]any(val))
	default:
		return CellValue{}
	}
}
