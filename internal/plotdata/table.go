// internal/plotdata/table.go
package plotdata

import (
	"encoding/json"
	"math"
)

const tooltipDigits = 5

// BuildPlotTable converts records into a plot table with the default
// extractor. The result always has len(records)+1 rows, keeps input order
// and never fails: bad input degrades to 0, NaN or ±Inf.
func BuildPlotTable(records []MetricRecord) PlotTable {
	return BuildPlotTableWith(records, DefaultExtractor{})
}

// BuildPlotTableWith is BuildPlotTable with a caller-supplied extractor.
func BuildPlotTableWith(records []MetricRecord, extractor Extractor) PlotTable {
	if extractor == nil {
		extractor = DefaultExtractor{}
	}
	table := PlotTable{
		Header: HeaderRow(),
		Rows:   make([]PlotRow, 0, len(records)),
	}
	for _, record := range records {
		table.Rows = append(table.Rows, buildRow(record, extractor))
	}
	return table
}

func buildRow(record MetricRecord, extractor Extractor) PlotRow {
	threshold := ClampThreshold(record[FieldThreshold])

	accuracy := extractor.ExtractFloatValue(record, FieldAccuracy).Float()
	recall := extractor.ExtractFloatValue(record, FieldRecall).Float()
	precision := extractor.ExtractFloatValue(record, FieldPrecision).Float()
	f1 := 2 * recall * precision / (recall + precision)

	return PlotRow{
		Threshold:        threshold,
		Accuracy:         accuracy,
		AccuracyTooltip:  Tooltip(NameAccuracy, accuracy, threshold),
		Precision:        precision,
		PrecisionTooltip: Tooltip(NamePrecision, precision, threshold),
		Recall:           recall,
		RecallTooltip:    Tooltip(NameRecall, recall, threshold),
		F1:               f1,
		F1Tooltip:        Tooltip(NameF1, f1, threshold),
	}
}

// ClampThreshold maps a raw threshold field into [0, 1]. Missing, zero,
// NaN and non-numeric values become 0; numeric strings are converted.
func ClampThreshold(raw any) float64 {
	v := thresholdValue(raw)
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func thresholdValue(raw any) float64 {
	switch val := raw.(type) {
	case string:
		if v, ok := toNumber(val); ok {
			return v
		}
		return 0
	case float64, float32, int, int64, int32, uint, uint64, uint32, json.Number:
		return cellFromAny(val).Float()
	default:
		return 0
	}
}

// Tooltip formats "<name>: <value>, threshold: <threshold>" with both
// numbers fixed to five decimals.
func Tooltip(name string, value, threshold float64) string {
	return name + ": " + FormatFixed(value, tooltipDigits) + ", threshold: " + FormatFixed(threshold, tooltipDigits)
}
