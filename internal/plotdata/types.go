// internal/plotdata/types.go
// Package plotdata turns per-threshold metric records into the tabular
// value a line chart consumes: accuracy, precision, recall and F1 against
// the classification threshold.
package plotdata

// MetricRecord is one per-threshold entry as decoded from JSON. It carries
// at least "threshold", "accuracy", "precision" and "recall".
type MetricRecord map[string]any

// Record field names read by the adapter.
const (
	FieldThreshold = "threshold"
	FieldAccuracy  = "accuracy"
	FieldPrecision = "precision"
	FieldRecall    = "recall"
)

// Series names used in tooltips.
const (
	NameAccuracy  = "Accuracy"
	NamePrecision = "Precision"
	NameRecall    = "Recall"
	NameF1        = "F1 Score"
)

// Column describes one header cell. Data columns are plain labels; tooltip
// columns carry a type and a role annotation instead.
type Column struct {
	Label string
	Type  string
	Role  string
}

// IsTooltip reports whether the column is a tooltip role annotation.
func (c Column) IsTooltip() bool {
	return c.Role == "tooltip"
}

func tooltipColumn() Column {
	return Column{Type: "string", Role: "tooltip"}
}

// HeaderRow returns the fixed header of every plot table.
func HeaderRow() []Column {
	return []Column{
		{Label: "Threshold"},
		{Label: "Accuracy"},
		tooltipColumn(),
		{Label: "Precision"},
		tooltipColumn(),
		{Label: "Recall"},
		tooltipColumn(),
		{Label: "F1"},
		tooltipColumn(),
	}
}

// PlotRow is one data row of the table, in column order.
type PlotRow struct {
	Threshold        float64
	Accuracy         float64
	AccuracyTooltip  string
	Precision        float64
	PrecisionTooltip string
	Recall           float64
	RecallTooltip    string
	F1               float64
	F1Tooltip        string
}

// Values returns the row as the ordered tuple
// [threshold, accuracy, tooltip, precision, tooltip, recall, tooltip, f1, tooltip].
func (r PlotRow) Values() []any {
	return []any{
		r.Threshold,
		r.Accuracy, r.AccuracyTooltip,
		r.Precision, r.PrecisionTooltip,
		r.Recall, r.RecallTooltip,
		r.F1, r.F1Tooltip,
	}
}

// PlotTable is the header row followed by one PlotRow per input record.
type PlotTable struct {
	Header []Column
	Rows   []PlotRow
}

// Len counts the header as a row, so it is always len(Rows)+1.
func (t PlotTable) Len() int {
	return len(t.Rows) + 1
}

// Cells returns the table as a 2D value: header cells first (labels as
// strings, tooltip annotations as Column), then each row's Values.
func (t PlotTable) Cells() [][]any {
	out := make([][]any, 0, t.Len())
	header := make([]any, 0, len(t.Header))
	for _, col := range t.Header {
		if col.IsTooltip() {
			header = append(header, col)
			continue
		}
		header = append(header, col.Label)
	}
	out = append(out, header)
	for _, row := range t.Rows {
		out = append(out, row.Values())
	}
	return out
}
