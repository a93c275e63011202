package plotdata

// Chart holds the options and current table of one accuracy chart. SetData
// recomputes the whole table from the new records, the way a data binding
// reruns a computed property. A Chart is not safe for concurrent use;
// callers serialize updates.
type Chart struct {
	options   ChartOptions
	extractor Extractor
	records   []MetricRecord
	table     PlotTable
}

// NewChart returns a chart with a header-only table. A nil extractor falls
// back to DefaultExtractor.
func NewChart(options ChartOptions, extractor Extractor) *Chart {
	if extractor == nil {
		extractor = DefaultExtractor{}
	}
	return &Chart{
		options:   options,
		extractor: extractor,
		table:     BuildPlotTableWith(nil, extractor),
	}
}

// SetData replaces the records and returns the rebuilt table.
func (c *Chart) SetData(records []MetricRecord) PlotTable {
	c.records = records
	c.table = BuildPlotTableWith(records, c.extractor)
	return c.table
}

// Data returns the records last passed to SetData.
func (c *Chart) Data() []MetricRecord { return c.records }

// Table returns the current table.
func (c *Chart) Table() PlotTable { return c.table }

// Options returns the chart options.
func (c *Chart) Options() ChartOptions { return c.options }
