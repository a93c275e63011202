// internal/plotdata/options.go
package plotdata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExplorerAction is a pan/zoom gesture the chart surface enables.
type ExplorerAction string

const (
	DragToPan         ExplorerAction = "dragToPan"
	ScrollToZoom      ExplorerAction = "scrollToZoom"
	RightClickToReset ExplorerAction = "rightClickToReset"
)

// ParseExplorerAction accepts the gesture identifiers case-insensitively.
func ParseExplorerAction(s string) (ExplorerAction, error) {
	for _, action := range []ExplorerAction{DragToPan, ScrollToZoom, RightClickToReset} {
		if strings.EqualFold(strings.TrimSpace(s), string(action)) {
			return action, nil
		}
	}
	return "", fmt.Errorf("unknown explorer action %q (want dragToPan, scrollToZoom or rightClickToReset)", s)
}

const (
	defaultLegendFontSize = 9
	defaultHAxisTitle     = "Thresholds"
	defaultVAxisTitle     = "Accuracy / Precision / Recall / F1"
)

// ChartOptions is the static rendering configuration handed to a chart
// surface. The zero value is not useful; start from DefaultChartOptions.
// Values are immutable: accessors return copies and WithOverrides builds a
// new value.
type ChartOptions struct {
	legendFontSize  int
	hAxisTitle      string
	vAxisTitle      string
	explorerActions []ExplorerAction
}

// DefaultChartOptions returns legend font size 9, the "Thresholds" and
// "Accuracy / Precision / Recall / F1" axis titles and all three explorer
// gestures.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		legendFontSize:  defaultLegendFontSize,
		hAxisTitle:      defaultHAxisTitle,
		vAxisTitle:      defaultVAxisTitle,
		explorerActions: []ExplorerAction{DragToPan, ScrollToZoom, RightClickToReset},
	}
}

func (o ChartOptions) LegendFontSize() int { return o.legendFontSize }
func (o ChartOptions) HAxisTitle() string  { return o.hAxisTitle }
func (o ChartOptions) VAxisTitle() string  { return o.vAxisTitle }

// ExplorerActions returns a copy of the enabled gestures.
func (o ChartOptions) ExplorerActions() []ExplorerAction {
	out := make([]ExplorerAction, len(o.explorerActions))
	copy(out, o.explorerActions)
	return out
}

// Overrides replaces individual options. Zero fields keep the current value.
type Overrides struct {
	LegendFontSize  int
	HAxisTitle      string
	VAxisTitle      string
	ExplorerActions []string
}

// WithOverrides returns a copy of o with the non-zero fields of ov applied.
func (o ChartOptions) WithOverrides(ov Overrides) (ChartOptions, error) {
	next := o
	next.explorerActions = o.ExplorerActions()
	if ov.LegendFontSize < 0 {
		return ChartOptions{}, fmt.Errorf("legend font size must be positive, got %d", ov.LegendFontSize)
	}
	if ov.LegendFontSize > 0 {
		next.legendFontSize = ov.LegendFontSize
	}
	if t := strings.TrimSpace(ov.HAxisTitle); t != "" {
		next.hAxisTitle = t
	}
	if t := strings.TrimSpace(ov.VAxisTitle); t != "" {
		next.vAxisTitle = t
	}
	if len(ov.ExplorerActions) > 0 {
		actions := make([]ExplorerAction, 0, len(ov.ExplorerActions))
		for _, name := range ov.ExplorerActions {
			action, err := ParseExplorerAction(name)
			if err != nil {
				return ChartOptions{}, err
			}
			actions = append(actions, action)
		}
		next.explorerActions = actions
	}
	return next, nil
}

// Map returns the option mapping in the shape a Google Charts LineChart
// expects.
func (o ChartOptions) Map() map[string]any {
	actions := make([]string, 0, len(o.explorerActions))
	for _, a := range o.explorerActions {
		actions = append(actions, string(a))
	}
	return map[string]any{
		"legend":   map[string]any{"textStyle": map[string]any{"fontSize": o.legendFontSize}},
		"hAxis":    map[string]any{"title": o.hAxisTitle},
		"vAxis":    map[string]any{"title": o.vAxisTitle},
		"explorer": map[string]any{"actions": actions},
	}
}

// MarshalJSON encodes Map.
func (o ChartOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Map())
}
