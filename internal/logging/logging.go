package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

var (
	mu      sync.Mutex
	logFile *os.File
	debug   bool
)

// Init sends the std logger to stdout and, when logPath is set, to an
// append-mode log file as well.
func Init(logPath string) error {
	return InitWriter(os.Stdout, logPath)
}

// InitWriter is Init with a caller-chosen console writer. A nil console
// writes only to the file.
func InitWriter(console io.Writer, logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	if console != nil {
		writers = append(writers, console)
	}

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close restores stderr output and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// SetDebug toggles LogDebug output.
func SetDebug(enabled bool) {
	mu.Lock()
	debug = enabled
	mu.Unlock()
}

func debugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogDebug logs only when debug output is enabled.
func LogDebug(format string, args ...any) {
	if !debugEnabled() {
		return
	}
	log.Println("[DEBUG] " + fmt.Sprintf(format, args...))
}

// LogTable writes a one-line summary of a rebuilt plot table. A non-nil
// payload, typically the chart options, is appended as JSON.
func LogTable(source string, table plotdata.PlotTable, payload any) {
	log.Println(buildTableMessage(source, table, payload))
}

func buildTableMessage(source string, table plotdata.PlotTable, payload any) string {
	src := strings.TrimSpace(source)
	if src == "" {
		src = "unknown"
	}
	parts := []string{"[TABLE]"}
	parts = append(parts, fmt.Sprintf("source=%s", src))
	parts = append(parts, fmt.Sprintf("rows=%d", len(table.Rows)))
	parts = append(parts, fmt.Sprintf("nonfinite=%d", countNonFinite(table)))
	if payload != nil {
		parts = append(parts, fmt.Sprintf("payload=%s", formatPayload(payload)))
	}
	return strings.Join(parts, " ")
}

func countNonFinite(table plotdata.PlotTable) int {
	n := 0
	for _, row := range table.Rows {
		for _, v := range []float64{row.Accuracy, row.Precision, row.Recall, row.F1} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				n++
			}
		}
	}
	return n
}

func formatPayload(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}
	return string(data)
}
