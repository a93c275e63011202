// internal/records/records.go
// Package records loads per-threshold metric records from JSON and JSONL
// files and validates their shape.
package records

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwiater/accuracycharts/internal/plotdata"
)

// envelope is the object form of a records document: {"data": [...]}.
type envelope struct {
	Data []plotdata.MetricRecord `json:"data"`
}

// Load reads records from path. Files ending in .jsonl hold one record per
// line; anything else is a JSON array or a {"data": [...]} object.
func Load(path string) ([]plotdata.MetricRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open records file %s: %w", path, err)
	}
	defer file.Close()

	if IsJSONL(path) {
		return decodeJSONL(file, path)
	}
	recs, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to parse records file %s: %w", path, err)
	}
	return recs, nil
}

// IsJSONL reports whether path names a line-delimited records file.
func IsJSONL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".jsonl")
}

// Decode reads a JSON array of records or a {"data": [...]} object.
func Decode(r io.Reader) ([]plotdata.MetricRecord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Parse decodes a records document held in memory.
func Parse(raw []byte) ([]plotdata.MetricRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []plotdata.MetricRecord{}, nil
	}

	switch trimmed[0] {
	case '[':
		var recs []plotdata.MetricRecord
		if err := json.Unmarshal(trimmed, &recs); err != nil {
			return nil, err
		}
		return recs, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		if env.Data == nil {
			return nil, fmt.Errorf("records object has no \"data\" array")
		}
		return env.Data, nil
	default:
		return nil, fmt.Errorf("json did not match records array or {\"data\": [...]} object")
	}
}

func decodeJSONL(r io.Reader, path string) ([]plotdata.MetricRecord, error) {
	recs := make([]plotdata.MetricRecord, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec plotdata.MetricRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("unable to parse records JSONL %s:%d: %w", path, lineNo, err)
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records file %s: %w", path, err)
	}
	return recs, nil
}
