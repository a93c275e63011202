package records

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// metricCellSchema accepts everything the cell extractor understands.
const metricCellSchema = `{"type": ["number", "string", "object", "null"]}`

const recordSchema = `{
  "type": "object",
  "properties": {
    "threshold": {"type": ["number", "string", "null"]},
    "accuracy": ` + metricCellSchema + `,
    "precision": ` + metricCellSchema + `,
    "recall": ` + metricCellSchema + `
  }
}`

const documentSchema = `{
  "definitions": {"record": ` + recordSchema + `},
  "oneOf": [
    {"type": "array", "items": {"$ref": "#/definitions/record"}},
    {
      "type": "object",
      "required": ["data"],
      "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/record"}}}
    }
  ]
}`

var (
	documentLoader = gojsonschema.NewStringLoader(documentSchema)
	recordLoader   = gojsonschema.NewStringLoader(recordSchema)
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("records validation failed: %s", strings.Join(e.Problems, ", "))
}

// Validate checks a records document (array or {"data": [...]}) against the
// records schema. It returns a *ValidationError when the document parses
// but does not conform.
func Validate(raw []byte) error {
	return validate(documentLoader, raw, "")
}

// ValidateFile validates path, line by line for JSONL files.
func ValidateFile(path string) error {
	if !IsJSONL(path) {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read records file %s: %w", path, err)
		}
		return Validate(raw)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open records file %s: %w", path, err)
	}
	defer file.Close()

	var problems []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		err := validate(recordLoader, line, fmt.Sprintf("line %d: ", lineNo))
		if verr, ok := err.(*ValidationError); ok {
			problems = append(problems, verr.Problems...)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading records file %s: %w", path, err)
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validate(schema gojsonschema.JSONLoader, raw []byte, prefix string) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, prefix+desc.String())
	}
	return &ValidationError{Problems: problems}
}
