package records

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadArray(t *testing.T) {
	path := writeFile(t, "curves.json", `[{"threshold":0.5,"accuracy":0.8,"precision":"NaN","recall":{"value":0.9}}]`)
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0]["precision"] != "NaN" {
		t.Fatalf("expected NaN sentinel to be kept as text, got %v", recs[0]["precision"])
	}
}

func TestLoadEnvelope(t *testing.T) {
	path := writeFile(t, "curves.json", `{"data":[{"threshold":0.1},{"threshold":0.2}]}`)
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(recs) != 2 || recs[1]["threshold"] != 0.2 {
		t.Fatalf("unexpected records %v", recs)
	}
}

func TestLoadJSONL(t *testing.T) {
	path := writeFile(t, "curves.jsonl", "{\"threshold\":0.1}\n\n{\"threshold\":0.2}\n")
	recs, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}

func TestLoadJSONLBadLine(t *testing.T) {
	path := writeFile(t, "curves.jsonl", "{\"threshold\":0.1}\n{oops}\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected line-numbered error, got %v", err)
	}
}

func TestParseEdgeCases(t *testing.T) {
	recs, err := Parse([]byte("  "))
	if err != nil || len(recs) != 0 {
		t.Fatalf("expected empty records, got %v err=%v", recs, err)
	}
	if _, err := Parse([]byte(`{"rows":[]}`)); err == nil {
		t.Fatal("expected error for object without data")
	}
	if _, err := Parse([]byte(`42`)); err == nil {
		t.Fatal("expected error for scalar document")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte(`[{"threshold":0.5,"accuracy":"NaN","precision":{"value":1},"recall":null}]`)); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
	if err := Validate([]byte(`{"data":[{"threshold":"0.5"}]}`)); err != nil {
		t.Fatalf("expected valid envelope, got %v", err)
	}

	err := Validate([]byte(`[{"threshold":true}]`))
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Problems) == 0 {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := Validate([]byte(`[{`)); err == nil || errors.As(err, &verr) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateFileJSONL(t *testing.T) {
	path := writeFile(t, "curves.jsonl", "{\"threshold\":0.1}\n[1,2]\n{\"accuracy\":true}\n")
	err := ValidateFile(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	joined := strings.Join(verr.Problems, "\n")
	if !strings.Contains(joined, "line 2") || !strings.Contains(joined, "line 3") {
		t.Fatalf("expected problems on lines 2 and 3, got %s", joined)
	}
}
