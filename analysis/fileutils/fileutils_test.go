package fileutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("  hello  ", 10); got != "hello" {
		t.Fatalf("Truncate=%q", got)
	}
	if got := Truncate("hello", 0); got != "hello" {
		t.Fatalf("max=0 must not truncate, got %q", got)
	}
	got := Truncate(strings.Repeat("a", 20), 5)
	if got != "aaaaa…" {
		t.Fatalf("Truncate=%q, want %q", got, "aaaaa…")
	}
}

func TestWriteJSONFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.json")

	if err := WriteJSONFileAtomic(path, map[string]string{"selam": "Düğün"}, true); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// Non-ASCII must land literally, not escaped.
	if !strings.Contains(string(b), "Düğün") {
		t.Fatalf("content=%q", string(b))
	}
	if !strings.HasSuffix(string(b), "\n") {
		t.Fatalf("missing trailing newline")
	}

	// No temp files should remain next to the output.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp_out_") {
			t.Fatalf("leftover temp file %q", e.Name())
		}
	}
}

func TestDecodeModelJSON(t *testing.T) {
	t.Parallel()

	var out struct {
		A int `json:"a"`
	}

	if err := DecodeModelJSON(`{"a": 1}`, &out); err != nil {
		t.Fatalf("plain JSON: %v", err)
	}
	if out.A != 1 {
		t.Fatalf("A=%d", out.A)
	}

	if err := DecodeModelJSON("Here is the result:\n```json\n{\"a\": 2}\n```", &out); err != nil {
		t.Fatalf("wrapped JSON: %v", err)
	}
	if out.A != 2 {
		t.Fatalf("A=%d", out.A)
	}

	if err := DecodeModelJSON("", &out); err == nil {
		t.Fatalf("expected error for empty output")
	}
	if err := DecodeModelJSON("no json here", &out); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
}
