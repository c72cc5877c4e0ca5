package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-listgen/pkg/model"
)

// MustLoadListing decodes a JSON listing fixture.
func MustLoadListing(t *testing.T, path string) model.Listing {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read listing fixture: %v", err)
	}
	var listing model.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		t.Fatalf("decode listing fixture %s: %v", path, err)
	}
	return listing
}

// AssertGolden compares got with the golden file at path. With
// UPDATE_GOLDENS set the file is rewritten instead.
func AssertGolden(t *testing.T, path, got string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render with a buffer and returns both the
// returned string and what was written to the buffer.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
