package watch

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFile_InitialRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	wantErr := errors.New("boom")

	err := File(path, func() error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Errorf("File = %v, want initial render error", err)
	}
}

func TestFile_MissingDir(t *testing.T) {
	calls := 0
	err := File("/no/such/dir/session.jsonl", func() error {
		calls++
		return nil
	})
	if err == nil {
		t.Fatal("expected error for unwatchable directory")
	}
	if calls != 0 {
		t.Errorf("render called %d times before watch was established", calls)
	}
}
