package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEdit_RoundTripsUnchangedText(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix editor test")
	}
	// "true" exits immediately without touching the file.
	text := "Chapter 1  (p. 1)\n  Section 1.1  (p. 3)\n"
	got, err := Edit("true", text)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != text {
		t.Errorf("text changed through no-op editor:\n got %q\nwant %q", got, text)
	}
}

func TestEdit_AppliesEditorChanges(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix editor test")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "editor.sh")
	contents := "#!/bin/sh\nprintf 'Rewritten  (p. 2)\\n' > \"$1\"\n"
	if err := os.WriteFile(script, []byte(contents), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Edit(script, "Original  (p. 1)\n")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got != "Rewritten  (p. 2)\n" {
		t.Errorf("expected editor output returned, got %q", got)
	}
}

func TestEdit_EditorFailure(t *testing.T) {
	if _, err := Edit("/nonexistent/editor-binary", "text\n"); err == nil {
		t.Error("expected error when the editor cannot run")
	}
}
