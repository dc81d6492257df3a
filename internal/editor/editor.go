// Package editor runs the interactive TOC edit round trip: serialized text
// out to a temp file, external editor, edited text back in.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Edit writes text to a temp file, blocks on the given editor command until
// it exits, and returns the saved content. Deleting every line in the editor
// is the caller's abort signal; Edit itself just hands the text back.
func Edit(editorCmd, text string) (string, error) {
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmp, err := os.CreateTemp("", "pdftoc-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command(editorCmd, tmpPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %q: %w", editorCmd, err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("read edited file: %w", err)
	}
	return string(edited), nil
}
