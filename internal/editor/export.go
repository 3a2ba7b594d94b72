package editor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FilenameBase is the name every exported file shares; only the extension
// depends on the language.
const FilenameBase = "code"

// Artifact is an exported buffer ready to be downloaded or written to disk.
type Artifact struct {
	Filename string
	Content  []byte
}

// Export snapshots the buffer as an artifact named after the selected
// language. Calling it twice without edits yields identical artifacts.
func (s *State) Export() Artifact {
	return Artifact{
		Filename: Filename(s.lang),
		Content:  []byte(s.buffer),
	}
}

// Filename returns the export name for lang, e.g. "code.py".
func Filename(lang Language) string {
	return FilenameBase + "." + lang.Extension()
}

// MediaType is the content type used when serving an artifact.
func (a Artifact) MediaType() string {
	return "text/plain; charset=utf-8"
}

// WriteTo writes the artifact content to w unchanged.
func (a Artifact) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(a.Content).WriteTo(w)
}

// WriteFile stores the artifact as dir/Filename and returns the final path.
// The content goes through a temporary file in dir that is renamed into place;
// the temporary file is removed on every failure path.
func (a Artifact) WriteFile(dir string) (path string, err error) {
	if a.Filename == "" || filepath.Base(a.Filename) != a.Filename {
		return "", fmt.Errorf("invalid artifact filename %q", a.Filename)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+a.Filename+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err = a.WriteTo(tmp); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", a.Filename, err)
	}
	if err = tmp.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync %s: %w", a.Filename, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", a.Filename, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("failed to chmod %s: %w", a.Filename, err)
	}

	path = filepath.Join(dir, a.Filename)
	if err = os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("failed to move %s into place: %w", a.Filename, err)
	}
	return path, nil
}
