package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// fileTimestampLayout keeps file names sortable and free of colons
const fileTimestampLayout = "2006-01-02T15-04-05"

// DocumentFileName builds the output name for a document, e.g.
// hey-sweetie-messages_2026-10-14T09-30-00.pdf. The timestamp is in UTC.
func DocumentFileName(document string, at time.Time) string {
	return fmt.Sprintf("hey-sweetie-%s_%s.pdf", document, at.UTC().Format(fileTimestampLayout))
}

// FileWriter saves rendered documents into a directory
// Implements DocumentWriterInterface
type FileWriter struct {
	dir string
}

// Ensure FileWriter implements DocumentWriterInterface
var _ DocumentWriterInterface = (*FileWriter)(nil)

// NewFileWriter creates a FileWriter; an empty dir means ./pdf
func NewFileWriter(dir string) *FileWriter {
	if dir == "" {
		dir = "pdf"
	}
	return &FileWriter{dir: dir}
}

// Dir returns the output directory
func (w *FileWriter) Dir() string {
	return w.dir
}

// WriteDocument writes data to dir/name, creating dir when needed
func (w *FileWriter) WriteDocument(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save document %s: %w", name, err)
	}

	log.Infof("✓ Saved %s", path)
	return path, nil
}
