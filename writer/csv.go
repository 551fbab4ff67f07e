package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"marketgen/logger"
)

// CSV writes one record type to a single comma-separated file. The target
// is created (or truncated) with the header already written. Exactly one
// goroutine may use a CSV value.
type CSV struct {
	file *os.File
	w    *csv.Writer
	path string
	name string
	rows int
}

// NewCSV creates or overwrites the file at path and writes the header row.
func NewCSV(path string, header []string) (*CSV, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file '%s': %w", path, err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write header to '%s': %w", path, err)
	}

	return &CSV{
		file: file,
		w:    w,
		path: path,
		name: filepath.Base(path),
	}, nil
}

// Write appends one data record.
func (c *CSV) Write(record []string) error {
	if err := c.w.Write(record); err != nil {
		return fmt.Errorf("failed to write record to '%s': %w", c.path, err)
	}
	c.rows++

	size := len(record) // separators plus trailing newline
	for _, field := range record {
		size += len(field)
	}
	logger.RecordOutput(c.name, size)
	return nil
}

// Rows returns the number of data records written so far, excluding the
// header.
func (c *CSV) Rows() int {
	return c.rows
}

// Close flushes buffered records and closes the file. A flush error is
// reported before the close error.
func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("failed to flush '%s': %w", c.path, err)
	}
	if err := c.file.Close(); err != nil {
		return fmt.Errorf("failed to close '%s': %w", c.path, err)
	}
	return nil
}
