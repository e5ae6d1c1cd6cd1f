// Package batch writes the email batch file consumed by the mailer.
//
// The file starts with a "# <timestamp>" comment line followed by one
// <email-message> block per recipient. Output goes to a temporary file next
// to the destination and only replaces it on Commit, so an aborted run never
// leaves a partial batch behind.
package batch

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultFileName is the batch file name used when nothing overrides it.
const DefaultFileName = "Program participant schedules email.txt"

// TimestampLayout formats the header comment.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Writer accumulates messages into a batch file.
type Writer struct {
	dest  string
	file  *os.File
	buf   *bufio.Writer
	count int
	size  int64
	done  bool
}

// Create opens a temporary file beside dest and writes the header stamped
// with now.
func Create(dest string, now time.Time) (*Writer, error) {
	file, err := os.CreateTemp(filepath.Dir(dest), ".batch-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create batch file for %s: %w", dest, err)
	}

	w := &Writer{dest: dest, file: file, buf: bufio.NewWriter(file)}
	if err := w.printf("# %s\n\n", now.Format(TimestampLayout)); err != nil {
		w.Abort()
		return nil, err
	}
	return w, nil
}

// Write appends one message addressed to addr.
func (w *Writer) Write(addr, content string) error {
	err := w.printf("<email-message><email-address>%s</email-address><content>%s\n</content></email-message>\n\n\n", addr, content)
	if err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of messages written.
func (w *Writer) Count() int { return w.count }

// Size returns the number of bytes written, header included.
func (w *Writer) Size() int64 { return w.size }

// Path returns the destination path.
func (w *Writer) Path() string { return w.dest }

// Commit flushes the batch and moves it to its destination.
func (w *Writer) Commit() error {
	if w.done {
		return nil
	}
	w.done = true

	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		os.Remove(w.file.Name())
		return fmt.Errorf("failed to write batch file: %w", err)
	}
	// CreateTemp opens the file 0600; the batch is meant to be shared.
	_ = w.file.Chmod(0o644)
	if err := w.file.Close(); err != nil {
		os.Remove(w.file.Name())
		return fmt.Errorf("failed to close batch file: %w", err)
	}
	if err := os.Rename(w.file.Name(), w.dest); err != nil {
		os.Remove(w.file.Name())
		return fmt.Errorf("failed to move batch file to %s: %w", w.dest, err)
	}
	return nil
}

// Abort discards everything written. It is safe to call after Commit.
func (w *Writer) Abort() {
	if w.done {
		return
	}
	w.done = true
	w.file.Close()
	os.Remove(w.file.Name())
}

func (w *Writer) printf(format string, args ...any) error {
	n, err := fmt.Fprintf(w.buf, format, args...)
	w.size += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}
	return nil
}
