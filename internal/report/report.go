package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Assignment is one pair's final outcome, with pair and project
// indices converted to 1-based.
type Assignment struct {
	Pair    int `json:"pair"`
	Project int `json:"project"`
	Pref    int `json:"pref"`
}

// Summary is the JSON twin of finalConfig.txt.
type Summary struct {
	RunID       string       `json:"runId"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Assignments []Assignment `json:"assignments"`
	FinalEnergy float64      `json:"finalEnergy"`
}

// Writer appends the plain-text run report.
type Writer struct {
	f *os.File
	w *bufio.Writer
}

// NewWriter opens path for appending, creating it if necessary.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &Writer{f: f, w: bufio.NewWriter(f)}, nil
}

// WritePair appends one "<pair>,<project>,<pref>" line, both indices
// already converted to 1-based.
func (w *Writer) WritePair(pair1Based, project1Based, pref int) error {
	_, err := fmt.Fprintf(w.w, "%d,%d,%d\n", pair1Based, project1Based, pref)
	return err
}

// Finish writes the "Final energy: <float>" trailer, flushes, and
// closes the underlying file.
func (w *Writer) Finish(finalEnergy float64) error {
	if _, err := fmt.Fprintf(w.w, "Final energy: %f\n", finalEnergy); err != nil {
		return err
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	return w.f.Close()
}

// WriteJSON writes a Summary alongside finalConfig.txt, truncating any
// existing file at path (unlike the append-only text report, a JSON
// summary describes exactly one run).
func WriteJSON(path string, summary Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
