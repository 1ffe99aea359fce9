package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danfiner/projsa/internal/alloc"
)

// ReadPreferences parses a P×N preference CSV: one row per project,
// one column per pair, each cell blank or a single digit in
// {1,2,3,4}. p and n are the declared dimensions; a parsed shape that
// disagrees is ErrShapeMismatch.
func ReadPreferences(path string, p, n int) (alloc.PreferenceMatrix, error) {
	rows, err := readRows(path)
	if err != nil {
		return alloc.PreferenceMatrix{}, err
	}
	if len(rows) != p {
		return alloc.PreferenceMatrix{}, fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(rows), p)
	}

	grid := make([][]int, p)
	for r, row := range rows {
		if len(row) != n {
			return alloc.PreferenceMatrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, r, len(row), n)
		}
		grid[r] = make([]int, n)
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // blank → 0
			}
			v, err := strconv.Atoi(cell)
			if err != nil || v < alloc.MinRank || v > alloc.MaxRank {
				return alloc.PreferenceMatrix{}, fmt.Errorf("%w: preferences[%d][%d]=%q", ErrBadCell, r, c, cell)
			}
			grid[r][c] = v
		}
	}
	return alloc.PreferenceMatrix{C: grid}, nil
}

// ReadWorkloads parses a P×L workload CSV: one row per project, one
// column per supervisor, each cell blank or a decimal in (0,1]. p and
// l are the declared dimensions.
func ReadWorkloads(path string, p, l int) (alloc.WorkloadMatrix, error) {
	rows, err := readRows(path)
	if err != nil {
		return alloc.WorkloadMatrix{}, err
	}
	if len(rows) != p {
		return alloc.WorkloadMatrix{}, fmt.Errorf("%w: %d rows, want %d", ErrShapeMismatch, len(rows), p)
	}

	grid := make([][]float64, p)
	for r, row := range rows {
		if len(row) != l {
			return alloc.WorkloadMatrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, r, len(row), l)
		}
		grid[r] = make([]float64, l)
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue // blank → 0.0
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || v <= 0 || v > 1 {
				return alloc.WorkloadMatrix{}, fmt.Errorf("%w: workloads[%d][%d]=%q", ErrBadCell, r, c, cell)
			}
			grid[r][c] = v
		}
	}
	return alloc.WorkloadMatrix{W: grid}, nil
}

// readRows opens path and parses it as CSV, tolerating ragged rows (a
// trailing blank cell, or rows of differing length — shape is
// validated by the caller against the declared dimensions) and the
// trailing \r before \n that spreadsheet exports commonly leave.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = false

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
