// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the CSV helpers.
var (
	ErrEmptyDataset    = errors.New("dataset has no rows")
	ErrRaggedDataset   = errors.New("dataset rows have different lengths")
	ErrNotEnoughColumn = errors.New("dataset needs at least one feature and one target column")
)

// EncodeMatrixCSV writes X as headerless CSV, one row per sample. NaN cells
// are written empty so that the service reads them as missing values.
func EncodeMatrixCSV(X mat.Matrix) ([]byte, error) {
	rows, cols := X.Dims()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	record := make([]string, cols)
	for i := range rows {
		for j := range cols {
			record[j] = formatCell(X.At(i, j))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error encoding row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

// EncodeVectorCSV writes y as a single-column headerless CSV.
func EncodeVectorCSV(y mat.Vector) ([]byte, error) {
	return EncodeMatrixCSV(y)
}

// ReadFeaturesCSV reads a numeric feature matrix. A first row containing a
// non-numeric cell is treated as a header and skipped. Empty cells and "NaN"
// become NaN.
func ReadFeaturesCSV(r io.Reader) (*mat.Dense, error) {
	records, err := readNumericRecords(r)
	if err != nil {
		return nil, err
	}

	cols := len(records[0])
	data := make([]float64, 0, len(records)*cols)
	for _, rec := range records {
		data = append(data, rec...)
	}

	return mat.NewDense(len(records), cols, data), nil
}

// ReadDatasetCSV reads a labelled dataset whose last column is the target.
// Header handling is the same as in [ReadFeaturesCSV].
func ReadDatasetCSV(r io.Reader) (*mat.Dense, *mat.VecDense, error) {
	records, err := readNumericRecords(r)
	if err != nil {
		return nil, nil, err
	}

	cols := len(records[0])
	if cols < 2 {
		return nil, nil, ErrNotEnoughColumn
	}

	features := cols - 1
	xData := make([]float64, 0, len(records)*features)
	yData := make([]float64, 0, len(records))
	for _, rec := range records {
		xData = append(xData, rec[:features]...)
		yData = append(yData, rec[features])
	}

	return mat.NewDense(len(records), features, xData), mat.NewVecDense(len(records), yData), nil
}

func readNumericRecords(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}

	if len(raw) > 0 && isHeader(raw[0]) {
		raw = raw[1:]
	}
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}

	cols := len(raw[0])
	records := make([][]float64, len(raw))
	for i, rec := range raw {
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedDataset, i+1, len(rec), cols)
		}
		records[i] = make([]float64, cols)
		for j, cell := range rec {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
			records[i][j] = v
		}
	}

	return records, nil
}

func isHeader(record []string) bool {
	for _, cell := range record {
		if _, err := parseCell(cell); err != nil {
			return true
		}
	}
	return false
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
