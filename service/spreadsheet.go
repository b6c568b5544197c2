package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/credlens/underwriter/dto"
)

// RowExtractor turns an uploaded tabular file into raw rows of cells. No
// schema is assumed beyond "cells in a row"; header detection and labeling
// are the resolver's problem.
type RowExtractor interface {
	ExtractRows(data []byte, filename string) ([][]string, error)
}

type rowExtractor struct{}

func NewRowExtractor() RowExtractor {
	return &rowExtractor{}
}

func (e *rowExtractor) ExtractRows(data []byte, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return extractCSVRows(data)
	case ".xlsx", ".xlsm":
		return extractWorkbookRows(data)
	default:
		return nil, fmt.Errorf("%w: %s", dto.ErrUnsupportedFormat, filename)
	}
}

func extractCSVRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Uploaded statements routinely have ragged rows; accept them all.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

func extractWorkbookRows(data []byte) ([][]string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	// Financial uploads keep the statement on the first sheet.
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
