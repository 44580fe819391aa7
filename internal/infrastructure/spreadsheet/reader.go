// Package spreadsheet reads specification records from CSV and XLSX uploads.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Row is one data line. Line counts the header as line 1.
type Row struct {
	Line int
	Spec domain.SpecificationRecord
	Err  error
}

type column int

const (
	colCompany column = iota
	colTypeName
	colCPUBrand
	colRam
	colMemory
	colGPUBrand
	colOpSys
	colWeight
	colInches
	colTouch
	colIPS
	colPixels
)

// Headers match after lowercasing and dropping "_" and spaces, so both
// "Cpu_Brand" and "cpu_brand" work.
var headerColumns = map[string]column{
	"company":  colCompany,
	"typename": colTypeName,
	"cpubrand": colCPUBrand,
	"ram":      colRam,
	"memory":   colMemory,
	"gpubrand": colGPUBrand,
	"opsys":    colOpSys,
	"weight":   colWeight,
	"inches":   colInches,
	"touch":    colTouch,
	"ips":      colIPS,
	"pixels":   colPixels,
}

// Read dispatches on the file extension.
func Read(filename string, r io.Reader, maxRows int) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r, maxRows)
	case ".xlsx":
		return ReadXLSX(r, maxRows)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

func ReadCSV(r io.Reader, maxRows int) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return parseRecords(records, maxRows)
}

func ReadXLSX(r io.Reader, maxRows int) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return parseRecords(records, maxRows)
}

func parseRecords(records [][]string, maxRows int) ([]Row, error) {
	if len(records) == 0 {
		return nil, errors.New("spreadsheet is empty")
	}
	index, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			return nil, fmt.Errorf("spreadsheet exceeds %d rows", maxRows)
		}
		spec, err := parseRecord(record, index)
		rows = append(rows, Row{Line: i + 2, Spec: spec, Err: err})
	}
	return rows, nil
}

func headerIndex(header []string) (map[column]int, error) {
	index := make(map[column]int, len(headerColumns))
	for i, name := range header {
		key := strings.ToLower(strings.NewReplacer("_", "", " ", "").Replace(strings.TrimSpace(name)))
		if col, ok := headerColumns[key]; ok {
			index[col] = i
		}
	}
	if len(index) != len(headerColumns) {
		var missing []string
		for name, col := range headerColumns {
			if _, ok := index[col]; !ok {
				missing = append(missing, name)
			}
		}
		return nil, fmt.Errorf("spreadsheet header is missing columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(record []string, index map[column]int) (domain.SpecificationRecord, error) {
	cell := func(col column) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	spec := domain.SpecificationRecord{
		Company:  cell(colCompany),
		TypeName: cell(colTypeName),
		CPUBrand: cell(colCPUBrand),
		Memory:   cell(colMemory),
		GPUBrand: cell(colGPUBrand),
		OpSys:    cell(colOpSys),
		Touch:    cell(colTouch),
		IPS:      cell(colIPS),
		Pixels:   cell(colPixels),
	}

	var problems []error
	if raw := cell(colRam); raw != "" {
		ram, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(raw), "GB")))
		if err != nil {
			problems = append(problems, fmt.Errorf("ram %q is not an integer", raw))
		} else {
			spec.Ram = &ram
		}
	}
	if raw := cell(colInches); raw != "" {
		inches, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			problems = append(problems, fmt.Errorf("inches %q is not a number", raw))
		} else {
			spec.Inches = &inches
		}
	}
	if raw := cell(colWeight); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			problems = append(problems, fmt.Errorf("weight %q is not a number", raw))
		} else {
			spec.Weight = weight
		}
	}

	if len(problems) > 0 {
		return spec, domain.WrapError(domain.ErrInvalidInput, "read spreadsheet row", errors.Join(problems...))
	}
	return spec, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
