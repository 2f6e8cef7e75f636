package store

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Data"

// ExcelStore persists records to a single xlsx workbook, one row per
// processed upload, header first. Appends load the workbook, write one row
// at the end and save immediately; the mutex serializes that
// read-modify-write so concurrent requests cannot interleave it.
type ExcelStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewExcelStore returns a store backed by the workbook at path.
func NewExcelStore(path string, logger zerolog.Logger) (*ExcelStore, error) {
	if path == "" {
		return nil, fmt.Errorf("workbook path is required")
	}
	return &ExcelStore{path: path, log: logger}, nil
}

// Init creates the workbook with the fixed header row if it does not exist
// yet. Safe to call on every startup.
func (s *ExcelStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat workbook: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{
		Header[0], Header[1], Header[2], Header[3], Header[4], Header[5],
	}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	s.log.Info().Str("path", s.path).Msg("created workbook")
	return nil
}

// Append adds one record as the last row and saves the workbook.
func (s *ExcelStore) Append(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("next row cell: %w", err)
	}
	if err := f.SetSheetRow(sheetName, cell, &[]interface{}{
		rec.ID, rec.Name, rec.Quantity, rec.Transcript, rec.Summary, rec.Status,
	}); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ReadAll loads every data row, in stored order. A header-only workbook
// yields an empty slice.
func (s *ExcelStore) ReadAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return []Record{}, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

// recordFromRow maps a raw sheet row onto a Record by the header's column
// positions. GetRows trims trailing empty cells, so short rows are padded.
func recordFromRow(row []string) Record {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	qty, err := strconv.Atoi(cell(2))
	if err != nil {
		qty = 0
	}
	return Record{
		ID:         cell(0),
		Name:       cell(1),
		Quantity:   qty,
		Transcript: cell(3),
		Summary:    cell(4),
		Status:     cell(5),
	}
}
