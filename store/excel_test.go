package store

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *ExcelStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.xlsx")
	s, err := NewExcelStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewExcelStore() error = %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return s
}

func TestNewExcelStoreRequiresPath(t *testing.T) {
	if _, err := NewExcelStore("", zerolog.Nop()); err == nil {
		t.Error("NewExcelStore(\"\") should return an error")
	}
}

func TestInitIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Append(Record{ID: "U1", Name: "佐藤", Quantity: 5, Status: StatusNotified}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	// A second Init must not recreate the workbook and lose the row.
	if err := s.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	records, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}

func TestReadAllEmpty(t *testing.T) {
	s := newTestStore(t)

	records, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestAppendReadAllRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []Record{
		{ID: "U123", Name: "佐藤", Quantity: 5, Transcript: "佐藤さん、5個お願いします", Summary: "佐藤さんへ5個の発注", Status: StatusNotified},
		{ID: Unknown, Name: Unknown, Quantity: 0, Transcript: "聞き取れない内容", Summary: "要約に失敗しました。", Status: StatusNotNotified},
	}
	for _, rec := range want {
		if err := s.Append(rec); err != nil {
			t.Fatalf("Append(%v) error = %v", rec, err)
		}
	}

	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len(records) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindRecipient(t *testing.T) {
	table := []Record{
		{ID: "U-first", Name: "佐藤", Quantity: 3},
		{ID: Unknown, Name: "鈴木", Quantity: 1},
		{ID: "U-second", Name: "佐藤", Quantity: 7},
		{ID: "U-suzuki", Name: "鈴木", Quantity: 2},
	}

	tests := []struct {
		name      string
		records   []Record
		lookup    string
		wantID    string
		wantFound bool
	}{
		{name: "empty table", records: nil, lookup: "佐藤", wantFound: false},
		{name: "first match wins", records: table, lookup: "佐藤", wantID: "U-first", wantFound: true},
		{name: "unknown sentinel rows skipped", records: table, lookup: "鈴木", wantID: "U-suzuki", wantFound: true},
		{name: "no matching row", records: table, lookup: "田中", wantFound: false},
		{name: "unknown name never resolves", records: table, lookup: Unknown, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, found := FindRecipient(tt.records, tt.lookup)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}
