// Package reconcile переводит записи хранилища в табличное (xlsx)
// представление и обратно. Имена колонок и листов — внешний контракт,
// менять их нельзя.
package reconcile

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"LabStore/internal/duration"
	"LabStore/internal/model"
	"LabStore/internal/store"

	"github.com/xuri/excelize/v2"
)

const (
	SheetCurrent  = "Current Inventory"
	SheetArchived = "Archived Items"
)

// Колонки экспорта. Импорт сопоставляет колонки по этим же заголовкам.
const (
	colOwner          = "Owner Name"
	colEmail          = "Email ID"
	colSSO            = "SSO ID"
	colObject         = "Object Stored"
	colUniqueID       = "Unique ID"
	colLocation       = "Location"
	colPeriod         = "Time Period (Days)"
	colOriginalPeriod = "Original Time Period (Days)"
	colDateAdded      = "Date Added"
	colExpiry         = "Expiry Date"
	colRemaining      = "Time Remaining"
	colPickedUp       = "Picked Up Date"
	colStorageTime    = "Storage Duration"
)

var activeHeader = []any{
	colOwner, colEmail, colSSO, colObject, colUniqueID, colLocation,
	colPeriod, colDateAdded, colExpiry, colRemaining,
}

var archivedHeader = []any{
	colOwner, colEmail, colSSO, colObject, colUniqueID, colLocation,
	colOriginalPeriod, colDateAdded, colPickedUp, colStorageTime,
}

const dateLayout = "2006-01-02"

// ExportActive строит книгу с активными записями; последняя колонка —
// вычисленное оставшееся время на момент now.
func ExportActive(items []model.Item, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeSheet(f, SheetCurrent, activeHeader, len(items), func(i int) []any {
		it := items[i]
		r := duration.TimeRemaining(it.ExpiryDate, now)
		return []any{
			it.OwnerName, it.EmailID, it.SSOID, it.ObjectStored, it.UniqueID, it.Location,
			it.TimePeriod, it.DateAdded.Format(dateLayout), it.ExpiryDate.Format(dateLayout), r.Display,
		}
	}); err != nil {
		return nil, err
	}
	return f, nil
}

// ExportArchived строит книгу с архивом; последняя колонка — сколько
// предмет пролежал на хранении.
func ExportArchived(items []model.Item) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := writeSheet(f, SheetArchived, archivedHeader, len(items), func(i int) []any {
		it := items[i]
		picked := it.DateAdded
		pickedStr := ""
		if it.PickupDate != nil {
			picked = *it.PickupDate
			pickedStr = picked.Format(dateLayout)
		}
		e := duration.StorageDuration(it.DateAdded, picked)
		return []any{
			it.OwnerName, it.EmailID, it.SSOID, it.ObjectStored, it.UniqueID, it.Location,
			it.TimePeriod, it.DateAdded.Format(dateLayout), pickedStr, e.Display,
		}
	}); err != nil {
		return nil, err
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, n int, row func(i int) []any) error {
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// ParseFile читает книгу импорта и возвращает черновики записей.
// Принимаются только файлы .xlsx/.xls; срок хранения по умолчанию 1 день;
// dateAdded/expiryDate намеренно не читаются — их проставит хранилище.
// Невалидные строки не отбрасываются здесь: решение принять/пропустить —
// за хранилищем, у которого есть текущие активные записи.
func ParseFile(filename string, r io.Reader) ([]store.Draft, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, &store.ImportFormatError{Reason: fmt.Sprintf("unsupported file extension %q, expected .xlsx or .xls", ext)}
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &store.ImportFormatError{Reason: "file is not a readable spreadsheet", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &store.ImportFormatError{Reason: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &store.ImportFormatError{Reason: "cannot read first sheet", Err: err}
	}
	if len(rows) < 2 {
		return nil, &store.ImportFormatError{Reason: "file contains no data rows"}
	}

	// сопоставляем колонки по заголовкам первой строки
	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	drafts := make([]store.Draft, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d := store.Draft{
			OwnerName:    cell(row, colOwner),
			EmailID:      cell(row, colEmail),
			SSOID:        cell(row, colSSO),
			ObjectStored: cell(row, colObject),
			UniqueID:     cell(row, colUniqueID),
			Location:     cell(row, colLocation),
			TimePeriod:   parsePeriod(cell(row, colPeriod)),
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// parsePeriod: отсутствующий или невалидный срок → 1 день.
func parsePeriod(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
