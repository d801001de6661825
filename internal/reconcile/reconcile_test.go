package reconcile

import (
	"bytes"
	"context"
	"testing"
	"time"

	"LabStore/internal/model"
	"LabStore/internal/persist"
	"LabStore/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var base = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type memAdapter struct{ snap *model.Snapshot }

func (m *memAdapter) Load(ctx context.Context) (*model.Snapshot, error) {
	return &model.Snapshot{}, nil
}
func (m *memAdapter) Save(ctx context.Context, snap *model.Snapshot) error {
	cp := *snap
	m.snap = &cp
	return nil
}

var _ persist.Adapter = (*memAdapter)(nil)

func item(uniqueID string) model.Item {
	return model.Item{
		ID:           "id-" + uniqueID,
		OwnerName:    "Maria Orlova",
		EmailID:      "maria@example.com",
		SSOID:        "sso-17",
		ObjectStored: "Oscilloscope",
		UniqueID:     uniqueID,
		Location:     "Rack 4",
		TimePeriod:   7,
		DateAdded:    base,
		ExpiryDate:   base.Add(7 * 24 * time.Hour),
	}
}

// buildImportFile собирает книгу с заданными строками под заголовком импорта.
func buildImportFile(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	header := []any{
		"Owner Name", "Email ID", "SSO ID", "Object Stored",
		"Unique ID", "Location", "Time Period (Days)",
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseFile_RejectsBadExtension(t *testing.T) {
	_, err := ParseFile("items.csv", bytes.NewReader(nil))
	var fe *store.ImportFormatError
	require.ErrorAs(t, err, &fe)
}

func TestParseFile_RejectsCorruptFile(t *testing.T) {
	_, err := ParseFile("items.xlsx", bytes.NewReader([]byte("not a zip archive")))
	var fe *store.ImportFormatError
	require.ErrorAs(t, err, &fe)
}

func TestParseFile_RejectsEmptyFile(t *testing.T) {
	buf := buildImportFile(t, nil)
	_, err := ParseFile("items.xlsx", buf)
	var fe *store.ImportFormatError
	require.ErrorAs(t, err, &fe)
}

func TestParseFile_DefaultsPeriod(t *testing.T) {
	buf := buildImportFile(t, [][]any{
		{"Ivan", "i@x.com", "sso", "box", "TAG-1", "A1", ""},
		{"Ivan", "i@x.com", "sso", "box", "TAG-2", "A1", "junk"},
		{"Ivan", "i@x.com", "sso", "box", "TAG-3", "A1", 14},
	})
	drafts, err := ParseFile("items.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, drafts, 3)
	assert.Equal(t, 1, drafts[0].TimePeriod)
	assert.Equal(t, 1, drafts[1].TimePeriod)
	assert.Equal(t, 14, drafts[2].TimePeriod)
}

// Из трёх строк: одна без ownerName, одна с занятым uniqueId —
// импортируется ровно одна.
func TestImport_SkipCounts(t *testing.T) {
	st := store.New(&memAdapter{}, nil, store.Options{Now: func() time.Time { return base }})
	_, err := st.Create(context.Background(), store.Draft{
		OwnerName: "X", EmailID: "x@x", SSOID: "s", ObjectStored: "o",
		UniqueID: "TAG-DUP", Location: "L", TimePeriod: 3,
	})
	require.NoError(t, err)

	buf := buildImportFile(t, [][]any{
		{"Ivan", "i@x.com", "sso", "box", "TAG-OK", "A1", 5},
		{"", "i@x.com", "sso", "box", "TAG-NEW", "A1", 5},
		{"Ivan", "i@x.com", "sso", "box", "TAG-DUP", "A1", 5},
	})
	drafts, err := ParseFile("items.xlsx", buf)
	require.NoError(t, err)

	sum, err := st.ImportBatch(context.Background(), drafts)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Imported)
	assert.Equal(t, 2, sum.Skipped)
}

func TestExportActive_HeaderAndComputedColumn(t *testing.T) {
	it := item("TAG-9")
	f, err := ExportActive([]model.Item{it}, base.Add(7*24*time.Hour-30*time.Hour))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetCurrent)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Owner Name", "Email ID", "SSO ID", "Object Stored", "Unique ID",
		"Location", "Time Period (Days)", "Date Added", "Expiry Date", "Time Remaining",
	}, rows[0])
	assert.Equal(t, "TAG-9", rows[1][4])
	assert.Equal(t, "1d 6h", rows[1][9])
}

func TestExportArchived_StorageDuration(t *testing.T) {
	it := item("TAG-9")
	picked := base.Add(3*24*time.Hour + 4*time.Hour)
	it.PickupDate = &picked

	f, err := ExportArchived([]model.Item{it})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetArchived)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Original Time Period (Days)", rows[0][6])
	assert.Equal(t, "Picked Up Date", rows[0][8])
	assert.Equal(t, "3 days 4h", rows[1][9])
}

// Экспорт → импорт: все текстовые поля и срок возвращаются без потерь,
// даты намеренно генерируются заново.
func TestRoundTrip(t *testing.T) {
	st := store.New(&memAdapter{}, nil, store.Options{Now: func() time.Time { return base }})
	src := store.Draft{
		OwnerName: "Maria Orlova", EmailID: "maria@example.com", SSOID: "sso-17",
		ObjectStored: "Oscilloscope", UniqueID: "TAG-RT", Location: "Rack 4", TimePeriod: 7,
	}
	created, err := st.Create(context.Background(), src)
	require.NoError(t, err)

	f, err := ExportActive(st.ListActive(), base)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	drafts, err := ParseFile("export.xlsx", &buf)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	got := drafts[0]
	assert.Equal(t, src.OwnerName, got.OwnerName)
	assert.Equal(t, src.EmailID, got.EmailID)
	assert.Equal(t, src.SSOID, got.SSOID)
	assert.Equal(t, src.ObjectStored, got.ObjectStored)
	assert.Equal(t, src.UniqueID, got.UniqueID)
	assert.Equal(t, src.Location, got.Location)
	assert.Equal(t, created.TimePeriod, got.TimePeriod)

	// импорт в пустое хранилище проставляет свежие даты
	fresh := store.New(&memAdapter{}, nil, store.Options{Now: func() time.Time { return base.Add(time.Hour) }})
	sum, err := fresh.ImportBatch(context.Background(), drafts)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Imported)
	reimported := fresh.ListActive()[0]
	assert.Equal(t, base.Add(time.Hour), reimported.DateAdded)
	assert.NotEqual(t, created.ID, reimported.ID)
}
