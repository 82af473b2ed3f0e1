package parser

import "testing"

func rowOf(values map[string]string) Row {
	row := make(Row, len(values))
	for label, v := range values {
		row[label] = classifyCell(v)
	}
	return row
}

func TestExtractStores_Basic(t *testing.T) {
	t.Parallel()

	rows := []Row{
		rowOf(map[string]string{
			"Store UID*": "S1", "Store name*": "Shop A", "Region": "North",
			"Square": "120", "In Shelf?": "1",
		}),
		rowOf(map[string]string{"Store name*": "孤儿行"}), // UID 缺失，丢弃
	}

	stores := ExtractStores(rows)
	if len(stores) != 1 {
		t.Fatalf("stores want=1 got=%d", len(stores))
	}

	s := stores[0]
	if s.StoreUID != "S1" || s.Name != "Shop A" || s.Region != "North" {
		t.Fatalf("unexpected store: %+v", s)
	}
	if s.GroupName != "" {
		t.Fatalf("missing group want empty got=%s", s.GroupName)
	}
	if s.FloorSpace != 120 || s.InShelf != 1 {
		t.Fatalf("numeric columns: %+v", s)
	}
	if s.LicenceStartDate != "2023-01-01" {
		t.Fatalf("licence date want=2023-01-01 got=%s", s.LicenceStartDate)
	}
	if s.IsDeleted != 0 {
		t.Fatalf("is_deleted want=0 got=%d", s.IsDeleted)
	}
}

func TestExtractStores_NumericDefaults(t *testing.T) {
	t.Parallel()

	rows := []Row{rowOf(map[string]string{
		"Store UID*": "S2", "Store name*": "Shop B",
		"Square": "n/a", "In Shelf?": "", "To delete": "1",
	})}

	stores := ExtractStores(rows)
	if len(stores) != 1 {
		t.Fatalf("stores want=1 got=%d", len(stores))
	}
	s := stores[0]
	if s.FloorSpace != 0 || s.InShelf != 0 {
		t.Fatalf("unparsable numeric columns want 0: %+v", s)
	}
	if s.IsDeleted != 1 {
		t.Fatalf("to delete want=1 got=%d", s.IsDeleted)
	}
}

func TestExtractStores_UnstarredHeaders(t *testing.T) {
	t.Parallel()

	rows := []Row{rowOf(map[string]string{"Store UID": "S3", "Store name": "Shop C"})}

	stores := ExtractStores(rows)
	if len(stores) != 1 {
		t.Fatalf("stores want=1 got=%d", len(stores))
	}
	if stores[0].StoreUID != "S3" || stores[0].Name != "Shop C" {
		t.Fatalf("unstarred fallback: %+v", stores[0])
	}
}
