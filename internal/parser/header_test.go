package parser

import "testing"

func TestLocateHeaderRow_AnyKeywordMatches(t *testing.T) {
	t.Parallel()

	rows := [][]Cell{
		cellsOf("门店导出", "2023-06-01"),
		cellsOf(""),
		cellsOf("Store UID*", "Store name*", "Region"),
		cellsOf("S1", "Shop A", "North"),
	}

	// 定位口径比类型识别宽松：单个关键词命中即可
	if got := LocateHeaderRow(rows, []string{"Store UID", "Store name"}); got != 2 {
		t.Fatalf("want=2 got=%d", got)
	}
}

func TestLocateHeaderRow_NotFound(t *testing.T) {
	t.Parallel()

	rows := [][]Cell{cellsOf("a", "b"), cellsOf("c")}
	if got := LocateHeaderRow(rows, []string{"Store UID"}); got != -1 {
		t.Fatalf("want=-1 got=%d", got)
	}
}

func TestBuildRows_LabelHandling(t *testing.T) {
	t.Parallel()

	rows := [][]Cell{
		cellsOf("UID*", "", "Price", "Price"),
		cellsOf("I1", "ignored", "10", "20"),
		cellsOf("I2"),
	}

	out := BuildRows(rows, 0)
	if len(out) != 2 {
		t.Fatalf("rows want=2 got=%d", len(out))
	}

	// 空白标签的列被丢弃
	if len(out[0]) != 2 {
		t.Fatalf("labels want=2 got=%d", len(out[0]))
	}
	// 同名标签后者覆盖前者
	if got := out[0].Str("Price"); got != "20" {
		t.Fatalf("duplicate label want=20 got=%s", got)
	}
	// 短行补空单元格
	if !out[1].Get("Price").IsEmpty() {
		t.Fatalf("short row should pad with empty cells")
	}
	if got := out[1].Str("UID*"); got != "I2" {
		t.Fatalf("want=I2 got=%s", got)
	}
}

func TestBuildRows_InvalidHeaderIndex(t *testing.T) {
	t.Parallel()

	rows := [][]Cell{cellsOf("UID*")}
	if out := BuildRows(rows, -1); out != nil {
		t.Fatalf("negative header index want=nil got=%v", out)
	}
	if out := BuildRows(rows, 5); out != nil {
		t.Fatalf("out of range header index want=nil got=%v", out)
	}
}

func TestRow_PickStarFallback(t *testing.T) {
	t.Parallel()

	row := Row{"Store UID": classifyCell("S9")}
	if got := row.Pick("Store UID*", "Store UID").String(); got != "S9" {
		t.Fatalf("want=S9 got=%s", got)
	}
	if c := row.Pick("Item UID*", "Item UID"); !c.IsEmpty() {
		t.Fatalf("missing labels should yield empty cell")
	}
}
