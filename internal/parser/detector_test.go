package parser

import (
	"testing"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
)

func cellsOf(values ...string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		out[i] = classifyCell(v)
	}
	return out
}

func sheetOf(name string, rows ...[]Cell) Sheet {
	return Sheet{Name: name, Rows: rows}
}

func TestDetectFileType_Store(t *testing.T) {
	t.Parallel()

	wb := &Workbook{Sheets: []Sheet{sheetOf("Sheet1",
		cellsOf("Stores export"),
		cellsOf("Store UID*", "Store name*", "Region"),
	)}}

	d := DetectFileType(wb)
	if d.Type != model.FileTypeStore {
		t.Fatalf("want=%s got=%s", model.FileTypeStore, d.Type)
	}
	if d.SheetName != "Sheet1" {
		t.Fatalf("sheet want=Sheet1 got=%s", d.SheetName)
	}
}

func TestDetectFileType_MasterV2BeatsV1(t *testing.T) {
	t.Parallel()

	// v2 表头同时满足 v1 与 v2 的关键词集合，优先级必须让 v2 胜出
	wb := &Workbook{Sheets: []Sheet{sheetOf("Sheet1",
		cellsOf("Item UID*", "Item name", "Segment Code", "Category level 1 UID"),
	)}}

	if d := DetectFileType(wb); d.Type != model.FileTypeItemMasterV2 {
		t.Fatalf("want=%s got=%s", model.FileTypeItemMasterV2, d.Type)
	}
}

func TestDetectFileType_StoreItemsBeatsFactsAndStore(t *testing.T) {
	t.Parallel()

	// 门店商品表头包含 Facts 与 Store 的全部关键词
	wb := &Workbook{Sheets: []Sheet{sheetOf("Sheet1",
		cellsOf("Store UID*", "Store name", "Item UID*", "Date", "Purchase price"),
	)}}

	if d := DetectFileType(wb); d.Type != model.FileTypeStoreItems {
		t.Fatalf("want=%s got=%s", model.FileTypeStoreItems, d.Type)
	}
}

func TestDetectFileType_KeywordsMustShareOneRow(t *testing.T) {
	t.Parallel()

	// 关键词分散在两行不算命中
	wb := &Workbook{Sheets: []Sheet{sheetOf("Sheet1",
		cellsOf("Store UID*"),
		cellsOf("Store name*"),
	)}}

	if d := DetectFileType(wb); d.Type != model.FileTypeUnknown {
		t.Fatalf("want=%s got=%s", model.FileTypeUnknown, d.Type)
	}
}

func TestDetectFileType_ScanLimit(t *testing.T) {
	t.Parallel()

	rows := make([][]Cell, 0, 25)
	for i := 0; i < 24; i++ {
		rows = append(rows, cellsOf("filler"))
	}
	rows = append(rows, cellsOf("Store UID*", "Store name*"))

	wb := &Workbook{Sheets: []Sheet{{Name: "Sheet1", Rows: rows}}}
	if d := DetectFileType(wb); d.Type != model.FileTypeUnknown {
		t.Fatalf("header beyond scan window should stay unknown, got=%s", d.Type)
	}
}

func TestDetectFileType_SecondSheet(t *testing.T) {
	t.Parallel()

	wb := &Workbook{Sheets: []Sheet{
		sheetOf("说明", cellsOf("这是导出说明页")),
		sheetOf("数据", cellsOf("Item UID*", "Store UID*", "Date", "Stock")),
	}}

	d := DetectFileType(wb)
	if d.Type != model.FileTypeFacts {
		t.Fatalf("want=%s got=%s", model.FileTypeFacts, d.Type)
	}
	if d.SheetName != "数据" {
		t.Fatalf("sheet want=数据 got=%s", d.SheetName)
	}
}

func TestDetectFileType_EmptyWorkbook(t *testing.T) {
	t.Parallel()

	if d := DetectFileType(&Workbook{}); d.Type != model.FileTypeUnknown {
		t.Fatalf("want=%s got=%s", model.FileTypeUnknown, d.Type)
	}
	if d := DetectFileType(nil); d.Type != model.FileTypeUnknown {
		t.Fatalf("nil workbook want=%s got=%s", model.FileTypeUnknown, d.Type)
	}
}
