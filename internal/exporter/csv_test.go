package exporter

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
)

var testRunDate = time.Date(2023, 6, 1, 10, 30, 0, 0, time.UTC)

func TestRenderCSV_StoreScenario(t *testing.T) {
	t.Parallel()

	records := []*model.StoreRecord{{
		StoreUID:         "S1",
		Name:             "Shop A",
		Region:           "North",
		FloorSpace:       120,
		InShelf:          1,
		LicenceStartDate: "2023-01-01",
	}}

	got := RenderCSV(model.StoreColumns, records)
	want := "store_uid,name,region,group_name,floor_space,in_shelf,licence_start_date,is_deleted\n" +
		"S1,Shop A,North,,120,1,2023-01-01,0\n"
	if got != want {
		t.Fatalf("csv mismatch:\nwant=%q\ngot=%q", want, got)
	}
}

func TestRenderCSV_QuotingRules(t *testing.T) {
	t.Parallel()

	records := []*model.SupplierRecord{
		{SupplierUID: "SUP1", Name: "Fruits, Ltd"},
		{SupplierUID: "SUP2", Name: `The "Best" One`},
		{SupplierUID: "SUP3", Name: "Plain name"},
	}

	got := RenderCSV(model.SupplierColumns, records)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[1] != `SUP1,"Fruits, Ltd",0` {
		t.Fatalf("comma quoting: %s", lines[1])
	}
	if lines[2] != `SUP2,"The ""Best"" One",0` {
		t.Fatalf("quote escaping: %s", lines[2])
	}
	// 普通字段不加引号
	if lines[3] != "SUP3,Plain name,0" {
		t.Fatalf("plain field: %s", lines[3])
	}

	// 标准读取器能按原值读回
	rows, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if rows[2][1] != `The "Best" One` {
		t.Fatalf("round trip: %s", rows[2][1])
	}
}

func TestRenderCSV_NullsAndNumbers(t *testing.T) {
	t.Parallel()

	price := 12.5
	records := []*model.ItemRecord{{
		ItemUID:       "I1",
		StoreUID:      "S1",
		PurchasePrice: &price,
		RetailPrice:   nil,
	}}

	got := RenderCSV(model.ItemColumns, records)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// null 渲染为空串，数字取默认十进制形态
	if lines[1] != "I1,S1,0,12.5,," {
		t.Fatalf("data line: %s", lines[1])
	}
}

func TestRenderCSV_NilStringPointer(t *testing.T) {
	t.Parallel()

	name := "Dairy"
	records := []*model.ErpCategoryRecord{
		{ErpCategoryUID: "C1", Name: &name},
		{ErpCategoryUID: "C2", ParentCategoryUID: "C1"},
	}

	got := RenderCSV(model.ErpCategoryColumns, records)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if lines[1] != "C1,Dairy," {
		t.Fatalf("named root: %s", lines[1])
	}
	if lines[2] != "C2,,C1" {
		t.Fatalf("unnamed child: %s", lines[2])
	}
}

func TestMakeTable_EmptySkipped(t *testing.T) {
	t.Parallel()

	if _, ok := MakeTable(model.TableStores, model.StoreColumns, []*model.StoreRecord{}, testRunDate); ok {
		t.Fatalf("empty record set must not produce a file")
	}

	f, ok := MakeTable(model.TableStores, model.StoreColumns, []*model.StoreRecord{{StoreUID: "S1"}}, testRunDate)
	if !ok {
		t.Fatalf("expected a file")
	}
	if f.Name != "stores_20230601.csv" {
		t.Fatalf("file name want=stores_20230601.csv got=%s", f.Name)
	}
	if f.Rows != 1 {
		t.Fatalf("rows want=1 got=%d", f.Rows)
	}
}
