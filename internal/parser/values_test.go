package parser

import (
	"testing"
	"time"
)

func TestParseIntDefault_TextAndNumber(t *testing.T) {
	t.Parallel()

	if got := parseIntDefault(classifyCell("120"), 0); got != 120 {
		t.Fatalf("120 want=120 got=%d", got)
	}
	if got := parseIntDefault(classifyCell(" 42 "), 0); got != 42 {
		t.Fatalf("padded 42 want=42 got=%d", got)
	}
	if got := parseIntDefault(classifyCell("abc"), 7); got != 7 {
		t.Fatalf("unparsable want default 7 got=%d", got)
	}
	if got := parseIntDefault(classifyCell(""), 7); got != 7 {
		t.Fatalf("empty want default 7 got=%d", got)
	}
}

func TestParseDecimalPtr_CommaSeparator(t *testing.T) {
	t.Parallel()

	v := parseDecimalPtr(classifyCell("12,50"))
	if v == nil || *v != 12.5 {
		t.Fatalf("12,50 want=12.5 got=%v", v)
	}
}

func TestParseDecimalPtr_EmptyTextIsZero(t *testing.T) {
	t.Parallel()

	// 映射到文本但去空格后为空的情况按 0 处理，真正的空单元格是 nil
	if v := parseDecimalPtr(Cell{Kind: CellText, Text: "  "}); v == nil || *v != 0 {
		t.Fatalf("blank text want=0 got=%v", v)
	}
	if v := parseDecimalPtr(Cell{Kind: CellEmpty}); v != nil {
		t.Fatalf("empty cell want=nil got=%v", *v)
	}
	if v := parseDecimalPtr(classifyCell("n/a")); v != nil {
		t.Fatalf("unparsable want=nil got=%v", *v)
	}
}

func TestParsePricePtr_ZeroBecomesNil(t *testing.T) {
	t.Parallel()

	if v := parsePricePtr(classifyCell("0")); v != nil {
		t.Fatalf("zero price want=nil got=%v", *v)
	}
	if v := parsePricePtr(classifyCell("0,00")); v != nil {
		t.Fatalf("zero price with comma want=nil got=%v", *v)
	}
	v := parsePricePtr(classifyCell("99.90"))
	if v == nil || *v != 99.9 {
		t.Fatalf("99.90 want=99.9 got=%v", v)
	}
}

func TestResolveDate_TypedDate(t *testing.T) {
	t.Parallel()

	c := Cell{Kind: CellDate, Date: time.Date(2023, 3, 15, 8, 30, 0, 0, time.UTC)}
	d, ok := resolveDate(c)
	if !ok {
		t.Fatalf("expected resolved")
	}
	// 时刻部分被截掉，只留日历日
	if FormatDate(d) != "2023-03-15" {
		t.Fatalf("want=2023-03-15 got=%s", FormatDate(d))
	}
}

func TestResolveDate_ExcelSerial(t *testing.T) {
	t.Parallel()

	// 45000 是 2023-03-15 的序列号
	d, ok := resolveDate(classifyCell("45000"))
	if !ok {
		t.Fatalf("expected resolved")
	}
	if FormatDate(d) != "2023-03-15" {
		t.Fatalf("serial 45000 want=2023-03-15 got=%s", FormatDate(d))
	}

	// 小数部分是时刻，换算只保留日历日
	d, ok = resolveDate(classifyCell("45000.75"))
	if !ok || FormatDate(d) != "2023-03-15" {
		t.Fatalf("serial 45000.75 want=2023-03-15 got=%s", FormatDate(d))
	}
}

func TestResolveDate_StringLayouts(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"2023/03/15", "15.03.2023", "2023-03-15 08:30:00"} {
		d, ok := resolveDate(classifyCell(raw))
		if !ok {
			t.Fatalf("%s: expected resolved", raw)
		}
		if FormatDate(d) != "2023-03-15" {
			t.Fatalf("%s want=2023-03-15 got=%s", raw, FormatDate(d))
		}
	}
}

func TestResolveDate_Unresolvable(t *testing.T) {
	t.Parallel()

	if _, ok := resolveDate(classifyCell("next tuesday")); ok {
		t.Fatalf("garbage date should not resolve")
	}
	if _, ok := resolveDate(Cell{Kind: CellEmpty}); ok {
		t.Fatalf("empty cell should not resolve")
	}
}
