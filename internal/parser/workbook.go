package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind 单元格值类型
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell 单元格。加载后不可变。
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// Sheet 工作表：按行序保存的二维网格
type Sheet struct {
	Name string
	Rows [][]Cell
}

// Workbook 工作簿：按原始顺序保存的工作表集合
type Workbook struct {
	Sheets []Sheet
}

// SheetByName 按名称查找工作表
func (wb *Workbook) SheetByName(name string) *Sheet {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i]
		}
	}
	return nil
}

// cellDateLayouts 事实表日期解析接受的字符串格式
var cellDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02.01.2006",
}

// LoadWorkbook 从 xlsx 字节流加载工作簿。
// 读取原始值而非格式化值：数字列保持序列号形态，由事实表解析阶段换算日期。
// 字符串类型的单元格原样保留为文本，即使内容恰好能按数字解析，
// 否则条码、UID 这类标识符会丢失前导零等字面形态。
func LoadWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			continue
		}
		sheet := Sheet{Name: name, Rows: make([][]Cell, 0, len(rows))}
		for ri, raw := range rows {
			cells := make([]Cell, len(raw))
			for ci, v := range raw {
				if isTextCell(f, name, ci+1, ri+1) {
					cells[ci] = textCell(v)
				} else {
					cells[ci] = classifyCell(v)
				}
			}
			sheet.Rows = append(sheet.Rows, cells)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// isTextCell 判断单元格在文件里是否以字符串形态存储
func isTextCell(f *excelize.File, sheet string, col, row int) bool {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}
	ct, err := f.GetCellType(sheet, axis)
	if err != nil {
		return false
	}
	return ct == excelize.CellTypeSharedString || ct == excelize.CellTypeInlineString
}

// textCell 字符串单元格：只做去空格，不做任何类型推断
func textCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

// classifyCell 把非字符串单元格的原始值归入 数值/文本/空 三类。
// 不在这里猜日期：事实表的日期解析链自己会重试各字符串格式，
// 其他列的文本（如附加列里的 15.03.2023）必须原样透传。
func classifyCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Cell{Kind: CellNumber, Number: f, Text: trimmed}
	}
	return Cell{Kind: CellText, Text: trimmed}
}

// IsEmpty 判断单元格是否无值
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String 以标识符口径取字符串值：
// 数值形态的 UID 也按不透明字符串处理，日期按 YYYY-MM-DD 输出。
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.Format("2006-01-02")
	default:
		return ""
	}
}
