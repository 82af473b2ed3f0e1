package parser

import "strings"

// LocateHeaderRow 在网格中定位表头行。
// 与类型识别的口径不同：类型已知后，任意一个单元格包含任意一个
// 关键词就足以确认表头，找不到返回 -1（该文件致命）。
func LocateHeaderRow(rows [][]Cell, keywords []string) int {
	for i, row := range rows {
		for _, c := range row {
			text := c.String()
			if text == "" {
				continue
			}
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					return i
				}
			}
		}
	}
	return -1
}

// Row 规范化后的行对象：以去空格后的表头标签为键。
// 表头之后的所有行都转成这种形式，后续抽取器只消费它。
type Row map[string]Cell

// BuildRows 根据表头行构建规范化行对象序列。
// 空白标签的列被丢弃；同名标签后者覆盖前者。
func BuildRows(rows [][]Cell, headerIdx int) []Row {
	if headerIdx < 0 || headerIdx >= len(rows) {
		return nil
	}

	header := rows[headerIdx]
	labels := make([]string, len(header))
	for i, c := range header {
		labels[i] = strings.TrimSpace(c.String())
	}

	out := make([]Row, 0, len(rows)-headerIdx-1)
	for _, raw := range rows[headerIdx+1:] {
		row := make(Row, len(labels))
		for i, label := range labels {
			if label == "" {
				continue
			}
			if i < len(raw) {
				row[label] = raw[i]
			} else {
				row[label] = Cell{Kind: CellEmpty}
			}
		}
		out = append(out, row)
	}
	return out
}

// Get 取指定标签的单元格，缺失视为空
func (r Row) Get(label string) Cell {
	return r[label]
}

// Str 取指定标签的字符串值
func (r Row) Str(label string) string {
	return r[label].String()
}

// Pick 按候选标签顺序取第一个有值的单元格。
// 上游导出对必填列习惯加 * 后缀，抽取器用它做无星号兜底。
func (r Row) Pick(labels ...string) Cell {
	for _, label := range labels {
		if c, ok := r[label]; ok && !c.IsEmpty() {
			return c
		}
	}
	return Cell{Kind: CellEmpty}
}
