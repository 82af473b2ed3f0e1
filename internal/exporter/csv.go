package exporter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
	"github.com/feanorMV/Excel-Data-Converter/internal/parser"
)

// RowProvider 可按固定列序取值的记录
type RowProvider interface {
	Fields() []any
}

// RenderCSV 按给定列序渲染记录集合。
// 仅按列序取值，不反射记录的其他字段；字段只有在包含逗号或引号时
// 才加引号（内部引号成对转义），null 渲染为空串，数字取默认十进制
// 形态，日期此前已格式化为 YYYY-MM-DD 字符串。
func RenderCSV[T RowProvider](columns []string, records []T) string {
	var b strings.Builder

	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(col))
	}
	b.WriteByte('\n')

	for _, rec := range records {
		fields := rec.Fields()
		for i := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			if i < len(fields) {
				b.WriteString(escapeField(stringifyField(fields[i])))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// MakeTable 渲染并命名单个输出表，空集合返回 false
func MakeTable[T RowProvider](table string, columns []string, records []T, runDate time.Time) (model.CsvFile, bool) {
	if len(records) == 0 {
		return model.CsvFile{}, false
	}
	return model.CsvFile{
		Name:    FileName(table, runDate),
		Content: RenderCSV(columns, records),
		Rows:    len(records),
	}, true
}

// FileName 输出表文件名：{表名}_{运行日期}.csv
func FileName(table string, runDate time.Time) string {
	return fmt.Sprintf("%s_%s.csv", table, parser.FormatFileDate(runDate))
}

// stringifyField 把记录字段转成 CSV 字段文本
func stringifyField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case *float64:
		if val == nil {
			return ""
		}
		return strconv.FormatFloat(*val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// escapeField 逗号或引号出现时才加引号
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
