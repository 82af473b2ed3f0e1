package parser

import (
	"strconv"
	"strings"
	"time"
)

// excelEpochOffset 1970-01-01 对应的 Excel 序列号
const excelEpochOffset = 25569

// parseIntDefault 十进制整数解析，失败返回缺省值
func parseIntDefault(c Cell, def int) int {
	switch c.Kind {
	case CellNumber:
		return int(c.Number)
	case CellText:
		i, err := strconv.Atoi(strings.TrimSpace(c.Text))
		if err != nil {
			return def
		}
		return i
	default:
		return def
	}
}

// parseFlag 数量/标记列解析，失败按 0 处理
func parseFlag(c Cell) int {
	return parseIntDefault(c, 0)
}

// parseDecimalPtr 区域容错的小数解析：逗号按小数点处理，失败返回 nil。
// 事实表度量列使用该口径，0 是合法值。
func parseDecimalPtr(c Cell) *float64 {
	switch c.Kind {
	case CellNumber:
		v := c.Number
		return &v
	case CellText:
		s := strings.TrimSpace(c.Text)
		s = strings.ReplaceAll(s, ",", ".")
		if s == "" {
			s = "0"
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// parsePricePtr 价格列解析：在 parseDecimalPtr 基础上，0 也归入 nil。
// 价格的 0 与缺失同义，数量列则不同，这个区分是口径的一部分。
func parsePricePtr(c Cell) *float64 {
	v := parseDecimalPtr(c)
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

// resolveDate 事实表日期解析链：
// 1) 单元格本身已是日期值；
// 2) 数值按 Excel 序列号换算，换算取 UTC 日历日、丢弃时间与时区；
// 3) 字符串按通用格式解析。
// 三条路径全部失败返回 false，调用方丢弃该行。
func resolveDate(c Cell) (time.Time, bool) {
	switch c.Kind {
	case CellDate:
		return truncateDate(c.Date), true
	case CellNumber:
		return excelSerialToDate(c.Number), true
	case CellText:
		for _, layout := range cellDateLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(c.Text)); err == nil {
				return truncateDate(t), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// excelSerialToDate 把 Excel 日期序列号换算为日历日。
// 结果只取 UTC 换算后的年月日，与运行环境时区无关。
func excelSerialToDate(serial float64) time.Time {
	days := int64(serial) - excelEpochOffset
	t := time.Unix(days*86400, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate 输出表统一的日期形态
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatFileDate 输出文件名里的运行日期形态
func FormatFileDate(t time.Time) string {
	return t.Format("20060102")
}
