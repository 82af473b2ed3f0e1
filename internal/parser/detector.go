package parser

import (
	"strings"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
)

// detectScanRows 每个工作表最多扫描的行数
const detectScanRows = 20

// Detection 类型识别结果
type Detection struct {
	Type      model.FileType `json:"type"`
	SheetName string         `json:"sheetName"`
}

// DetectFileType 按指纹识别文件类型并选中对应工作表。
// 按固定优先级遍历类型定义，对每个类型依次扫描各工作表的前 20 行；
// 一行所有单元格拼接后包含该类型的全部关键词即命中，立即停止。
// 任何情况下都不报错，识别失败返回 Unknown。
func DetectFileType(wb *Workbook) Detection {
	if wb == nil {
		return Detection{Type: model.FileTypeUnknown}
	}

	for _, def := range model.DetectionOrder {
		for _, sheet := range wb.Sheets {
			limit := len(sheet.Rows)
			if limit > detectScanRows {
				limit = detectScanRows
			}
			for i := 0; i < limit; i++ {
				if rowMatchesAll(sheet.Rows[i], def.Keywords) {
					return Detection{Type: def.Type, SheetName: sheet.Name}
				}
			}
		}
	}

	return Detection{Type: model.FileTypeUnknown}
}

// rowMatchesAll 整行拼接后是否包含全部关键词
func rowMatchesAll(row []Cell, keywords []string) bool {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		parts = append(parts, c.String())
	}
	joined := strings.Join(parts, "|")

	for _, kw := range keywords {
		if !strings.Contains(joined, kw) {
			return false
		}
	}
	return true
}
