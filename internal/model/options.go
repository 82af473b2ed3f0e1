package model

import "time"

// 可选副表名称
const (
	TableBarcodes      = "barcodes"
	TableBrands        = "brands"
	TableDimensions    = "dimensions"
	TableErpCategories = "erpcategories"
	TableManufacturers = "manufacturers"
	TableSuppliers     = "suppliers"
)

// 主表名称
const (
	TableStores      = "stores"
	TableItems       = "items"
	TableFacts       = "facts"
	TableMasterItems = "masteritems"
)

// ConvertOptions 单文件转换选项。
// Tables 控制副表是否生成，缺省视为 true；RunDate 由调用方显式注入，
// 供文件命名与默认日期使用，深层解析逻辑不读进程时钟。
type ConvertOptions struct {
	Tables  map[string]bool
	RunDate time.Time
}

// TableEnabled 判断副表是否启用（缺省启用）
func (o ConvertOptions) TableEnabled(name string) bool {
	if o.Tables == nil {
		return true
	}
	enabled, ok := o.Tables[name]
	if !ok {
		return true
	}
	return enabled
}
