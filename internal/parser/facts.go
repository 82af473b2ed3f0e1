package parser

import "github.com/feanorMV/Excel-Data-Converter/internal/model"

// 事实表列标签
const (
	colFactItemUID  = "Item UID*"
	colFactStoreUID = "Store UID*"
	colFactDate     = "Date"
	colFactStock    = "Stock"
	colFactSoldQty  = "Sold Qty"
	colFactRevenue  = "Revenue"
	colFactCogs     = "Cost of goods sold"
)

// ExtractFacts 抽取销售事实记录。
// 商品 UID、门店 UID、可解析的日期三者缺一即丢弃整行；
// 度量列解析失败为 null，不报错。
func ExtractFacts(rows []Row) []*model.FactRecord {
	out := make([]*model.FactRecord, 0, len(rows))

	for _, row := range rows {
		itemUID := row.Pick(colFactItemUID, "Item UID").String()
		storeUID := row.Pick(colFactStoreUID, "Store UID").String()
		if itemUID == "" || storeUID == "" {
			continue
		}

		date, ok := resolveDate(row.Get(colFactDate))
		if !ok {
			continue
		}

		out = append(out, &model.FactRecord{
			ItemUID:  itemUID,
			StoreUID: storeUID,
			Date:     FormatDate(date),
			Stock:    parseDecimalPtr(row.Get(colFactStock)),
			SoldQty:  parseDecimalPtr(row.Get(colFactSoldQty)),
			Revenue:  parseDecimalPtr(row.Get(colFactRevenue)),
			Cogs:     parseDecimalPtr(row.Get(colFactCogs)),
		})
	}

	return out
}
