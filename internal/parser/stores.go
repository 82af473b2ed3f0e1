package parser

import "github.com/feanorMV/Excel-Data-Converter/internal/model"

// 门店表列标签
const (
	colStoreUID  = "Store UID*"
	colStoreName = "Store name*"
	colRegion    = "Region"
	colGroup     = "Group"
	colSquare    = "Square"
	colInShelf   = "In Shelf?"
	colToDelete  = "To delete"
)

// storeDefaultLicenceDate 门店表没有来源列驱动的日期，固定盖这个值
const storeDefaultLicenceDate = "2023-01-01"

// ExtractStores 抽取门店记录。
// 只要求门店 UID 非空；数值列十进制解析，失败按 0。
func ExtractStores(rows []Row) []*model.StoreRecord {
	out := make([]*model.StoreRecord, 0, len(rows))

	for _, row := range rows {
		uid := row.Pick(colStoreUID, "Store UID").String()
		if uid == "" {
			continue
		}

		out = append(out, &model.StoreRecord{
			StoreUID:         uid,
			Name:             row.Pick(colStoreName, "Store name").String(),
			Region:           row.Str(colRegion),
			GroupName:        row.Str(colGroup),
			FloorSpace:       parseIntDefault(row.Get(colSquare), 0),
			InShelf:          parseIntDefault(row.Get(colInShelf), 0),
			LicenceStartDate: storeDefaultLicenceDate,
			IsDeleted:        parseIntDefault(row.Get(colToDelete), 0),
		})
	}

	return out
}
