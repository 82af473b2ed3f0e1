package parser

import "github.com/feanorMV/Excel-Data-Converter/internal/model"

// 门店商品表列标签
const (
	colSIStoreUID      = "Store UID*"
	colSIItemUID       = "Item UID*"
	colSIActivePlano   = "Active in planogram"
	colSIPurchasePrice = "Purchase price"
	colSIRetailPrice   = "Retail price"
	colSISupplierUID   = "Supplier UID"
	colSISupplierName  = "Supplier name"
)

// StoreItemsResult 门店商品抽取结果
type StoreItemsResult struct {
	Items     []*model.ItemRecord
	Suppliers []*model.SupplierRecord
}

// ExtractStoreItems 抽取门店商品及供应商副表。
// 门店 UID 与商品 UID 同时存在才算有效行。
// 价格列走 parsePricePtr 口径（失败或 0 都是 null），
// 数量/标记列走 0 兜底，两种缺省不能混用。
// 供应商按 UID 去重，首次出现为准，后续重复即使名称不同也忽略。
func ExtractStoreItems(rows []Row, opts model.ConvertOptions) StoreItemsResult {
	result := StoreItemsResult{
		Items: make([]*model.ItemRecord, 0, len(rows)),
	}

	wantSuppliers := opts.TableEnabled(model.TableSuppliers)
	seenSuppliers := make(map[string]struct{})

	for _, row := range rows {
		storeUID := row.Pick(colSIStoreUID, "Store UID").String()
		itemUID := row.Pick(colSIItemUID, "Item UID").String()
		if storeUID == "" || itemUID == "" {
			continue
		}

		supplierUID := row.Str(colSISupplierUID)

		result.Items = append(result.Items, &model.ItemRecord{
			ItemUID:             itemUID,
			StoreUID:            storeUID,
			IsActivePlanogram:   parseFlag(row.Get(colSIActivePlano)),
			PurchasePrice:       parsePricePtr(row.Get(colSIPurchasePrice)),
			RetailPrice:         parsePricePtr(row.Get(colSIRetailPrice)),
			ExternalSupplierUID: supplierUID,
		})

		if !wantSuppliers || supplierUID == "" {
			continue
		}
		if _, ok := seenSuppliers[supplierUID]; ok {
			continue
		}
		seenSuppliers[supplierUID] = struct{}{}
		result.Suppliers = append(result.Suppliers, &model.SupplierRecord{
			SupplierUID: supplierUID,
			Name:        row.Str(colSISupplierName),
			IsDeleted:   0,
		})
	}

	return result
}
