package parser

import (
	"strconv"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
)

// 商品主档 v2 列标签
const (
	colV2UID         = "Item UID*"
	colV2Name        = "Item name"
	colV2ManufUID    = "Manufacturer UID"
	colV2ManufName   = "Manufacturer name"
	colV2BrandUID    = "Brand UID"
	colV2BrandName   = "Brand name"
	colV2IsWeight    = "Is weight product"
	colV2MainUnitUID = "Main unit UID"
	colV2UnitName    = "Unit name"
	colV2Width       = "Width"
	colV2Height      = "Height"
	colV2Depth       = "Depth"
	colV2UnitUID     = "Unit UID"
	colV2Coefficient = "Coefficient"
	colV2ToDelete    = "To delete"
	colV2Barcode     = "Barcode"
	colV2IsMainBC    = "Is main barcode"
)

// v2CategoryLevelCount 分类层级数
const v2CategoryLevelCount = 6

// v2AdditionalNumeric 附加列的固定类型表：列号在此集合内按
// 小数口径解析（失败为 null），其余列原样透传。类型由列号决定，
// 与单元格内容无关。
var v2AdditionalNumeric = map[int]bool{16: true, 17: true, 18: true, 19: true, 20: true}

// MasterV2Result 商品主档 v2 抽取结果
type MasterV2Result struct {
	Items         []*model.MasterItemV2Record
	Barcodes      []*model.BarcodeRecord
	Brands        []*model.BrandRecord
	Dimensions    []*model.DimensionV2Record
	Categories    []*model.ErpCategoryRecord
	Manufacturers []*model.ManufacturerRecord
}

// ExtractMasterV2 抽取商品主档（v2 格式）。
// 与 v1 不同，这里不按 UID 去重：每个主 UID 非空的行都产出一条
// 商品记录，重复 UID 产出重复行。品牌/生产商/分类的身份解析采用
// UID 优先、名称兜底：专用 UID 列非空用 UID，否则名称列的值直接
// 充当代理身份。
func ExtractMasterV2(rows []Row, opts model.ConvertOptions) MasterV2Result {
	result := MasterV2Result{}

	seenBarcodes := make(map[string]struct{})
	seenBrands := make(map[string]struct{})
	seenManufacturers := make(map[string]struct{})
	categories := make(map[string]*model.ErpCategoryRecord)

	wantBarcodes := opts.TableEnabled(model.TableBarcodes)
	wantBrands := opts.TableEnabled(model.TableBrands)
	wantDimensions := opts.TableEnabled(model.TableDimensions)
	wantCategories := opts.TableEnabled(model.TableErpCategories)
	wantManufacturers := opts.TableEnabled(model.TableManufacturers)

	for _, row := range rows {
		itemUID := row.Pick(colV2UID, "Item UID").String()
		if itemUID == "" {
			continue
		}

		brandUID, brandName := resolveRef(row, colV2BrandUID, colV2BrandName)
		if wantBrands && brandUID != "" {
			if _, ok := seenBrands[brandUID]; !ok {
				seenBrands[brandUID] = struct{}{}
				result.Brands = append(result.Brands, &model.BrandRecord{BrandUID: brandUID, Name: brandName})
			}
		}

		manufUID, manufName := resolveRef(row, colV2ManufUID, colV2ManufName)
		if wantManufacturers && manufUID != "" {
			if _, ok := seenManufacturers[manufUID]; !ok {
				seenManufacturers[manufUID] = struct{}{}
				result.Manufacturers = append(result.Manufacturers, &model.ManufacturerRecord{ManufacturerUID: manufUID, Name: manufName})
			}
		}

		categoryUID := v2ItemCategory(row)
		if wantCategories {
			v2RegisterCategories(row, categories, &result)
		}

		barcode := row.Str(colV2Barcode)
		if wantBarcodes && barcode != "" {
			key := itemUID + "|" + barcode
			if _, ok := seenBarcodes[key]; !ok {
				seenBarcodes[key] = struct{}{}
				result.Barcodes = append(result.Barcodes, &model.BarcodeRecord{
					ItemUID: itemUID,
					Barcode: barcode,
					IsMain:  parseFlag(row.Get(colV2IsMainBC)),
				})
			}
		}

		unitName := row.Str(colV2UnitName)
		if wantDimensions && unitName != "" {
			dimensionUID := row.Str(colV2UnitUID)
			if dimensionUID == "" {
				dimensionUID = row.Str(colV2MainUnitUID)
			}
			result.Dimensions = append(result.Dimensions, &model.DimensionV2Record{
				ItemUID:      itemUID,
				UnitName:     unitName,
				Width:        parseDecimalPtr(row.Get(colV2Width)),
				Height:       parseDecimalPtr(row.Get(colV2Height)),
				Depth:        parseDecimalPtr(row.Get(colV2Depth)),
				Coef:         parseDecimalPtr(row.Get(colV2Coefficient)),
				DimensionUID: dimensionUID,
			})
		}

		item := &model.MasterItemV2Record{
			ItemUID:         itemUID,
			Name:            row.Str(colV2Name),
			ManufacturerUID: manufUID,
			BrandUID:        brandUID,
			IsFractional:    parseFlag(row.Get(colV2IsWeight)),
			MainUnitUID:     row.Str(colV2MainUnitUID),
			ErpCategoryUID:  categoryUID,
			IsDeleted:       parseFlag(row.Get(colV2ToDelete)),
		}
		for i := 1; i <= 20; i++ {
			c := row.Get("Additional " + strconv.Itoa(i))
			if v2AdditionalNumeric[i] {
				if v := parseDecimalPtr(c); v != nil {
					item.Additional[i-1] = v
				}
			} else if s := c.String(); s != "" {
				item.Additional[i-1] = s
			}
		}
		result.Items = append(result.Items, item)
	}

	return result
}

// resolveRef UID 优先、名称兜底的身份解析
func resolveRef(row Row, uidLabel, nameLabel string) (uid, name string) {
	name = row.Str(nameLabel)
	uid = row.Str(uidLabel)
	if uid == "" {
		uid = name
	}
	return uid, name
}

// v2CategoryID 解析某一级分类的身份，未填返回空串
func v2CategoryID(row Row, level int) string {
	uid, _ := resolveRef(row,
		"Category level "+strconv.Itoa(level)+" UID",
		"Category level "+strconv.Itoa(level)+" name")
	return uid
}

// v2ItemCategory 商品归属的分类：从第 6 级往第 1 级找，
// 第一个有值的层级胜出。
func v2ItemCategory(row Row) string {
	for level := v2CategoryLevelCount; level >= 1; level-- {
		if id := v2CategoryID(row, level); id != "" {
			return id
		}
	}
	return ""
}

// v2RegisterCategories 自浅向深注册本行出现的全部分类节点。
// parent 指向上一个有值层级的解析身份，空档会被跨过（链式穿透，
// 与 v1 的字面列读取不同）。已注册节点允许回填缺失的名称，
// parent 一经写入不再改动。
func v2RegisterCategories(row Row, index map[string]*model.ErpCategoryRecord, result *MasterV2Result) {
	parent := ""
	for level := 1; level <= v2CategoryLevelCount; level++ {
		id := v2CategoryID(row, level)
		if id == "" {
			continue
		}
		name := row.Str("Category level " + strconv.Itoa(level) + " name")

		if node, ok := index[id]; ok {
			if node.Name == nil && name != "" {
				node.Name = &name
			}
		} else {
			node := &model.ErpCategoryRecord{
				ErpCategoryUID:    id,
				ParentCategoryUID: parent,
			}
			if name != "" {
				node.Name = &name
			}
			index[id] = node
			result.Categories = append(result.Categories, node)
		}

		parent = id
	}
}
