package parser

import (
	"strconv"

	"github.com/feanorMV/Excel-Data-Converter/internal/model"
)

// 商品主档 v1 列标签
const (
	colV1UID          = "UID*"
	colV1Name         = "Item name*"
	colV1Brand        = "Brand"
	colV1Manufacturer = "Manufacturer"
	colV1IsWeight     = "Is weight product"
	colV1MainUnitUID  = "Main unit UID"
	colV1UnitName     = "Unit name"
	colV1Width        = "Width"
	colV1Height       = "Height"
	colV1Depth        = "Depth"
	colV1NetWeight    = "Net weight"
	colV1Volume       = "Volume"
	colV1UnitUID      = "Unit UID"
	colV1Coefficient  = "Coefficient"
	colV1Barcode      = "Barcode"
	colV1IsMainBC     = "Is main barcode"
)

// v1CategoryLevels 四级分类，从浅到深。
// 每级一对 "{Level} Code" / "{Level} Description" 列。
var v1CategoryLevels = []string{"Segment", "Family", "Class", "Brick"}

// MasterV1Result 商品主档 v1 抽取结果
type MasterV1Result struct {
	Items         []*model.MasterItemV1Record
	Barcodes      []*model.BarcodeRecord
	Brands        []*model.BrandRecord
	Dimensions    []*model.DimensionV1Record
	Categories    []*model.ErpCategoryRecord
	Manufacturers []*model.ManufacturerRecord
}

// ExtractMasterV1 抽取商品主档（v1 格式）。
// 按商品 UID 去重：首行定义商品记录，后续同 UID 行只贡献条码和
// 包装单位副表。品牌/生产商在该格式里只有名称列，按名称集合去重，
// 名称本身即充当 UID。
func ExtractMasterV1(rows []Row, opts model.ConvertOptions) MasterV1Result {
	result := MasterV1Result{}

	seenItems := make(map[string]struct{})
	seenBarcodes := make(map[string]struct{})
	seenBrands := make(map[string]struct{})
	seenManufacturers := make(map[string]struct{})
	seenCategories := make(map[string]struct{})

	wantBarcodes := opts.TableEnabled(model.TableBarcodes)
	wantBrands := opts.TableEnabled(model.TableBrands)
	wantDimensions := opts.TableEnabled(model.TableDimensions)
	wantCategories := opts.TableEnabled(model.TableErpCategories)
	wantManufacturers := opts.TableEnabled(model.TableManufacturers)

	for _, row := range rows {
		itemUID := row.Pick(colV1UID, "UID").String()
		if itemUID == "" {
			continue
		}

		mainUnitUID := v1MainUnitUID(row, itemUID)

		// 品牌与生产商：任何一行都可以注册，先见先得
		brand := row.Str(colV1Brand)
		if wantBrands && brand != "" {
			if _, ok := seenBrands[brand]; !ok {
				seenBrands[brand] = struct{}{}
				result.Brands = append(result.Brands, &model.BrandRecord{BrandUID: brand, Name: brand})
			}
		}
		manufacturer := row.Str(colV1Manufacturer)
		if wantManufacturers && manufacturer != "" {
			if _, ok := seenManufacturers[manufacturer]; !ok {
				seenManufacturers[manufacturer] = struct{}{}
				result.Manufacturers = append(result.Manufacturers, &model.ManufacturerRecord{ManufacturerUID: manufacturer, Name: manufacturer})
			}
		}

		// 分类：每级代码首次出现时注册，parent 直接读本行
		// 上一级代码列的字面值，不做链式穿透（与 v2 的口径不同，
		// 这是按原始行为保留的差异）。
		categoryUID := ""
		if wantCategories {
			categoryUID = v1RegisterCategories(row, seenCategories, &result)
		} else {
			categoryUID = v1DeepestCategory(row)
		}

		// 条码：重复 UID 行也贡献，按 商品|条码 去重
		barcode := row.Str(colV1Barcode)
		if wantBarcodes && barcode != "" {
			key := itemUID + "|" + barcode
			if _, ok := seenBarcodes[key]; !ok {
				seenBarcodes[key] = struct{}{}
				result.Barcodes = append(result.Barcodes, &model.BarcodeRecord{
					ItemUID: itemUID,
					Barcode: barcode,
					IsMain:  parseFlag(row.Get(colV1IsMainBC)),
				})
			}
		}

		// 包装单位：重复 UID 行也贡献
		unitName := row.Str(colV1UnitName)
		if wantDimensions && unitName != "" {
			dimensionUID := row.Str(colV1UnitUID)
			if dimensionUID == "" {
				dimensionUID = mainUnitUID
			}
			result.Dimensions = append(result.Dimensions, &model.DimensionV1Record{
				ItemUID:      itemUID,
				UnitName:     unitName,
				Width:        parseDecimalPtr(row.Get(colV1Width)),
				Height:       parseDecimalPtr(row.Get(colV1Height)),
				Depth:        parseDecimalPtr(row.Get(colV1Depth)),
				NetWeight:    parseDecimalPtr(row.Get(colV1NetWeight)),
				Volume:       parseDecimalPtr(row.Get(colV1Volume)),
				DimensionUID: dimensionUID,
				Coef:         parseDecimalPtr(row.Get(colV1Coefficient)),
			})
		}

		// 商品记录只认首次出现的 UID
		if _, ok := seenItems[itemUID]; ok {
			continue
		}
		seenItems[itemUID] = struct{}{}

		item := &model.MasterItemV1Record{
			ItemUID:         itemUID,
			Name:            row.Pick(colV1Name, "Item name").String(),
			ManufacturerUID: manufacturer,
			BrandUID:        brand,
			IsFractional:    parseFlag(row.Get(colV1IsWeight)),
			MainUnitUID:     mainUnitUID,
			ErpCategoryUID:  categoryUID,
		}
		for i := 0; i < 4; i++ {
			item.Additional[i] = row.Str("Additional " + strconv.Itoa(i+1))
		}
		result.Items = append(result.Items, item)
	}

	return result
}

// v1MainUnitUID 主单位 UID：列值缺失时合成
// {商品UID}_{单位名}，单位名也没有时退为 {商品UID}_01。
func v1MainUnitUID(row Row, itemUID string) string {
	if uid := row.Str(colV1MainUnitUID); uid != "" {
		return uid
	}
	if unitName := row.Str(colV1UnitName); unitName != "" {
		return itemUID + "_" + unitName
	}
	return itemUID + "_01"
}

// v1RegisterCategories 注册本行出现的分类节点并返回最深一级的代码
func v1RegisterCategories(row Row, seen map[string]struct{}, result *MasterV1Result) string {
	deepest := ""
	for i, level := range v1CategoryLevels {
		code := row.Str(level + " Code")
		if code == "" {
			continue
		}
		deepest = code

		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		parent := ""
		if i > 0 {
			parent = row.Str(v1CategoryLevels[i-1] + " Code")
		}

		node := &model.ErpCategoryRecord{
			ErpCategoryUID:    code,
			ParentCategoryUID: parent,
		}
		if desc := row.Str(level + " Description"); desc != "" {
			node.Name = &desc
		}
		result.Categories = append(result.Categories, node)
	}
	return deepest
}

// v1DeepestCategory 不注册节点，只取最深一级代码
func v1DeepestCategory(row Row) string {
	for i := len(v1CategoryLevels) - 1; i >= 0; i-- {
		if code := row.Str(v1CategoryLevels[i] + " Code"); code != "" {
			return code
		}
	}
	return ""
}
