package model

import "strconv"

// 各输出表的列顺序。顺序是对外契约的一部分，与输入列顺序无关，
// 序列化时只按这里声明的顺序取值，不反射记录里的其他字段。

var (
	StoreColumns = []string{"store_uid", "name", "region", "group_name", "floor_space", "in_shelf", "licence_start_date", "is_deleted"}

	ItemColumns = []string{"item_uid", "store_uid", "is_active_planogram", "purchase_price", "retail_price", "external_supplier_uid"}

	SupplierColumns = []string{"supplier_uid", "name", "is_deleted"}

	FactColumns = []string{"item_uid", "store_uid", "date", "stock", "sold_qty", "revenue", "cogs"}

	MasterItemV1Columns = []string{"item_uid", "name", "manufacturer_uid", "brand_uid", "is_fractional",
		"additional_1", "additional_2", "additional_3", "additional_4", "main_unit_uid", "erp_category_uid"}

	MasterItemV2Columns = buildMasterV2Columns()

	BarcodeColumns = []string{"item_uid", "barcode", "is_main"}

	BrandColumns = []string{"brand_uid", "name", "is_deleted"}

	ManufacturerColumns = []string{"manufacturer_uid", "name", "is_deleted"}

	DimensionV1Columns = []string{"item_uid", "unit_name", "width", "height", "depth", "netweight", "volume", "dimension_uid", "coef", "is_deleted"}

	DimensionV2Columns = []string{"item_uid", "unit_name", "width", "height", "depth", "coef", "is_deleted", "dimension_uid"}

	ErpCategoryColumns = []string{"erp_category_uid", "name", "parent_category_uid"}
)

func buildMasterV2Columns() []string {
	cols := []string{"item_uid", "name", "manufacturer_uid", "brand_uid", "is_fractional"}
	for i := 1; i <= 20; i++ {
		cols = append(cols, "additional_"+strconv.Itoa(i))
	}
	return append(cols, "main_unit_uid", "erp_category_uid", "is_deleted")
}

// StoreRecord 门店记录
type StoreRecord struct {
	StoreUID         string
	Name             string
	Region           string
	GroupName        string
	FloorSpace       int
	InShelf          int
	LicenceStartDate string
	IsDeleted        int
}

// Fields 按 StoreColumns 顺序返回字段值
func (r *StoreRecord) Fields() []any {
	return []any{r.StoreUID, r.Name, r.Region, r.GroupName, r.FloorSpace, r.InShelf, r.LicenceStartDate, r.IsDeleted}
}

// ItemRecord 门店商品记录
type ItemRecord struct {
	ItemUID             string
	StoreUID            string
	IsActivePlanogram   int
	PurchasePrice       *float64
	RetailPrice         *float64
	ExternalSupplierUID string
}

func (r *ItemRecord) Fields() []any {
	return []any{r.ItemUID, r.StoreUID, r.IsActivePlanogram, r.PurchasePrice, r.RetailPrice, r.ExternalSupplierUID}
}

// SupplierRecord 供应商记录
type SupplierRecord struct {
	SupplierUID string
	Name        string
	IsDeleted   int
}

func (r *SupplierRecord) Fields() []any {
	return []any{r.SupplierUID, r.Name, r.IsDeleted}
}

// FactRecord 销售事实记录。Date 已预先格式化为 YYYY-MM-DD。
type FactRecord struct {
	ItemUID  string
	StoreUID string
	Date     string
	Stock    *float64
	SoldQty  *float64
	Revenue  *float64
	Cogs     *float64
}

func (r *FactRecord) Fields() []any {
	return []any{r.ItemUID, r.StoreUID, r.Date, r.Stock, r.SoldQty, r.Revenue, r.Cogs}
}

// MasterItemV1Record 商品主档记录（v1 格式）
type MasterItemV1Record struct {
	ItemUID         string
	Name            string
	ManufacturerUID string
	BrandUID        string
	IsFractional    int
	Additional      [4]string
	MainUnitUID     string
	ErpCategoryUID  string
}

func (r *MasterItemV1Record) Fields() []any {
	return []any{r.ItemUID, r.Name, r.ManufacturerUID, r.BrandUID, r.IsFractional,
		r.Additional[0], r.Additional[1], r.Additional[2], r.Additional[3],
		r.MainUnitUID, r.ErpCategoryUID}
}

// MasterItemV2Record 商品主档记录（v2 格式）。
// Additional 各列类型由列号固定决定，数值列存 *float64，透传列存 string。
type MasterItemV2Record struct {
	ItemUID         string
	Name            string
	ManufacturerUID string
	BrandUID        string
	IsFractional    int
	Additional      [20]any
	MainUnitUID     string
	ErpCategoryUID  string
	IsDeleted       int
}

func (r *MasterItemV2Record) Fields() []any {
	fields := []any{r.ItemUID, r.Name, r.ManufacturerUID, r.BrandUID, r.IsFractional}
	for i := 0; i < 20; i++ {
		fields = append(fields, r.Additional[i])
	}
	return append(fields, r.MainUnitUID, r.ErpCategoryUID, r.IsDeleted)
}

// BarcodeRecord 条码记录
type BarcodeRecord struct {
	ItemUID string
	Barcode string
	IsMain  int
}

func (r *BarcodeRecord) Fields() []any {
	return []any{r.ItemUID, r.Barcode, r.IsMain}
}

// BrandRecord 品牌记录
type BrandRecord struct {
	BrandUID  string
	Name      string
	IsDeleted int
}

func (r *BrandRecord) Fields() []any {
	return []any{r.BrandUID, r.Name, r.IsDeleted}
}

// ManufacturerRecord 生产商记录
type ManufacturerRecord struct {
	ManufacturerUID string
	Name            string
	IsDeleted       int
}

func (r *ManufacturerRecord) Fields() []any {
	return []any{r.ManufacturerUID, r.Name, r.IsDeleted}
}

// DimensionV1Record 包装单位记录（v1 格式）
type DimensionV1Record struct {
	ItemUID      string
	UnitName     string
	Width        *float64
	Height       *float64
	Depth        *float64
	NetWeight    *float64
	Volume       *float64
	DimensionUID string
	Coef         *float64
	IsDeleted    int
}

func (r *DimensionV1Record) Fields() []any {
	return []any{r.ItemUID, r.UnitName, r.Width, r.Height, r.Depth, r.NetWeight, r.Volume, r.DimensionUID, r.Coef, r.IsDeleted}
}

// DimensionV2Record 包装单位记录（v2 格式）
type DimensionV2Record struct {
	ItemUID      string
	UnitName     string
	Width        *float64
	Height       *float64
	Depth        *float64
	Coef         *float64
	IsDeleted    int
	DimensionUID string
}

func (r *DimensionV2Record) Fields() []any {
	return []any{r.ItemUID, r.UnitName, r.Width, r.Height, r.Depth, r.Coef, r.IsDeleted, r.DimensionUID}
}

// ErpCategoryRecord 分类树节点。Name 为 nil 表示尚未见到名称，
// 后续行可以回填；ParentCategoryUID 为空串表示根节点。
type ErpCategoryRecord struct {
	ErpCategoryUID    string
	Name              *string
	ParentCategoryUID string
}

func (r *ErpCategoryRecord) Fields() []any {
	return []any{r.ErpCategoryUID, r.Name, r.ParentCategoryUID}
}

// CsvFile 序列化后的单个输出表
type CsvFile struct {
	Name    string `json:"name"`
	Content string `json:"-"`
	Rows    int    `json:"rows"`
}
