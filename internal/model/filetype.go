package model

// FileType 上游导出文件类型
type FileType string

const (
	FileTypeItemMaster   FileType = "ITEM_MASTER"
	FileTypeItemMasterV2 FileType = "ITEM_MASTER_V2"
	FileTypeFacts        FileType = "FACTS"
	FileTypeStoreItems   FileType = "STORE_ITEMS"
	FileTypeStore        FileType = "STORE"
	FileTypeStock        FileType = "STOCK"
	FileTypePrice        FileType = "PRICE"
	FileTypeUnknown      FileType = "UNKNOWN"
)

// FileTypeDefinition 文件类型指纹：一行内同时出现全部关键词才算命中
type FileTypeDefinition struct {
	Type     FileType
	Keywords []string
}

// DetectionOrder 识别优先级。关键词集合宽松的类型是严格类型的子集，
// 必须先检查严格类型，否则会被宽松类型抢先命中。
var DetectionOrder = []FileTypeDefinition{
	{Type: FileTypeItemMasterV2, Keywords: []string{"Item UID", "Category level 1"}},
	{Type: FileTypeItemMaster, Keywords: []string{"UID", "Item name", "Segment Code"}},
	{Type: FileTypeStoreItems, Keywords: []string{"Store UID", "Item UID", "Purchase price"}},
	{Type: FileTypeFacts, Keywords: []string{"Item UID", "Store UID", "Date"}},
	{Type: FileTypeStore, Keywords: []string{"Store UID", "Store name"}},
	{Type: FileTypeStock, Keywords: []string{"Item UID", "Stock"}},
	{Type: FileTypePrice, Keywords: []string{"Item UID", "Price"}},
}

// KeywordsFor 返回指定类型的指纹关键词
func KeywordsFor(t FileType) []string {
	for _, def := range DetectionOrder {
		if def.Type == t {
			return def.Keywords
		}
	}
	return nil
}
