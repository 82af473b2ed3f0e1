package pipeline

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"github.com/feanorMV/Excel-Data-Converter/internal/exporter"
	"github.com/feanorMV/Excel-Data-Converter/internal/model"
	"github.com/feanorMV/Excel-Data-Converter/internal/parser"
	"github.com/feanorMV/Excel-Data-Converter/internal/store"
)

// Status 状态事件级别
type Status string

const (
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Event 单文件转换过程中的有序状态事件。纯观察用途，不影响控制流。
type Event struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// Result 单文件转换结果。三种终态：带表成功、零表成功、失败。
type Result struct {
	FileName string          `json:"fileName"`
	Type     model.FileType  `json:"type"`
	Tables   []model.CsvFile `json:"tables"`
	Error    string          `json:"error,omitempty"`
}

// OK 是否成功终态（零表也算成功）
func (r *Result) OK() bool {
	return r.Error == ""
}

// Converter 单文件转换调度器。
// 每次调用的去重集合等状态全部局部于该次抽取，多文件并行安全；
// 转换日志落到 SQLite（可为 nil，纯库用法时跳过）。
type Converter struct {
	store *store.Store
}

// NewConverter 创建调度器
func NewConverter(st *store.Store) *Converter {
	return &Converter{store: st}
}

// ConvertFile 执行单文件流水线：识别 → 定位表头 → 规范化 → 抽取 → 序列化。
// 任何失败只终结本文件，不影响同批其他文件。
func (c *Converter) ConvertFile(filename string, data []byte, opts model.ConvertOptions, emit func(Event)) *Result {
	result := &Result{FileName: filename, Type: model.FileTypeUnknown}
	send := func(status Status, format string, args ...any) {
		if emit != nil {
			emit(Event{Message: fmt.Sprintf(format, args...), Status: status})
		}
	}

	logID := c.logStart(filename, data)
	defer func() {
		c.logFinish(logID, result)
	}()

	send(StatusProcessing, "正在识别文件类型: %s", filename)

	wb, err := parser.LoadWorkbook(bytes.NewReader(data))
	if err != nil {
		result.Error = fmt.Sprintf("打开文件失败: %v", err)
		send(StatusError, "%s", result.Error)
		return result
	}

	detection := parser.DetectFileType(wb)
	result.Type = detection.Type

	switch detection.Type {
	case model.FileTypeUnknown:
		result.Error = "无法识别文件类型"
		send(StatusError, "%s", result.Error)
		return result
	case model.FileTypeStock, model.FileTypePrice:
		result.Error = fmt.Sprintf("已识别为 %s，该类型暂不支持转换", detection.Type)
		send(StatusError, "%s", result.Error)
		return result
	}

	send(StatusProcessing, "识别为 %s（工作表 %s），正在定位表头", detection.Type, detection.SheetName)

	sheet := wb.SheetByName(detection.SheetName)
	if sheet == nil {
		result.Error = fmt.Sprintf("工作表 %s 不存在", detection.SheetName)
		send(StatusError, "%s", result.Error)
		return result
	}

	headerIdx := parser.LocateHeaderRow(sheet.Rows, model.KeywordsFor(detection.Type))
	if headerIdx < 0 {
		result.Error = fmt.Sprintf("工作表 %s 中未找到表头行", detection.SheetName)
		send(StatusError, "%s", result.Error)
		return result
	}

	rows := parser.BuildRows(sheet.Rows, headerIdx)
	send(StatusProcessing, "表头位于第 %d 行，共 %d 行数据，开始抽取", headerIdx+1, len(rows))

	result.Tables = extractTables(detection.Type, rows, opts)

	if len(result.Tables) == 0 {
		send(StatusSuccess, "%s: 没有满足必填条件的数据行，未产出任何表", filename)
		return result
	}

	send(StatusSuccess, "%s: 生成 %d 张表", filename, len(result.Tables))
	return result
}

// extractTables 按类型分发抽取并序列化非空表
func extractTables(t model.FileType, rows []parser.Row, opts model.ConvertOptions) []model.CsvFile {
	var tables []model.CsvFile
	add := func(f model.CsvFile, ok bool) {
		if ok {
			tables = append(tables, f)
		}
	}

	switch t {
	case model.FileTypeStore:
		add(exporter.MakeTable(model.TableStores, model.StoreColumns, parser.ExtractStores(rows), opts.RunDate))

	case model.FileTypeStoreItems:
		res := parser.ExtractStoreItems(rows, opts)
		add(exporter.MakeTable(model.TableItems, model.ItemColumns, res.Items, opts.RunDate))
		add(exporter.MakeTable(model.TableSuppliers, model.SupplierColumns, res.Suppliers, opts.RunDate))

	case model.FileTypeFacts:
		add(exporter.MakeTable(model.TableFacts, model.FactColumns, parser.ExtractFacts(rows), opts.RunDate))

	case model.FileTypeItemMaster:
		res := parser.ExtractMasterV1(rows, opts)
		add(exporter.MakeTable(model.TableMasterItems, model.MasterItemV1Columns, res.Items, opts.RunDate))
		add(exporter.MakeTable(model.TableBarcodes, model.BarcodeColumns, res.Barcodes, opts.RunDate))
		add(exporter.MakeTable(model.TableBrands, model.BrandColumns, res.Brands, opts.RunDate))
		add(exporter.MakeTable(model.TableDimensions, model.DimensionV1Columns, res.Dimensions, opts.RunDate))
		add(exporter.MakeTable(model.TableErpCategories, model.ErpCategoryColumns, res.Categories, opts.RunDate))
		add(exporter.MakeTable(model.TableManufacturers, model.ManufacturerColumns, res.Manufacturers, opts.RunDate))

	case model.FileTypeItemMasterV2:
		res := parser.ExtractMasterV2(rows, opts)
		add(exporter.MakeTable(model.TableMasterItems, model.MasterItemV2Columns, res.Items, opts.RunDate))
		add(exporter.MakeTable(model.TableBarcodes, model.BarcodeColumns, res.Barcodes, opts.RunDate))
		add(exporter.MakeTable(model.TableBrands, model.BrandColumns, res.Brands, opts.RunDate))
		add(exporter.MakeTable(model.TableDimensions, model.DimensionV2Columns, res.Dimensions, opts.RunDate))
		add(exporter.MakeTable(model.TableErpCategories, model.ErpCategoryColumns, res.Categories, opts.RunDate))
		add(exporter.MakeTable(model.TableManufacturers, model.ManufacturerColumns, res.Manufacturers, opts.RunDate))
	}

	return tables
}

// logStart 写入转换日志，失败只告警不阻断
func (c *Converter) logStart(filename string, data []byte) int64 {
	if c.store == nil {
		return 0
	}
	sum := sha256.Sum256(data)
	id, err := c.store.CreateConversionLog(filename, int64(len(data)), hex.EncodeToString(sum[:]))
	if err != nil {
		log.Printf("写入转换日志失败: %v", err)
		return 0
	}
	return id
}

// logFinish 完成转换日志
func (c *Converter) logFinish(id int64, result *Result) {
	if c.store == nil || id == 0 {
		return
	}
	status := "success"
	if !result.OK() {
		status = "error"
	}
	if err := c.store.CompleteConversionLog(id, string(result.Type), len(result.Tables), status, result.Error); err != nil {
		log.Printf("更新转换日志失败: %v", err)
	}
}
