package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feanorMV/Excel-Data-Converter/internal/exporter"
	"github.com/feanorMV/Excel-Data-Converter/internal/model"
	"github.com/feanorMV/Excel-Data-Converter/internal/pipeline"
)

// ConvertRequest 转换请求
type ConvertRequest struct {
	FileIDs []string        `json:"fileIds"`
	Tables  map[string]bool `json:"tables"`
}

// convertEvent SSE 帧。kind=status 是单文件状态事件，
// kind=done 是整批终态。
type convertEvent struct {
	Kind    string             `json:"kind"`
	File    string             `json:"file,omitempty"`
	Message string             `json:"message,omitempty"`
	Status  pipeline.Status    `json:"status,omitempty"`
	Results []*pipeline.Result `json:"results,omitempty"`
	Archive string             `json:"archive,omitempty"`
	Token   string             `json:"token,omitempty"`
	OK      bool               `json:"ok,omitempty"`
}

// Convert 执行一批文件的转换 (SSE 流式响应)
// POST /api/convert
// 每个文件独立走完流水线，单文件失败不影响其他文件；
// 只要有一个文件产出表，整批即算成功并给出归档下载令牌。
func (h *Handler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}
	if len(req.FileIDs) == 0 {
		errorResponse(c, 1002, "未选择文件")
		return
	}

	h.uploadsMu.RLock()
	files := make([]*uploadedFile, 0, len(req.FileIDs))
	for _, id := range req.FileIDs {
		if f, ok := h.uploads[id]; ok {
			files = append(files, f)
		}
	}
	h.uploadsMu.RUnlock()

	if len(files) == 0 {
		errorResponse(c, 1003, "所选文件均不存在")
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		errorResponse(c, 5001, "不支持流式响应")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	send := func(ev convertEvent) {
		data, err := json.Marshal(ev)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", data)
		flusher.Flush()
	}

	// 运行日期显式注入流水线，深层抽取逻辑不读时钟
	opts := model.ConvertOptions{
		Tables:  h.mergeTables(req.Tables),
		RunDate: time.Now(),
	}

	converter := pipeline.NewConverter(h.store)
	archive := exporter.NewArchive()

	results := make([]*pipeline.Result, 0, len(files))
	produced := 0

	for _, f := range files {
		fileName := f.FileName
		result := converter.ConvertFile(fileName, f.data, opts, func(ev pipeline.Event) {
			send(convertEvent{Kind: "status", File: fileName, Message: ev.Message, Status: ev.Status})
		})
		results = append(results, result)

		for _, table := range result.Tables {
			if err := archive.Add(table.Name, table.Content); err != nil {
				send(convertEvent{Kind: "status", File: fileName, Message: "写入归档失败: " + err.Error(), Status: pipeline.StatusError})
			}
		}
		if len(result.Tables) > 0 {
			produced++
		}
	}

	done := convertEvent{Kind: "done", Results: results, OK: produced > 0}

	if archive.Count() > 0 {
		archiveName := exporter.ArchiveName(opts.RunDate)
		if token, err := h.saveArchive(archive, archiveName); err != nil {
			done.OK = false
			done.Message = "归档生成失败: " + err.Error()
		} else {
			done.Archive = archiveName
			done.Token = token
		}
	}

	send(done)
}

// mergeTables 配置缺省叠加请求覆盖
func (h *Handler) mergeTables(override map[string]bool) map[string]bool {
	tables := h.cfg.Output.Tables()
	for name, enabled := range override {
		tables[name] = enabled
	}
	return tables
}

// saveArchive 归档落盘并登记下载令牌
func (h *Handler) saveArchive(archive *exporter.Archive, name string) (string, error) {
	data, err := archive.Close()
	if err != nil {
		return "", err
	}

	path := filepath.Join(h.exportsDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return h.downloads.put(path, name, 30*time.Minute), nil
}
