package api

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxUploadSize 单文件上限，整簿常驻内存，超大文件不在支持范围
const maxUploadSize = 64 << 20

type uploadedFile struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`

	data []byte
}

// UploadFiles 上传一个或多个待转换文件
// POST /api/files
func (h *Handler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		errorResponse(c, 1001, "无效的表单数据")
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		errorResponse(c, 1002, "未找到上传文件")
		return
	}

	var accepted []*uploadedFile
	for _, fh := range files {
		if fh.Size > maxUploadSize {
			errorResponse(c, 1003, "文件过大: "+fh.Filename)
			return
		}
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
			errorResponse(c, 1004, "仅支持 xlsx 文件: "+fh.Filename)
			return
		}

		src, err := fh.Open()
		if err != nil {
			errorResponse(c, 1005, "读取上传文件失败: "+fh.Filename)
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			errorResponse(c, 1005, "读取上传文件失败: "+fh.Filename)
			return
		}

		accepted = append(accepted, &uploadedFile{
			ID:         uuid.New().String(),
			FileName:   fh.Filename,
			Size:       fh.Size,
			UploadedAt: time.Now(),
			data:       data,
		})
	}

	h.uploadsMu.Lock()
	for _, f := range accepted {
		h.uploads[f.ID] = f
	}
	h.uploadsMu.Unlock()

	success(c, accepted)
}

// ListFiles 已上传文件列表
// GET /api/files
func (h *Handler) ListFiles(c *gin.Context) {
	h.uploadsMu.RLock()
	files := make([]*uploadedFile, 0, len(h.uploads))
	for _, f := range h.uploads {
		files = append(files, f)
	}
	h.uploadsMu.RUnlock()

	sort.Slice(files, func(i, j int) bool {
		return files[i].UploadedAt.Before(files[j].UploadedAt)
	})
	success(c, files)
}

// DeleteFile 移除已上传文件
// DELETE /api/files/:fileId
func (h *Handler) DeleteFile(c *gin.Context) {
	fileID := c.Param("fileId")

	h.uploadsMu.Lock()
	_, ok := h.uploads[fileID]
	delete(h.uploads, fileID)
	h.uploadsMu.Unlock()

	if !ok {
		errorResponse(c, 1006, "文件不存在")
		return
	}
	success(c, nil)
}

// ListLogs 最近的转换日志
// GET /api/logs
func (h *Handler) ListLogs(c *gin.Context) {
	if h.store == nil {
		success(c, nil)
		return
	}
	logs, err := h.store.RecentConversionLogs(50)
	if err != nil {
		errorResponse(c, 5001, err.Error())
		return
	}
	success(c, logs)
}
