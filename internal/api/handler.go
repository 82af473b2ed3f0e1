package api

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/feanorMV/Excel-Data-Converter/internal/config"
	"github.com/feanorMV/Excel-Data-Converter/internal/store"
)

// Handler API 处理器
type Handler struct {
	store *store.Store
	cfg   *config.AppConfig

	exportsDir string

	uploads   map[string]*uploadedFile
	uploadsMu sync.RWMutex

	downloads *downloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(st *store.Store, cfg *config.AppConfig, exportsDir string) *Handler {
	return &Handler{
		store:      st,
		cfg:        cfg,
		exportsDir: exportsDir,
		uploads:    make(map[string]*uploadedFile),
		downloads:  newDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/files", h.UploadFiles)
	router.GET("/files", h.ListFiles)
	router.DELETE("/files/:fileId", h.DeleteFile)

	router.POST("/convert", h.Convert)

	router.GET("/downloads/:token", h.Download)

	router.GET("/logs", h.ListLogs)
}

// Response 通用响应
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(200, Response{Code: code, Message: message})
}
