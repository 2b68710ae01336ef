package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/fdareview/backend/internal/session"
)

// 文档上传限制
const (
	maxUploadBytes = 10 << 20
	previewChars   = 1500
)

// DocumentHandler 审评文档处理器
type DocumentHandler struct{}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler() *DocumentHandler {
	return &DocumentHandler{}
}

// RegisterRoutes 注册路由
func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/documents", h.Upload)
	router.GET("/documents", h.List)
	router.GET("/documents/:name", h.Get)
}

// Upload 上传待审文档（仅 .txt/.md 纯文本）
// 同名文档首次上传生效，重复上传不覆盖。
func (h *DocumentHandler) Upload(c *gin.Context) {
	state := session.FromContext(c)

	file, err := c.FormFile("file")
	if err != nil {
		klog.V(6).Infof("Upload: missing file: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".txt" && ext != ".md" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .txt and .md files are supported"})
		return
	}

	f, err := file.Open()
	if err != nil {
		klog.Errorf("Upload: open %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		klog.Errorf("Upload: read %s: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	name := filepath.Base(file.Filename)
	added := state.AddDocument(name, string(data))
	if !added {
		klog.V(6).Infof("Upload: %s already present, keeping first upload", name)
	}

	text, _ := state.Document(name)
	c.JSON(http.StatusCreated, gin.H{
		"name":    name,
		"size":    len(text),
		"added":   added,
		"preview": preview(text),
	})
}

// List 列出本会话已上传的文档
func (h *DocumentHandler) List(c *gin.Context) {
	state := session.FromContext(c)

	names := state.DocumentNames()
	c.JSON(http.StatusOK, gin.H{
		"documents": names,
		"total":     len(names),
	})
}

// Get 获取单个文档的预览与分析结果
func (h *DocumentHandler) Get(c *gin.Context) {
	state := session.FromContext(c)
	name := c.Param("name")

	text, ok := state.Document(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}

	resp := gin.H{
		"name":    name,
		"size":    len(text),
		"preview": preview(text),
	}
	if result, ok := state.Result(name); ok {
		resp["result"] = result
	}

	c.JSON(http.StatusOK, resp)
}

// preview 截取文档开头的预览片段
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars])
}
