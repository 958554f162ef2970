package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"contentai/middleware"
	"contentai/models"
	"contentai/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContentHandler 内容处理器
type ContentHandler struct {
	db         *gorm.DB
	summarizer service.Summarizer
}

// NewContentHandler 创建内容处理器
func NewContentHandler(db *gorm.DB, summarizer service.Summarizer) *ContentHandler {
	return &ContentHandler{db: db, summarizer: summarizer}
}

// CreateContentRequest 创建内容请求
type CreateContentRequest struct {
	Title       string `json:"title" example:"Buy milk"`
	Description string `json:"description" example:"2% low-fat"`
	Deadline    string `json:"deadline" example:"2024-01-01"`
	Status      string `json:"status" example:"open"`
}

// UpdateContentRequest 更新内容请求，仅这些字段可修改，未传的字段保持不变
type UpdateContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
}

// apply 将请求写入 content，返回需要持久化的列
func (r UpdateContentRequest) apply(content *models.Content) map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		content.Title = *r.Title
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		content.Description = *r.Description
		updates["description"] = *r.Description
	}
	if r.Deadline != nil {
		content.Deadline = *r.Deadline
		updates["deadline"] = *r.Deadline
	}
	if r.Status != nil {
		content.Status = *r.Status
		updates["status"] = *r.Status
	}
	return updates
}

// List 获取当前用户的全部内容
// @Summary 获取内容列表
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Content
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents [get]
func (h *ContentHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var contents []models.Content
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&contents).Error; err != nil {
		InternalError(c, err)
		return
	}
	if contents == nil {
		contents = []models.Content{}
	}

	c.JSON(http.StatusOK, contents)
}

// Get 获取单条内容
// @Summary 获取内容
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Param id path int true "内容ID"
// @Success 200 {object} models.Content
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	content, ok := h.findOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, content)
}

// Create 创建内容并生成 AI 摘要
// @Summary 创建内容
// @Description 保存内容后同步调用摘要服务，并追加一条摘要记录。摘要服务不可用时使用占位文本。
// @Tags 内容
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContentRequest true "内容"
// @Success 200 {object} ContentSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents [post]
func (h *ContentHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err)
		return
	}

	content := models.Content{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Status:      req.Status,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&content).Error; err != nil {
		InternalError(c, err)
		return
	}

	summary, err := h.summarize(c, content, content.SummaryText())
	if err != nil {
		InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, ContentSummaryResponse{
		Message:   MsgContentCreated,
		Content:   content,
		AISummary: summary,
	})
}

// Update 部分更新内容并重新生成 AI 摘要
// @Summary 更新内容
// @Tags 内容
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "内容ID"
// @Param request body UpdateContentRequest true "需要修改的字段"
// @Success 200 {object} ContentSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents/{id} [put]
func (h *ContentHandler) Update(c *gin.Context) {
	content, ok := h.findOwned(c)
	if !ok {
		return
	}

	// 空请求体视为不修改任何字段
	var req UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, err)
		return
	}

	if updates := req.apply(&content); len(updates) > 0 {
		if err := h.db.WithContext(c.Request.Context()).Model(&content).Updates(updates).Error; err != nil {
			InternalError(c, err)
			return
		}
	}

	summary, err := h.summarize(c, content, content.UpdatedSummaryText())
	if err != nil {
		InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, ContentSummaryResponse{
		Message:   MsgContentUpdated,
		Content:   content,
		AISummary: summary,
	})
}

// Delete 删除内容，摘要记录由外键级联删除
// @Summary 删除内容
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Param id path int true "内容ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	content, ok := h.findOwned(c)
	if !ok {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&content).Error; err != nil {
		InternalError(c, err)
		return
	}

	Message(c, MsgContentDeleted)
}

// History 获取内容的 AI 记录，按生成顺序
// @Summary 获取内容的 AI 记录
// @Tags 内容
// @Produce json
// @Security BearerAuth
// @Param id path int true "内容ID"
// @Success 200 {array} models.ContentAI
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/contents/{id}/ai-logs [get]
func (h *ContentHandler) History(c *gin.Context) {
	content, ok := h.findOwned(c)
	if !ok {
		return
	}

	var records []models.ContentAI
	if err := h.db.WithContext(c.Request.Context()).
		Where("content_id = ? AND user_id = ?", content.ID, content.UserID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		InternalError(c, err)
		return
	}
	if records == nil {
		records = []models.ContentAI{}
	}

	c.JSON(http.StatusOK, records)
}

// findOwned 按路径 id 查询当前用户的内容，失败时已写出响应
func (h *ContentHandler) findOwned(c *gin.Context) (models.Content, bool) {
	var content models.Content

	// 非法 id 不可能对应任何记录
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		NotFound(c, MsgContentNotFound)
		return content, false
	}

	userID := middleware.GetCurrentUserID(c)
	err = h.db.WithContext(c.Request.Context()).
		Where("id = ? AND user_id = ?", id, userID).
		First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, MsgContentNotFound)
		return content, false
	}
	if err != nil {
		InternalError(c, err)
		return content, false
	}
	return content, true
}

// summarize 调用摘要服务并追加一条摘要记录
// 内容写入与摘要记录写入不在同一事务中，摘要服务调用期间不持有事务
// 客户端断开不取消摘要调用与记录写入
func (h *ContentHandler) summarize(c *gin.Context, content models.Content, text string) (string, error) {
	ctx := context.WithoutCancel(c.Request.Context())
	summary := h.summarizer.GenerateSummary(ctx, text)

	record := models.NewSummaryRecord(content, summary)
	if err := h.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}
	return summary, nil
}
