package api

import (
	"net/http"

	"contentai/config"
	"contentai/models"

	"github.com/gin-gonic/gin"
)

// 响应消息
const (
	MsgContentNotFound = "Content not found or not yours"
	MsgContentCreated  = "Content created with AI summary"
	MsgContentUpdated  = "Content updated with new AI summary"
	MsgContentDeleted  = "Content deleted (AI logs removed too)"

	msgInternalError = "Internal Server Error"
)

// MessageResponse 仅含消息的响应
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContentSummaryResponse 创建/更新内容的响应
type ContentSummaryResponse struct {
	Message   string         `json:"message"`
	Content   models.Content `json:"content"`
	AISummary string         `json:"ai_summary"`
}

// Message 200 消息响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// BadRequest 400 错误响应（请求体无法解析）
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: config.SafeErrorMessage(err, "Bad Request")})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// InternalError 500 错误响应，debug 模式下携带原始错误信息
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: config.SafeErrorMessage(err, msgInternalError)})
}
