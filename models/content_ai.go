package models

import (
	"time"
)

// ContentAITypeSummary 摘要类型
const ContentAITypeSummary = "summary"

// ContentAI 内容的 AI 响应记录，只追加不修改
type ContentAI struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	ContentID  uint      `json:"content_id" gorm:"index;not null"`
	Type       string    `json:"type" gorm:"size:32;not null"`
	AIResponse string    `json:"ai_response" gorm:"type:longtext"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ContentAI) TableName() string {
	return "content_ais"
}

// NewSummaryRecord 为 content 生成一条摘要记录，user_id 取自 content 本身
func NewSummaryRecord(content Content, summary string) ContentAI {
	return ContentAI{
		UserID:     content.UserID,
		ContentID:  content.ID,
		Type:       ContentAITypeSummary,
		AIResponse: summary,
	}
}
