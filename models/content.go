package models

import (
	"time"
)

// Content 用户内容
// 物理删除：依赖外键 ON DELETE CASCADE 清理关联的 AI 记录
type Content struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Deadline    string    `json:"deadline" gorm:"size:32"`
	Status      string    `json:"status" gorm:"size:32"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	AIRecords []ContentAI `json:"-" gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (Content) TableName() string {
	return "contents"
}

// SummaryText 创建时提交给摘要服务的文本
func (c Content) SummaryText() string {
	return "Title: " + c.Title + "\nDescription: " + c.Description
}

// UpdatedSummaryText 更新后提交给摘要服务的文本
func (c Content) UpdatedSummaryText() string {
	return "Updated Content:\n" + c.SummaryText()
}
