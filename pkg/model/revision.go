package model

import "time"

// RevisionType 版本类型
type RevisionType string

const (
	// RevisionTypeCommitted 正式保存的版本
	RevisionTypeCommitted RevisionType = "committed"
	// RevisionTypePreview 预览用的版本，不落库
	RevisionTypePreview RevisionType = "preview"
)

// Revision 文章内容快照，只追加不修改
type Revision struct {
	ID           uint64       `json:"id" gorm:"primaryKey"`
	UserID       uint64       `json:"userID" gorm:"not null;index"`
	ArticleID    *uint64      `json:"articleID" gorm:"index"`
	Title        string       `json:"title" gorm:"type:varchar(255);not null;default:''" validate:"notblank,max=255"`
	Body         string       `json:"body" gorm:"type:text"`
	Note         string       `json:"note" gorm:"type:varchar(255);not null;default:''" validate:"max=255"`
	RevisionType RevisionType `json:"revisionType" gorm:"type:varchar(16);not null" validate:"oneof=committed preview"`
	CreatedAt    time.Time    `json:"createdAt"`
}
