package model

import "time"

// LikeTargetArticle 点赞对象类型：文章
const LikeTargetArticle = "Article"

// Like 点赞记录，(user_id, target_type, target_id) 唯一
type Like struct {
	ID         uint64    `json:"id" gorm:"primaryKey"`
	UserID     uint64    `json:"userID" gorm:"not null;uniqueIndex:uniq_like_user_target"`
	TargetType string    `json:"targetType" gorm:"type:varchar(32);not null;uniqueIndex:uniq_like_user_target;index:idx_like_target"`
	TargetID   uint64    `json:"targetID" gorm:"not null;uniqueIndex:uniq_like_user_target;index:idx_like_target"`
	CreatedAt  time.Time `json:"createdAt"`
}

// IsPersisted 点赞记录是否已经落库（FirstOrInit 可能只在内存中初始化）
func (l *Like) IsPersisted() bool {
	return l.ID != 0
}
