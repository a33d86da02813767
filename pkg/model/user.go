package model

// User 用户，name 全局唯一（即页面路径中的 @name）
type User struct {
	BaseModel
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(64);not null;uniqueIndex"`
}
