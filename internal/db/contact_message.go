package db

import "time"

// ContactMessage 保存联系表单的提交记录，只追加不去重
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:254;not null"`
	Subject   string `gorm:"size:200;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
