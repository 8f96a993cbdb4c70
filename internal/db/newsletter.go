package db

import "time"

// Newsletter 记录订阅邮箱。email 唯一，只会被激活，不会通过接口删除或停用。
type Newsletter struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:254;uniqueIndex;not null"`
	Active    bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
