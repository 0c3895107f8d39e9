package models

import "time"

// BaseModel tüm tablolarda ortak olan kimlik ve oluşturulma zamanı alanlarını taşır.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
