package model

import "time"

// Shop 店铺账号（书籍归属方）
type Shop struct {
	ShopID          int64     `json:"shop_id" gorm:"primaryKey;autoIncrement"`
	ShopName        string    `json:"shop_name" gorm:"type:varchar(64);uniqueIndex;not null"`
	OwnerName       string    `json:"owner_name" gorm:"type:varchar(64)"`
	ShopPhone       string    `json:"shop_phone" gorm:"type:varchar(32);uniqueIndex"`
	ShopAddress     string    `json:"shop_address" gorm:"type:varchar(255)"`
	ShopEmail       string    `json:"shop_email" gorm:"type:varchar(128);uniqueIndex"`
	ShopDescription string    `json:"shop_description" gorm:"type:text"`
	Password        string    `json:"-" gorm:"type:varchar(128);not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Shop) TableName() string { return "shop" }
