package model

import "time"

// Buyer 买家账号
type Buyer struct {
	BuyerID      int64     `json:"buyer_id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	DOB          string    `json:"dob" gorm:"type:varchar(32)"`
	Email        string    `json:"email" gorm:"type:varchar(128);uniqueIndex;not null"`
	PhoneNumber  string    `json:"phone_number" gorm:"type:varchar(32)"`
	Password     string    `json:"-" gorm:"type:varchar(128);not null"`
	BuyerAddress string    `json:"buyer_address" gorm:"type:varchar(255)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Buyer) TableName() string { return "buyer" }
