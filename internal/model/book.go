package model

import "time"

// Book 书籍（本核心内只读）
type Book struct {
	BookID    int64     `json:"book_id" gorm:"primaryKey;autoIncrement"`
	ShopID    int64     `json:"shop_id" gorm:"index:idx_book_shop;not null"`
	BookName  string    `json:"book_name" gorm:"type:varchar(255);index;not null"`
	Author    string    `json:"author" gorm:"type:varchar(128);index"`
	Genre     string    `json:"genre" gorm:"type:varchar(64);index"`
	Desc      string    `json:"desc" gorm:"column:description;type:text"`
	Price     float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Book) TableName() string { return "books" }
