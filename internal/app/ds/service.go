package ds

import "github.com/shopspring/decimal"

// 1. Таблица услуг мойки - ТОЛЬКО справочная информация, ведёт администратор
type Service struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"` // базовая цена разовой мойки
	IsActive    bool            `gorm:"type:boolean;default:true;not null"`
}
