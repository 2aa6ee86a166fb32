package ds

import "github.com/shopspring/decimal"

// 2. Вариант подписки на услугу (пакет из N моек на Duration дней)
type SubscriptionOption struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Slug        string          `gorm:"type:varchar(255);uniqueIndex;not null"` // выводится из имени при создании
	Description string          `gorm:"type:text"`
	Count       int             `gorm:"not null;default:1"` // количество моек в пакете
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Duration    int             `gorm:"not null"` // длительность в днях, 30 для месячной подписки
	ServiceID   uint            `gorm:"not null;index"`

	Service Service `gorm:"foreignKey:ServiceID"`
}
