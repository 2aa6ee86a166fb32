package ds

import (
	"time"

	"github.com/shopspring/decimal"
)

// 5. Платёж по заявке. Записи только добавляются, никогда не изменяются
// и не удаляются - статус оплаты каждый раз вычисляется заново по ним.
type Payment struct {
	ID               uint            `gorm:"primaryKey"`
	UserID           uint            `gorm:"not null;index"`
	ServiceRequestID uint            `gorm:"not null;index"`
	Amount           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt        time.Time       `gorm:"not null"`

	User           User           `gorm:"foreignKey:UserID"`
	ServiceRequest ServiceRequest `gorm:"foreignKey:ServiceRequestID"`
}
