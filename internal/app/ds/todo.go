package ds

import "time"

// Задача в списке дел пользователя
type Todo struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Memo      string    `gorm:"type:text"`
	Created   time.Time `gorm:"not null;autoCreateTime"`
	Completed bool      `gorm:"type:boolean;default:false;not null"`

	User User `gorm:"foreignKey:UserID"`
}
