package ds

// Таблица пользователей
type User struct {
	ID         uint    `gorm:"primaryKey"`
	Login      string  `gorm:"type:varchar(50);unique;not null"`
	Password   string  `gorm:"type:varchar(255);not null"` // sha1 хеш
	FullName   string  `gorm:"type:varchar(100)"`
	Mobile     string  `gorm:"type:varchar(20)"`
	ProfilePic *string `gorm:"type:varchar(255)"`  // имя объекта в MinIO, nullable
	Role       int     `gorm:"not null;default:0"` // 0 - клиент, 1 - администратор
}
