package role

// Role - роль пользователя в системе
type Role int

const (
	Client Role = iota // обычный клиент мойки
	Admin              // администратор каталога услуг
)

// IsAdmin сообщает, есть ли у роли права администратора
func (r Role) IsAdmin() bool {
	return r == Admin
}

func (r Role) String() string {
	switch r {
	case Client:
		return "client"
	case Admin:
		return "admin"
	}
	return "unknown"
}
