package repository

import (
	"backend/internal/app/ds"
	"errors"

	"backend/internal/app/billing"

	"gorm.io/gorm"
)

// Методы для задач пользователя. Пользователь видит и меняет только свои задачи

func (r *Repository) GetTodosByUser(userID uint) ([]ds.Todo, error) {
	var todos []ds.Todo
	err := r.db.Where("user_id = ?", userID).Order("created DESC").Find(&todos).Error
	return todos, err
}

func (r *Repository) GetTodoByID(id, userID uint) (*ds.Todo, error) {
	var todo ds.Todo
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &billing.NotFoundError{Resource: "задача", ID: id}
		}
		return nil, err
	}
	return &todo, nil
}

func (r *Repository) CreateTodo(userID uint, title, memo string) (*ds.Todo, error) {
	todo := ds.Todo{
		UserID: userID,
		Title:  title,
		Memo:   memo,
	}

	err := r.db.Create(&todo).Error
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (r *Repository) UpdateTodo(id, userID uint, title, memo *string) error {
	updates := map[string]interface{}{}
	if title != nil {
		updates["title"] = *title
	}
	if memo != nil {
		updates["memo"] = *memo
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Todo{}).Where("id = ? AND user_id = ?", id, userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "задача", ID: id}
	}
	return nil
}

func (r *Repository) DeleteTodo(id, userID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&ds.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &billing.NotFoundError{Resource: "задача", ID: id}
	}
	return nil
}

// ToggleTodoComplete переключает отметку выполнения и возвращает новое значение
func (r *Repository) ToggleTodoComplete(id, userID uint) (bool, error) {
	todo, err := r.GetTodoByID(id, userID)
	if err != nil {
		return false, err
	}

	todo.Completed = !todo.Completed
	err = r.db.Model(&ds.Todo{}).Where("id = ?", todo.ID).Update("completed", todo.Completed).Error
	if err != nil {
		return false, err
	}
	return todo.Completed, nil
}
