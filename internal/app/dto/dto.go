package dto

import (
	"github.com/shopspring/decimal"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status      string      `json:"status"`
	Message     string      `json:"message"`
	Suggestions interface{} `json:"suggestions,omitempty"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID            uint   `json:"id"`
	Login         string `json:"login"`
	FullName      string `json:"full_name"`
	Mobile        string `json:"mobile,omitempty"`
	Role          int    `json:"role"`
	ProfilePicURL string `json:"profile_pic_url,omitempty"`
}

type RegisterRequest struct {
	Login    string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
}

type LoginRequest struct {
	Login    string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Mobile   string `json:"mobile"`
}

// ============ Задачи (Todos) ============

type TodoResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Memo      string `json:"memo"`
	Created   string `json:"created"`
	Completed bool   `json:"completed"`
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Total int            `json:"total"`
}

type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,max=100"`
	Memo  string `json:"memo"`
}

type UpdateTodoRequest struct {
	Title string `json:"title"`
	Memo  string `json:"memo"`
}

// ============ Услуги (Services) ============

type ServiceResponse struct {
	ID                  uint                         `json:"id"`
	Name                string                       `json:"name"`
	Description         string                       `json:"description"`
	Price               decimal.Decimal              `json:"price"`
	IsActive            bool                         `json:"is_active"`
	SubscriptionOptions []SubscriptionOptionResponse `json:"subscription_options,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	IsActive    *bool            `json:"is_active"`
}

// ============ Варианты подписки (Subscription Options) ============

type SubscriptionOptionResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Count       int              `json:"count"`
	Price       decimal.Decimal  `json:"price"`
	Duration    int              `json:"duration"`
	ServiceID   uint             `json:"service_id"`
	Offers      []OfferResponse  `json:"offers,omitempty"`
	TotalPrice  *decimal.Decimal `json:"total_price,omitempty"` // цена с учётом лучшей действующей скидки
}

type SubscriptionOptionListResponse struct {
	Options []SubscriptionOptionResponse `json:"subscription_options"`
	Total   int                          `json:"total"`
}

type CreateSubscriptionOptionRequest struct {
	Name        string          `json:"name" binding:"required"`
	Slug        string          `json:"slug"` // если пустой - выводится из имени
	Description string          `json:"description"`
	Count       int             `json:"count" binding:"omitempty,gte=1"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration" binding:"required,gte=1"`
	ServiceID   uint            `json:"service_id" binding:"required"`
}

type UpdateSubscriptionOptionRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Count       *int             `json:"count" binding:"omitempty,gte=1"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration" binding:"omitempty,gte=1"`
}

// ============ Акции (Offers) ============

type OfferResponse struct {
	ID                   uint            `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	ExpiryDate           string          `json:"expiry_date"`
	SubscriptionOptionID *uint           `json:"subscription_option_id,omitempty"`
	ServiceRequestID     *uint           `json:"service_request_id,omitempty"`
}

type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
	Total  int             `json:"total"`
}

type CreateOfferRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	ExpiryDate           string          `json:"expiry_date" binding:"required"` // формат 2006-01-02
	SubscriptionOptionID *uint           `json:"subscription_option_id"`
	ServiceRequestID     *uint           `json:"service_request_id"`
}

type UpdateOfferRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ExpiryDate  string           `json:"expiry_date"`
}

// ============ Заявки (Service Requests) ============

type CreateServiceRequestRequest struct {
	ServiceID            uint   `json:"service_id" binding:"required"`
	SubscriptionType     string `json:"subscription_type" binding:"required,oneof=one-time monthly"`
	SubscriptionOptionID *uint  `json:"subscription_option_id"`
	Date                 string `json:"date" binding:"required"` // формат 2006-01-02
	Time                 string `json:"time" binding:"required"` // формат 15:04
	CarBrand             string `json:"car_brand"`
	CarModel             string `json:"car_model"`
	CarColor             string `json:"car_color"`
	CarNumber            string `json:"car_number"`
}

type UpdateServiceRequestRequest struct {
	Date      string `json:"date"` // формат 2006-01-02
	Time      string `json:"time"` // формат 15:04
	CarBrand  string `json:"car_brand"`
	CarModel  string `json:"car_model"`
	CarColor  string `json:"car_color"`
	CarNumber string `json:"car_number"`
}

type ServiceRequestResponse struct {
	ID                 uint            `json:"id"`
	User               string          `json:"user"`
	Service            string          `json:"service"`
	SubscriptionType   string          `json:"subscription_type"`
	SubscriptionOption string          `json:"subscription_option,omitempty"`
	Date               string          `json:"date"`
	Time               string          `json:"time"`
	CarBrand           string          `json:"car_brand,omitempty"`
	CarModel           string          `json:"car_model,omitempty"`
	CarColor           string          `json:"car_color,omitempty"`
	CarNumber          string          `json:"car_number,omitempty"`
	RequestPrice       decimal.Decimal `json:"request_price"`
	PaymentStatus      string          `json:"payment_status"`
	EndDate            string          `json:"end_date,omitempty"`
	Offers             []OfferResponse `json:"offers,omitempty"`
	Payments           interface{}     `json:"payments,omitempty"` // разбивка из billing.Settlement
}

type ServiceRequestListResponse struct {
	Requests []ServiceRequestResponse `json:"service_requests"`
	Total    int                      `json:"total"`
}

// ============ Платежи (Payments) ============

type CreatePaymentRequest struct {
	ServiceRequestID uint            `json:"service_request_id" binding:"required"`
	Amount           decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	ID               uint            `json:"id"`
	ServiceRequestID uint            `json:"service_request_id"`
	Amount           decimal.Decimal `json:"amount"`
	CreatedAt        string          `json:"created_at"`
}
