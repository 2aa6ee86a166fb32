package handler

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/role"
	"backend/internal/app/storage"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Client, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// domainErrorResponse переводит доменные ошибки биллинга в HTTP-статусы
func (h *APIHandler) domainErrorResponse(c *gin.Context, err error) {
	var validationErr *billing.ValidationError
	if errors.As(err, &validationErr) {
		logrus.Warn("validation failed: ", validationErr.Message)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:      "fail",
			Message:     validationErr.Message,
			Suggestions: optionsToDTO(validationErr.Suggestions),
		})
		return
	}

	var invalidErr *billing.InvalidRequestError
	if errors.As(err, &invalidErr) {
		logrus.Warn("invalid request: ", invalidErr.Message)
		h.errorResponse(c, http.StatusBadRequest, invalidErr.Message)
		return
	}

	var notFoundErr *billing.NotFoundError
	if errors.As(err, &notFoundErr) {
		h.errorResponse(c, http.StatusNotFound, notFoundErr.Error())
		return
	}

	logrus.Error(err)
	h.errorResponse(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

// ============ Конвертеры моделей в DTO ============

func offerToDTO(offer ds.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:                   offer.ID,
		Name:                 offer.Name,
		Description:          offer.Description,
		Price:                offer.Price,
		ExpiryDate:           offer.ExpiryDate.Format("2006-01-02"),
		SubscriptionOptionID: offer.SubscriptionOptionID,
		ServiceRequestID:     offer.ServiceRequestID,
	}
}

func offersToDTO(offers []ds.Offer) []dto.OfferResponse {
	result := make([]dto.OfferResponse, len(offers))
	for i, offer := range offers {
		result[i] = offerToDTO(offer)
	}
	return result
}

func optionToDTO(option ds.SubscriptionOption) dto.SubscriptionOptionResponse {
	return dto.SubscriptionOptionResponse{
		ID:          option.ID,
		Name:        option.Name,
		Slug:        option.Slug,
		Description: option.Description,
		Count:       option.Count,
		Price:       option.Price,
		Duration:    option.Duration,
		ServiceID:   option.ServiceID,
	}
}

func optionsToDTO(options []ds.SubscriptionOption) []dto.SubscriptionOptionResponse {
	result := make([]dto.SubscriptionOptionResponse, len(options))
	for i, option := range options {
		result[i] = optionToDTO(option)
	}
	return result
}
