package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН АКЦИИ ============

const dateLayout = "2006-01-02"

// GetOffers список акций
// @Summary Получение списка акций
// @Description Возвращает все акции, включая истёкшие
// @Tags Offers
// @Produce json
// @Success 200 {object} dto.OfferListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/offers [get]
func (h *APIHandler) GetOffers(c *gin.Context) {
	offers, err := h.Repository.GetOffers()
	if err != nil {
		logrus.Error("Error getting offers: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения акций")
		return
	}

	c.JSON(http.StatusOK, dto.OfferListResponse{
		Offers: offersToDTO(offers),
		Total:  len(offers),
	})
}

// GetOffer одна акция
// @Summary Получение акции
// @Description Возвращает акцию по ID
// @Tags Offers
// @Produce json
// @Param id path int true "ID акции"
// @Success 200 {object} dto.OfferResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [get]
func (h *APIHandler) GetOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID акции")
		return
	}

	offer, err := h.Repository.GetOfferByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, offerToDTO(*offer))
}

// CreateOffer создание акции
// @Summary Создание акции
// @Description Добавляет акцию со скидкой и сроком действия (только администратор)
// @Tags Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferRequest true "Данные акции"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/offers [post]
func (h *APIHandler) CreateOffer(c *gin.Context) {
	var request dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Размер скидки не может быть отрицательным")
		return
	}

	expiryDate, err := time.Parse(dateLayout, request.ExpiryDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный формат даты окончания, ожидается YYYY-MM-DD")
		return
	}

	offer := ds.Offer{
		Name:                 request.Name,
		Description:          request.Description,
		Price:                request.Price,
		ExpiryDate:           expiryDate,
		SubscriptionOptionID: request.SubscriptionOptionID,
		ServiceRequestID:     request.ServiceRequestID,
	}

	err = h.Repository.CreateOffer(&offer)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, "акция успешно создана", offerToDTO(offer))
}

// UpdateOffer изменение акции
// @Summary Изменение акции
// @Description Обновляет поля акции (только администратор)
// @Tags Offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID акции"
// @Param request body dto.UpdateOfferRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [put]
func (h *APIHandler) UpdateOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID акции")
		return
	}

	var request dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if request.Price != nil && request.Price.IsNegative() {
		h.errorResponse(c, http.StatusBadRequest, "Размер скидки не может быть отрицательным")
		return
	}

	var expiryDate *time.Time
	if request.ExpiryDate != "" {
		parsed, err := time.Parse(dateLayout, request.ExpiryDate)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверный формат даты окончания, ожидается YYYY-MM-DD")
			return
		}
		expiryDate = &parsed
	}

	err = h.Repository.UpdateOffer(uint(id), request.Name, request.Description, request.Price, expiryDate)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "акция успешно обновлена", nil)
}

// DeleteOffer удаление акции
// @Summary Удаление акции
// @Description Удаляет акцию (только администратор)
// @Tags Offers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID акции"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/offers/{id} [delete]
func (h *APIHandler) DeleteOffer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID акции")
		return
	}

	err = h.Repository.DeleteOffer(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, "акция успешно удалена", nil)
}
