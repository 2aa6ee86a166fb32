package handler

import (
	"backend/internal/app/billing"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ПЛАТЕЖИ ============

// canPayFor проверяет, что по заявке ещё можно платить
func canPayFor(request *ds.ServiceRequest, now time.Time) error {
	endDate, err := billing.EndDate(request.SubscriptionType, request.Date, request.SubscriptionOption)
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if request.SubscriptionType == ds.SubscriptionOneTime && endDate.Before(today) {
		return &billing.InvalidRequestError{Message: "нельзя оплатить разовую заявку с прошедшей датой"}
	}
	if request.SubscriptionType == ds.SubscriptionMonthly && endDate.Before(today) {
		return &billing.InvalidRequestError{Message: "срок действия подписки истёк"}
	}
	return nil
}

// CreatePayment запись платежа по заявке
// @Summary Создание платежа
// @Description Фиксирует платёж по заявке и возвращает обновлённую разбивку
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Данные платежа"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/payments [post]
func (h *APIHandler) CreatePayment(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var request dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if !request.Amount.IsPositive() {
		h.errorResponse(c, http.StatusBadRequest, "Сумма платежа должна быть больше нуля")
		return
	}

	serviceRequest, err := h.Repository.GetServiceRequestByID(request.ServiceRequestID)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	if serviceRequest.UserID != userID && !userRole.IsAdmin() {
		h.errorResponse(c, http.StatusForbidden, "Заявка принадлежит другому пользователю")
		return
	}

	if err := canPayFor(serviceRequest, time.Now()); err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	payment, err := h.Repository.CreatePayment(serviceRequest.UserID, serviceRequest.ID, request.Amount)
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	settlement, err := h.settlementFor(*serviceRequest)
	if err != nil {
		logrus.Error("Error settling request payments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчёта платежей")
		return
	}

	h.successResponse(c, http.StatusCreated, "платёж успешно записан", gin.H{
		"payment": dto.PaymentResponse{
			ID:               payment.ID,
			ServiceRequestID: payment.ServiceRequestID,
			Amount:           payment.Amount,
			CreatedAt:        payment.CreatedAt.Format(time.RFC3339),
		},
		"payment_status": settlement.Status,
		"needs":          settlement.Outstanding,
		"payments":       settlement.Breakdown,
	})
}

// GetRequestPayments разбивка платежей по заявке
// @Summary Получение платежей по заявке
// @Description Возвращает платежи заявки с накопительным остатком и статусом
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID заявки"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/payments/request/{id} [get]
func (h *APIHandler) GetRequestPayments(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный ID заявки")
		return
	}

	serviceRequest, err := h.Repository.GetServiceRequestByID(uint(id))
	if err != nil {
		h.domainErrorResponse(c, err)
		return
	}

	if serviceRequest.UserID != userID && !userRole.IsAdmin() {
		h.errorResponse(c, http.StatusForbidden, "Заявка принадлежит другому пользователю")
		return
	}

	settlement, err := h.settlementFor(*serviceRequest)
	if err != nil {
		logrus.Error("Error settling request payments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка расчёта платежей")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"request_id":     serviceRequest.ID,
		"request_price":  serviceRequest.RequestPrice,
		"payment_status": settlement.Status,
		"needs":          settlement.Outstanding,
		"payments":       settlement.Breakdown,
	})
}
