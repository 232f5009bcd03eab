package handlers

import (
	"log"
	"net/http"

	request "meshguard_api/internal/adapter/http/dto/request"
	response "meshguard_api/internal/adapter/http/dto/response"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles mobile-money payments.
//
// InitiatePayment answers 202: the payment is confirmed later by a background
// job, and clients poll GetPaymentStatus until it leaves "initiated".

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// @Summary      Initiate a mobile-money payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body  request.PaymentRequest  true  "payload"
// @Success      202 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] initiate start quote_id=%s user_id=%s", payload.ResolveQuoteID(), actor.UserID)

	payment, err := h.usecase.InitiatePayment(c.Request.Context(), actor, usecase.InitiatePaymentInput{
		QuoteID: payload.ResolveQuoteID(),
		Amount:  payload.Amount,
		Phone:   payload.Phone,
	})
	if err != nil {
		log.Printf("[payment][handler] initiate failed quote_id=%s err=%v", payload.ResolveQuoteID(), err)
		writeError(c, "payment", err)
		return
	}

	c.JSON(http.StatusAccepted, response.FromPayment(payment))
}

// @Summary      Poll payment status
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Param        payment_id  path  string  true  "payment id"
// @Success      200 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	payment, err := h.usecase.GetPaymentStatus(c.Request.Context(), actor, c.Param("payment_id"))
	if err != nil {
		writeError(c, "payment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// @Summary      List the caller's payments
// @Tags         payments
// @Produce      json
// @Security     Bearer
// @Success      200 {array} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListMyPayments(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	payments, err := h.usecase.ListMyPayments(c.Request.Context(), actor)
	if err != nil {
		writeError(c, "payment", err)
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}
