package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"meshguard_api/internal/adapter/http/handlers/mocks"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/domain/phone"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_InitiatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))
		r := newRouter(http.MethodPost, "/v1/payments", &customer, h.InitiatePayment)

		w := doJSON(r, http.MethodPost, "/v1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	for _, tc := range []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"invalid phone", phone.ErrInvalidPhone, http.StatusBadRequest, "INVALID_PHONE"},
		{"invalid amount", usecase.ErrInvalidPaymentAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
		{"quote not found", usecase.ErrQuoteNotFound, http.StatusNotFound, "QUOTE_NOT_FOUND"},
		{"not owner", usecase.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			h := NewPaymentHandler(uc)
			r := newRouter(http.MethodPost, "/v1/payments", &customer, h.InitiatePayment)

			uc.EXPECT().InitiatePayment(gomock.Any(), customer, gomock.Any()).Return(entities.Payment{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/payments", `{"quote_id":"q-1","amount":5760,"phone":"0712345678"}`)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["code"] != tc.wantBody {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(http.MethodPost, "/v1/payments", &customer, h.InitiatePayment)

		uc.EXPECT().InitiatePayment(gomock.Any(), customer, usecase.InitiatePaymentInput{QuoteID: "q-1", Amount: 5760, Phone: "0712345678"}).
			Return(entities.Payment{ID: "p-1", QuoteID: "q-1", Amount: 5760, Phone: "254712345678", Status: entities.PaymentStatusInitiated}, nil)

		w := doJSON(r, http.MethodPost, "/v1/payments", `{"quote_id":" q-1 ","amount":5760,"phone":"0712345678"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "p-1" || body["status"] != "initiated" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(http.MethodGet, "/v1/payments/:payment_id", &customer, h.GetPaymentStatus)

		uc.EXPECT().GetPaymentStatus(gomock.Any(), customer, "p-404").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := doJSON(r, http.MethodGet, "/v1/payments/p-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)
		r := newRouter(http.MethodGet, "/v1/payments/:payment_id", &customer, h.GetPaymentStatus)

		uc.EXPECT().GetPaymentStatus(gomock.Any(), customer, "p-1").
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusCompleted, ConfirmationCode: "QWERTY1234", Amount: 5760}, nil)

		w := doJSON(r, http.MethodGet, "/v1/payments/p-1", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["confirmation_code"] != "QWERTY1234" || body["amount"] != float64(5760) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestPaymentHandler_ListMyPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)
	r := newRouter(http.MethodGet, "/v1/payments", &customer, h.ListMyPayments)

	uc.EXPECT().ListMyPayments(gomock.Any(), customer).Return([]entities.Payment{{ID: "p-1"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/payments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
