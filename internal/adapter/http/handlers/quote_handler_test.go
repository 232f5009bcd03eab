package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"meshguard_api/internal/adapter/http/handlers/mocks"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_SubmitQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newRouter(http.MethodPost, "/v1/quotes", &customer, h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), customer, gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidQuoteInput)

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"width":0,"height":1.5,"window_count":1,"mesh_type":"roller","material_type":"polyester"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("count alias and success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newRouter(http.MethodPost, "/v1/quotes", &customer, h.SubmitQuote)

		uc.EXPECT().SubmitQuote(gomock.Any(), customer, usecase.SubmitQuoteInput{
			Width: 1.2, Height: 1.5, WindowCount: 2, MeshType: "roller", MaterialType: "polyester", Location: "Westlands",
		}).Return(entities.Quote{ID: "q-1", TotalPrice: 11520, Status: entities.QuoteStatusPending, CreatedAt: time.Now()}, nil)

		w := doJSON(r, http.MethodPost, "/v1/quotes", `{"width":1.2,"height":1.5,"count":2,"mesh_type":"roller","material_type":"polyester","location":"Westlands"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q-1" || body["total_price"] != float64(11520) || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name string
		err  error
		want int
	}{
		{"not found", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden},
		{"ok", nil, http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			h := NewQuoteHandler(uc)
			r := newRouter(http.MethodGet, "/v1/quotes/:quote_id", &customer, h.GetQuote)

			uc.EXPECT().GetQuote(gomock.Any(), customer, "q-1").Return(entities.Quote{ID: "q-1"}, tc.err)

			w := doJSON(r, http.MethodGet, "/v1/quotes/q-1", "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestQuoteHandler_QuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)
	r := newRouter(http.MethodGet, "/v1/quotes/:quote_id/pdf", &customer, h.QuotePDF)

	uc.EXPECT().RenderQuotePDF(gomock.Any(), customer, "q-1").Return([]byte("%PDF-1.3 fake"), nil)

	w := doJSON(r, http.MethodGet, "/v1/quotes/q-1/pdf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "quote-q-1.pdf") {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}
}

func TestQuoteHandler_ListMyQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)
	r := newRouter(http.MethodGet, "/v1/quotes", &customer, h.ListMyQuotes)

	uc.EXPECT().ListMyQuotes(gomock.Any(), customer).Return([]entities.Quote{{ID: "q-2"}, {ID: "q-1"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/quotes", "")
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if w.Code != http.StatusOK || len(body) != 2 || body[0]["id"] != "q-2" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestQuoteHandler_AdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list all with owners", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newRouter(http.MethodGet, "/v1/admin/quotes", &admin, h.ListAllQuotes)

		uc.EXPECT().ListAllQuotes(gomock.Any(), admin).Return([]entities.QuoteWithOwner{
			{Quote: entities.Quote{ID: "q-1"}, OwnerName: "Amina", OwnerEmail: "amina@example.com"},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/admin/quotes", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 1 || body[0]["owner_email"] != "amina@example.com" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("set status invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newRouter(http.MethodPatch, "/v1/admin/quotes/:quote_id/status", &admin, h.SetQuoteStatus)

		uc.EXPECT().SetQuoteStatus(gomock.Any(), admin, "q-1", entities.QuoteStatus("shipped")).Return(entities.QuoteWithOwner{}, usecase.ErrInvalidQuoteStatus)

		w := doJSON(r, http.MethodPatch, "/v1/admin/quotes/q-1/status", `{"status":"Shipped"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set status ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)
		r := newRouter(http.MethodPatch, "/v1/admin/quotes/:quote_id/status", &admin, h.SetQuoteStatus)

		uc.EXPECT().SetQuoteStatus(gomock.Any(), admin, "q-1", entities.QuoteStatusConfirmed).
			Return(entities.QuoteWithOwner{Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusConfirmed}, OwnerName: "Amina"}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/admin/quotes/q-1/status", `{"status":"confirmed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
