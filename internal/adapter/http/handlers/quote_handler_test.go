package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/railflow/salesops/internal/adapter/http/handlers/mocks"
	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		orch.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(usecase.QuoteResult{}, usecase.ErrInvalidQuoteLicenseYears)

		req := httptest.NewRequest(http.MethodPost, "/api/quote",
			bytes.NewBufferString(`{"contact_id":11,"account_id":42,"num_users":20,"license_type":"standard","license_years":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %q", body["code"])
		}
	})

	t.Run("pricing error maps to 400 with its kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		orch.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(usecase.QuoteResult{}, &entities.PricingError{
				Kind:    entities.PricingErrorInvalidLicenseType,
				Message: "Incorrect value for license_type",
			})

		req := httptest.NewRequest(http.MethodPost, "/api/quote",
			bytes.NewBufferString(`{"contact_id":11,"account_id":42,"num_users":20,"license_type":"Gold","license_years":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["code"] != string(entities.PricingErrorInvalidLicenseType) {
			t.Fatalf("expected pricing error kind as code, got %q", body["code"])
		}
	})

	t.Run("contact not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		orch.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(usecase.QuoteResult{}, usecase.ErrContactNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/quote",
			bytes.NewBufferString(`{"contact_id":999,"account_id":42,"num_users":20,"license_type":"standard","license_years":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("collaborator failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		orch.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			Return(usecase.QuoteResult{}, errors.New("hiveage 500"))

		req := httptest.NewRequest(http.MethodPost, "/api/quote",
			bytes.NewBufferString(`{"contact_id":11,"account_id":42,"num_users":20,"license_type":"standard","license_years":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with the hosted link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orch := mocks.NewMockIQuoteOrchestrator(ctrl)
		h := NewQuoteHandler(orch)

		r := gin.New()
		r.POST("/api/quote", h.CreateQuote)

		orch.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd usecase.PipelineCommand) (usecase.QuoteResult, error) {
				if cmd.ContactID != 11 || cmd.AccountID != 42 {
					t.Fatalf("command not bound from payload: %+v", cmd)
				}
				if cmd.NumUsers == nil || *cmd.NumUsers != 20 {
					t.Fatalf("num_users not bound: %+v", cmd.NumUsers)
				}
				return usecase.QuoteResult{
					Link:   "https://railflow.hiveage.com/estm/abc123",
					Ref:    entities.StatementRef{StatementNo: "EST-12", HashKey: "abc123", BilledTotal: decimal.NewFromInt(5610)},
					Record: entities.BillingRecord{ID: "rec-1"},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/quote",
			bytes.NewBufferString(`{"contact_id":11,"account_id":42,"num_users":20,"license_type":"enterprise","license_years":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["quote_link"] != "https://railflow.hiveage.com/estm/abc123" {
			t.Fatalf("unexpected quote_link: %v", body["quote_link"])
		}
		if body["statement_no"] != "EST-12" {
			t.Fatalf("unexpected statement_no: %v", body["statement_no"])
		}
	})
}
