package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"refgate.backend/internal/domain/entities"
	domainerrors "refgate.backend/internal/domain/errors"
	"refgate.backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("development")
	m.Run()
}

type activationServiceStub struct {
	issueFn    func(ctx context.Context) (*entities.Nonce, error)
	activateFn func(ctx context.Context, input *entities.ActivationInput) (string, error)
}

func (s activationServiceStub) IssueNonce(ctx context.Context) (*entities.Nonce, error) {
	return s.issueFn(ctx)
}

func (s activationServiceStub) Activate(ctx context.Context, input *entities.ActivationInput) (string, error) {
	return s.activateFn(ctx, input)
}

func TestActivationHandler_RequestNonce(t *testing.T) {
	r := gin.New()
	now := time.Now()
	h := &ActivationHandler{activationUsecase: activationServiceStub{
		issueFn: func(context.Context) (*entities.Nonce, error) {
			return &entities.Nonce{Value: "nonce-1", IssuedAt: now, ExpiresAt: now.Add(entities.NonceTTL)}, nil
		},
	}}
	r.POST("/auth/nonce", h.RequestNonce)

	req := httptest.NewRequest(http.MethodPost, "/auth/nonce", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["value"] != "nonce-1" {
		t.Fatalf("unexpected nonce value: %v", body["value"])
	}
}

func TestActivationHandler_Activate(t *testing.T) {
	validBody := `{"wallet":"0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B","signature":"0xsig","nonce":"n1","timestamp":1700000000}`

	t.Run("bad request", func(t *testing.T) {
		r := gin.New()
		h := &ActivationHandler{activationUsecase: activationServiceStub{
			activateFn: func(context.Context, *entities.ActivationInput) (string, error) {
				t.Fatal("should not be called")
				return "", nil
			},
		}}
		r.POST("/auth/activate", h.Activate)

		req := httptest.NewRequest(http.MethodPost, "/auth/activate", bytes.NewBufferString(`{"wallet":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("nonce rejected", func(t *testing.T) {
		r := gin.New()
		h := &ActivationHandler{activationUsecase: activationServiceStub{
			activateFn: func(context.Context, *entities.ActivationInput) (string, error) {
				return "", domainerrors.ErrNonceInvalid
			},
		}}
		r.POST("/auth/activate", h.Activate)

		req := httptest.NewRequest(http.MethodPost, "/auth/activate", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "ERR_NONCE_INVALID" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		h := &ActivationHandler{activationUsecase: activationServiceStub{
			activateFn: func(_ context.Context, input *entities.ActivationInput) (string, error) {
				if input.Nonce != "n1" {
					t.Fatalf("unexpected nonce: %s", input.Nonce)
				}
				return "0xab5801a7d398351b8be11c439e05c5b3259aec9b", nil
			},
		}}
		r.POST("/auth/activate", h.Activate)

		req := httptest.NewRequest(http.MethodPost, "/auth/activate", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["activated"] != true {
			t.Fatalf("expected activated=true, got %v", body["activated"])
		}
		if body["wallet"] != "0xab5801a7d398351b8be11c439e05c5b3259aec9b" {
			t.Fatalf("unexpected wallet: %v", body["wallet"])
		}
	})
}
