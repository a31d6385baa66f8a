package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/adapter/http/dto"
	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

type goalServiceStub struct {
	createFn     func(ctx context.Context, input usecase.CreateGoalInput) (*domain.SavingsGoal, error)
	contributeFn func(ctx context.Context, input usecase.ContributeInput) (*domain.Transaction, error)
	getFn        func(ctx context.Context, id string) (*domain.SavingsGoal, error)
	listFn       func(ctx context.Context) ([]*domain.SavingsGoal, error)
	progressFn   func(ctx context.Context, id string) (decimal.Decimal, error)
}

func (s *goalServiceStub) CreateGoal(ctx context.Context, input usecase.CreateGoalInput) (*domain.SavingsGoal, error) {
	return s.createFn(ctx, input)
}

func (s *goalServiceStub) Contribute(ctx context.Context, input usecase.ContributeInput) (*domain.Transaction, error) {
	return s.contributeFn(ctx, input)
}

func (s *goalServiceStub) GetGoal(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	return s.getFn(ctx, id)
}

func (s *goalServiceStub) ListGoals(ctx context.Context) ([]*domain.SavingsGoal, error) {
	return s.listFn(ctx)
}

func (s *goalServiceStub) Progress(ctx context.Context, id string) (decimal.Decimal, error) {
	return s.progressFn(ctx, id)
}

func TestGoalHandler_Contribute_Success(t *testing.T) {
	var captured usecase.ContributeInput
	handler := NewGoalHandler(&goalServiceStub{
		contributeFn: func(ctx context.Context, input usecase.ContributeInput) (*domain.Transaction, error) {
			captured = input
			return &domain.Transaction{
				ID:        "tx-1",
				AccountID: input.AccountID,
				Amount:    input.Amount.Neg(),
				Category:  "savings",
			}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.ContributeRequest{
		AccountID: "main",
		Amount:    decimal.NewFromInt(150),
	})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/goals/vacation/contributions", bytes.NewReader(body)), "id", "vacation")
	rec := httptest.NewRecorder()

	handler.Contribute(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.GoalID != "vacation" || captured.AccountID != "main" || !captured.Amount.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Amount.Equal(decimal.NewFromInt(-150)) {
		t.Fatalf("expected expense of 150, got %s", resp.Amount)
	}
}

func TestGoalHandler_Contribute_InsufficientFunds(t *testing.T) {
	handler := NewGoalHandler(&goalServiceStub{
		contributeFn: func(ctx context.Context, input usecase.ContributeInput) (*domain.Transaction, error) {
			return nil, domain.ErrInsufficientFunds
		},
	}, nil)

	body, _ := json.Marshal(dto.ContributeRequest{
		AccountID: "main",
		Amount:    decimal.NewFromInt(80),
	})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/goals/vacation/contributions", bytes.NewReader(body)), "id", "vacation")
	rec := httptest.NewRecorder()

	handler.Contribute(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestGoalHandler_Create_InvalidTarget(t *testing.T) {
	handler := NewGoalHandler(&goalServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateGoalInput) (*domain.SavingsGoal, error) {
			return nil, domain.ErrInvalidTarget
		},
	}, nil)

	body, _ := json.Marshal(dto.CreateGoalRequest{Name: "vacation", Target: decimal.Zero})
	req := httptest.NewRequest(http.MethodPost, "/goals", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGoalHandler_Progress(t *testing.T) {
	handler := NewGoalHandler(&goalServiceStub{
		progressFn: func(ctx context.Context, id string) (decimal.Decimal, error) {
			if id != "vacation" {
				return decimal.Zero, domain.ErrGoalNotFound
			}
			return decimal.NewFromFloat(0.25), nil
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/goals/vacation/progress", nil), "id", "vacation")
	rec := httptest.NewRecorder()

	handler.Progress(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]decimal.Decimal
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp["progress"].Equal(decimal.NewFromFloat(0.25)) {
		t.Fatalf("expected progress 0.25, got %s", resp["progress"])
	}
}
