package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	menusvc "github.com/brasadourada/brasa-backend/internal/menu"
	pkgerrors "github.com/brasadourada/brasa-backend/pkg/errors"
)

func TestMenuListPassesCategoryFilter(t *testing.T) {
	dishID := uuid.New()
	svc := stubMenuService{
		listFn: func(ctx context.Context, category string) ([]menusvc.DishDTO, error) {
			if category != "starter" {
				t.Fatalf("unexpected category %q", category)
			}
			return []menusvc.DishDTO{{ID: dishID, Name: "Carpaccio de Wagyu", Category: "starter", Price: "68.90"}}, nil
		},
	}

	handler := MenuList(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu?category=starter", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data []menusvc.DishDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != dishID {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestMenuListUnknownCategory(t *testing.T) {
	svc := stubMenuService{
		listFn: func(ctx context.Context, category string) ([]menusvc.DishDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown menu category")
		},
	}

	handler := MenuList(svc, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu?category=snacks", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
