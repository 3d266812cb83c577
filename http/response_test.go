package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/foodle"
	foodlehttp "github.com/sagarc03/foodle/http"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unavailable", fmt.Errorf("ping: %w", foodlehttp.ErrUnavailable), http.StatusServiceUnavailable, "unavailable"},
		{"invalid input", fmt.Errorf("bad key: %w", foodle.ErrInvalidInput), http.StatusBadRequest, "invalid_input"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			foodlehttp.HandleError(rec, nil, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error":"`+tt.wantCode+`"`)
			assert.NotContains(t, rec.Body.String(), tt.err.Error())
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	foodlehttp.WriteError(rec, nil, http.StatusNotFound, "not_found", "Not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"not_found","message":"Not found"}`, rec.Body.String())
}

func TestWriteError_IncludesRequestID(t *testing.T) {
	const id = "0d3c2f5e-8a61-4a63-9e1e-3f4f5a6b7c8d"

	handler := foodlehttp.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foodlehttp.WriteError(w, r, http.StatusTeapot, "teapot", "Short and stout")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(foodlehttp.RequestIDHeader, id)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.JSONEq(t, `{"error":"teapot","message":"Short and stout","request_id":"`+id+`"}`, rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := foodlehttp.WriteJSON(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
