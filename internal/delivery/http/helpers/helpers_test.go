package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestWriteJSONSuccess_envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusCreated, map[string]string{"id": "ev-1"})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, `"id":"ev-1"`)
	assert.Contains(t, body, `"error":null`, "error key present and null on success")
}

func TestWriteJSONError_envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusConflict, ErrCodeConflict, "event overlaps an existing event")

	require.Equal(t, http.StatusConflict, rr.Code)
	var envelope APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Data)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, ErrCodeConflict, envelope.Error.Code)
	assert.Equal(t, "event overlaps an existing event", envelope.Error.Message)
}

type testRequestDTO struct {
	Description string `json:"description"`
	Rules       string `json:"rules"`
}

func (d testRequestDTO) Validate() []string {
	var errs []string
	if d.Description == "" {
		errs = append(errs, "description is required")
	}
	if d.Rules == "" {
		errs = append(errs, "rules is required")
	}
	return errs
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantSubstr string
	}{
		{"valid", `{"description":"chess","rules":"swiss"}`, true, ""},
		{"malformed json", `{"description":`, false, "invalid request body"},
		{"unknown field rejected", `{"description":"chess","rules":"swiss","bogus":1}`, false, "unknown field"},
		{"messages joined", `{}`, false, "description is required; rules is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://test/competition-types", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dto testRequestDTO
			ok := DecodeAndValidate(rr, req, &dto)

			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				require.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Contains(t, rr.Body.String(), tt.wantSubstr)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  domain.PaginationParams
	}{
		{"defaults", "", domain.PaginationParams{Page: 1, PageSize: 10}},
		{"explicit", "page=3&page_size=25", domain.PaginationParams{Page: 3, PageSize: 25}},
		{"clamped to max", "page_size=500", domain.PaginationParams{Page: 1, PageSize: 100}},
		{"garbage falls back", "page=abc&page_size=-2", domain.PaginationParams{Page: 1, PageSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://test/events?"+tt.query, nil)
			require.Equal(t, tt.want, ParsePagination(req))
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(2, 10, 25)
	require.Equal(t, PaginationMeta{Page: 2, PageSize: 10, Total: 25, TotalPages: 3}, meta)

	require.Zero(t, NewPaginationMeta(1, 0, 25).TotalPages)
}
