package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"mf_backend/internal/feature/funds/domain/entity"
	"mf_backend/internal/shared/apperr"
)

type mockFundsUsecase struct {
	SearchFunc    func(query string) ([]entity.SchemeSummary, error)
	GetSchemeFunc func(code string) (*entity.Scheme, error)
}

func (m *mockFundsUsecase) Search(_ context.Context, query string) ([]entity.SchemeSummary, error) {
	return m.SearchFunc(query)
}

func (m *mockFundsUsecase) GetScheme(_ context.Context, code string) (*entity.Scheme, error) {
	return m.GetSchemeFunc(code)
}

func newFundsRouter(uc FundsUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFundsHandler(uc)
	r := gin.New()
	r.GET("/api/funds/search", h.Search)
	r.GET("/api/funds/scheme/:schemeCode", h.GetScheme)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestFundsHandler_Search(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		result         []entity.SchemeSummary
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			path:           "/api/funds/search?q=hdfc",
			result:         []entity.SchemeSummary{{SchemeCode: "118834", SchemeName: "HDFC Top 100 Fund"}},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"schemeCode":"118834","schemeName":"HDFC Top 100 Fund"}]`,
		},
		{
			name:           "no hits",
			path:           "/api/funds/search?q=zzz",
			result:         []entity.SchemeSummary{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "blank query",
			path:           "/api/funds/search",
			err:            apperr.Validation("search query is required"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"search query is required","code":"validation"}`,
		},
		{
			name:           "provider down",
			path:           "/api/funds/search?q=hdfc",
			err:            apperr.Upstream("fund data provider unavailable", errors.New("dial tcp")),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"fund data provider unavailable","code":"upstream"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFundsRouter(&mockFundsUsecase{SearchFunc: func(string) ([]entity.SchemeSummary, error) {
				return tt.result, tt.err
			}})

			w := get(r, tt.path)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestFundsHandler_GetScheme(t *testing.T) {
	t.Run("success with latest nav", func(t *testing.T) {
		r := newFundsRouter(&mockFundsUsecase{GetSchemeFunc: func(code string) (*entity.Scheme, error) {
			assert.Equal(t, "118834", code)
			return &entity.Scheme{
				Meta: entity.SchemeMeta{SchemeCode: "118834", SchemeName: "HDFC Top 100 Fund", FundHouse: "HDFC Mutual Fund"},
				NAV: []entity.NAVPoint{
					{Date: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC), NAV: decimal.RequireFromString("1105.321")},
					{Date: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), NAV: decimal.RequireFromString("1100.1")},
				},
			}, nil
		}})

		w := get(r, "/api/funds/scheme/118834")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"meta": {"scheme_code":"118834","scheme_name":"HDFC Top 100 Fund","fund_house":"HDFC Mutual Fund","scheme_type":"","scheme_category":""},
			"data": [{"date":"14-06-2024","nav":"1105.321"},{"date":"13-06-2024","nav":"1100.1"}],
			"latest_nav": "1105.321",
			"latest_nav_date": "14-06-2024"
		}`, w.Body.String())
	})

	t.Run("empty history", func(t *testing.T) {
		r := newFundsRouter(&mockFundsUsecase{GetSchemeFunc: func(string) (*entity.Scheme, error) {
			return &entity.Scheme{Meta: entity.SchemeMeta{SchemeCode: "1"}}, nil
		}})

		w := get(r, "/api/funds/scheme/1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"latest_nav":null`)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		r := newFundsRouter(&mockFundsUsecase{GetSchemeFunc: func(string) (*entity.Scheme, error) {
			return nil, apperr.NotFound("scheme not found", nil)
		}})

		w := get(r, "/api/funds/scheme/0")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"scheme not found","code":"not_found"}`, w.Body.String())
	})
}
