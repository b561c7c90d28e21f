package load_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httpload "github.com/MrJamesThe3rd/freightdesk/internal/http/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/http/middleware"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

func setup(t *testing.T, tenantID uuid.UUID) (*load.MockRepository, http.Handler) {
	ctrl := gomock.NewController(t)
	repo := load.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithTenant(req.Context(), tenantID)))
		})
	})
	httpload.NewHandler(load.NewService(repo)).Routes(r)

	return repo, r
}

func TestHandler_Get(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()

	type testCase struct {
		name       string
		path       string
		setupMock  func(repo *load.MockRepository)
		wantStatus int
	}

	tests := []testCase{
		{
			name: "Found",
			path: "/" + loadID.String(),
			setupMock: func(repo *load.MockRepository) {
				repo.EXPECT().GetLoad(gomock.Any(), tenantID, loadID).Return(&load.Load{
					ID:              loadID,
					LoadNumber:      "L-1001",
					Rate:            decimal.NewNullDecimal(decimal.RequireFromString("1850.50")),
					Customer:        &load.Customer{Name: "Acme Foods", Email: "ops@acme.test"},
					Status:          load.StatusDelivered,
					FinancialStatus: load.FinancialStatusAudited,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "NotFound",
			path: "/" + loadID.String(),
			setupMock: func(repo *load.MockRepository) {
				repo.EXPECT().GetLoad(gomock.Any(), tenantID, loadID).Return(nil, load.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "StoreError",
			path: "/" + loadID.String(),
			setupMock: func(repo *load.MockRepository) {
				repo.EXPECT().GetLoad(gomock.Any(), tenantID, loadID).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "InvalidID",
			path:       "/not-a-uuid",
			setupMock:  func(*load.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, h := setup(t, tenantID)
			tt.setupMock(repo)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "L-1001", body["load_number"])
				assert.Equal(t, "1850.5", body["rate"])
				assert.Equal(t, "audited", body["financial_status"])
			}
		})
	}
}

func TestHandler_List(t *testing.T) {
	tenantID := uuid.New()

	t.Run("filters by financial status", func(t *testing.T) {
		repo, h := setup(t, tenantID)

		repo.EXPECT().ListLoads(gomock.Any(), tenantID, load.ListFilter{
			FinancialStatus: new(load.FinancialStatusAudited),
		}).Return([]*load.Load{{LoadNumber: "L-1"}}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?financial_status=audited", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
	})

	t.Run("awaiting invoice", func(t *testing.T) {
		repo, h := setup(t, tenantID)

		repo.EXPECT().ListLoads(gomock.Any(), tenantID, load.ListFilter{Status: new(load.StatusDelivered)}).
			DoAndReturn(func(context.Context, uuid.UUID, load.ListFilter) ([]*load.Load, error) {
				return []*load.Load{
					{LoadNumber: "L-1", FinancialStatus: load.FinancialStatusAudited},
					{LoadNumber: "L-2", FinancialStatus: load.FinancialStatusInvoiced},
				}, nil
			})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?awaiting_invoice=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "L-1", body[0]["load_number"])
	})
}
