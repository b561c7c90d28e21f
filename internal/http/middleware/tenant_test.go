package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/freightdesk/internal/http/middleware"
)

var secret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key any, claims middleware.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestTenant(t *testing.T) {
	tenantID := uuid.New()

	valid := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		TenantID:         tenantID.String(),
	}

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "ValidToken",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, secret, valid),
			wantStatus: http.StatusOK,
		},
		{
			name:       "MissingHeader",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "WrongSecret",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), valid),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "WrongAlgorithm",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS512, secret, valid),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, secret, middleware.Claims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
				TenantID:         tenantID.String(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "NoTenantClaim",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, secret, middleware.Claims{}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MalformedTenant",
			header:     "Bearer " + sign(t, jwt.SigningMethodHS256, secret, middleware.Claims{TenantID: "acme"}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = middleware.TenantFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			middleware.Tenant(secret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tenantID, seen)
			} else {
				assertErrorBody(t, rec)
			}
		})
	}
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}
