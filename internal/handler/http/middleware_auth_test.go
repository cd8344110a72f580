package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/service"
	"github.com/MKhiriev/go-student-desk/internal/utils"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerAdminFn    func(ctx context.Context, admin models.AdminCreate) (models.Admin, error)
	loginAdminFn       func(ctx context.Context, username, password string) (models.Admin, error)
	loginStudentFn     func(ctx context.Context, email, password string) (models.Student, error)
	createTokenFn      func(ctx context.Context, subject string, role models.Role) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
	resolvePrincipalFn func(ctx context.Context, tokenString string, requiredRole models.Role) (models.Principal, error)
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, admin models.AdminCreate) (models.Admin, error) {
	return m.registerAdminFn(ctx, admin)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	return m.loginAdminFn(ctx, username, password)
}

func (m *mockAuthService) LoginStudent(ctx context.Context, email, password string) (models.Student, error) {
	return m.loginStudentFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, subject string, role models.Role) (models.Token, error) {
	return m.createTokenFn(ctx, subject, role)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolvePrincipal(ctx context.Context, tokenString string, requiredRole models.Role) (models.Principal, error) {
	return m.resolvePrincipalFn(ctx, tokenString, requiredRole)
}

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, role models.Role, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(role)(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	adminPrincipal := models.Principal{ID: 42, Subject: "root", Role: models.RoleAdmin}

	tests := []struct {
		name               string
		authHeader         string
		resolvePrincipalFn func(ctx context.Context, s string, role models.Role) (models.Principal, error)
		expectedStatus     int
		nextCalled         bool
		wantPrincipal      models.Principal
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid token → next called, principal in context",
			authHeader: "Bearer valid-token",
			resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
				return adminPrincipal, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantPrincipal:  adminPrincipal,
		},
		{
			name:       "rejected token → 401",
			authHeader: "Bearer bad-token",
			resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
				return models.Principal{}, service.ErrUnauthorized
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.resolvePrincipalFn != nil {
				authSvc = &mockAuthService{resolvePrincipalFn: tt.resolvePrincipalFn}
			} else {
				// resolution must not happen when the header is empty or unparsable
				authSvc = &mockAuthService{resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
					t.Fatal("ResolvePrincipal should not be called")
					return models.Principal{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedPrincipal any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedPrincipal = r.Context().Value(utils.PrincipalCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, models.RoleAdmin, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				assert.Equal(t, tt.wantPrincipal, capturedPrincipal)
			}
		})
	}
}

func TestAuth_RequiredRolePassedToResolver(t *testing.T) {
	var gotRole models.Role
	h := newHandlerWithAuthService(&mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, role models.Role) (models.Principal, error) {
			gotRole = role
			return models.Principal{ID: 7, Role: role}, nil
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, models.RoleStudent, "Bearer token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.RoleStudent, gotRole)
}

// ---- Error response bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
			return models.Principal{}, service.ErrUnauthorized
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, models.RoleAdmin, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("rejected token body carries no details", func(t *testing.T) {
		rr := executeAuth(h, models.RoleAdmin, "Bearer rejected", next)
		assert.Contains(t, rr.Body.String(), http.StatusText(http.StatusUnauthorized))
	})
}

// ---- The original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
			return models.Principal{ID: 1}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(models.RoleAdmin)(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, _ models.Role) (models.Principal, error) {
			return models.Principal{ID: 7, Role: models.RoleStudent}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(models.RoleStudent)(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
