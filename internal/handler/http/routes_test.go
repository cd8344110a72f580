package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/service"
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/stretchr/testify/assert"
)

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	authSvc := &mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, requiredRole models.Role) (models.Principal, error) {
			return models.Principal{ID: 1, Role: requiredRole}, nil
		},
	}
	registrySvc := &mockRegistryService{
		listStudentsFn: func(_ context.Context) ([]models.Student, error) {
			return []models.Student{}, nil
		},
		listCoursesFn: func(_ context.Context) ([]models.Course, error) {
			return []models.Course{}, nil
		},
		listCoursesForStudentFn: func(_ context.Context, _ int64) ([]models.Course, error) {
			return []models.Course{}, nil
		},
		getStudentFn: func(_ context.Context, _ int64) (models.Student, error) {
			return models.Student{StudentID: 1}, nil
		},
		deleteStudentFn: func(_ context.Context, _ int64) error {
			return nil
		},
	}
	recordsSvc := &mockRecordsService{
		listGradesForStudentFn: func(_ context.Context, _ int64) ([]models.Grade, error) {
			return []models.Grade{}, nil
		},
		listAttendanceForStudentFn: func(_ context.Context, _ int64) ([]models.Attendance, error) {
			return []models.Attendance{}, nil
		},
	}

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:     authSvc,
			RegistryService: registrySvc,
			RecordsService:  recordsSvc,
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/admin/login"},
		{http.MethodPost, "/admin/create"},
		{http.MethodPost, "/student/login"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"public route should not require auth: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/students"},
		{http.MethodGet, "/students"},
		{http.MethodGet, "/students/1"},
		{http.MethodPut, "/students/1"},
		{http.MethodDelete, "/students/1"},
		{http.MethodPost, "/courses"},
		{http.MethodGet, "/courses"},
		{http.MethodPost, "/enroll"},
		{http.MethodGet, "/students/1/courses"},
		{http.MethodPost, "/grades"},
		{http.MethodGet, "/students/1/grades"},
		{http.MethodPost, "/attendance"},
		{http.MethodGet, "/students/1/attendance"},
		{http.MethodGet, "/me/grades"},
		{http.MethodGet, "/me/attendance"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token → 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/students"},
		{http.MethodGet, "/students/1"},
		{http.MethodGet, "/courses"},
		{http.MethodGet, "/students/1/courses"},
		{http.MethodGet, "/students/1/grades"},
		{http.MethodGet, "/students/1/attendance"},
		{http.MethodGet, "/me/grades"},
		{http.MethodGet, "/me/attendance"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token → not 401", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"valid token should not result in 401")
		})
	}
}

// ---- Role separation: /me routes resolve against the student role ----

func TestInit_MeRoutes_RequestStudentRole(t *testing.T) {
	var mu sync.Mutex
	requestedRoles := make([]models.Role, 0, 2)

	authSvc := &mockAuthService{
		resolvePrincipalFn: func(_ context.Context, _ string, requiredRole models.Role) (models.Principal, error) {
			mu.Lock()
			requestedRoles = append(requestedRoles, requiredRole)
			mu.Unlock()
			return models.Principal{ID: 7, Role: requiredRole}, nil
		},
	}
	recordsSvc := &mockRecordsService{
		listGradesForStudentFn: func(_ context.Context, _ int64) ([]models.Grade, error) {
			return []models.Grade{}, nil
		},
		listAttendanceForStudentFn: func(_ context.Context, _ int64) ([]models.Attendance, error) {
			return []models.Attendance{}, nil
		},
	}
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    authSvc,
			RecordsService: recordsSvc,
		},
	}
	router := h.Init()

	for _, path := range []string{"/me/grades", "/me/attendance"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", validAuthHeader())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	assert.Equal(t, []models.Role{models.RoleStudent, models.RoleStudent}, requestedRoles)
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method  string
		path    string
		addAuth bool
	}{
		{http.MethodGet, "/nonexistent", false},
		{http.MethodGet, "/admin", false},
		{http.MethodPost, "/students/1/enroll", true},
		{http.MethodGet, "/totally/wrong/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Wrong method on existing route returns 405 ----

func TestInit_WrongMethod_Returns405(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name    string
		method  string
		path    string
		addAuth bool
	}{
		{
			name:   "GET on /admin/login (POST only)",
			method: http.MethodGet,
			path:   "/admin/login",
		},
		{
			name:   "GET on /student/login (POST only)",
			method: http.MethodGet,
			path:   "/student/login",
		},
		{
			name:    "DELETE on /courses (POST/GET only)",
			method:  http.MethodDelete,
			path:    "/courses",
			addAuth: true,
		},
		{
			name:    "POST on /me/grades (GET only)",
			method:  http.MethodPost,
			path:    "/me/grades",
			addAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.addAuth {
				req.Header.Set("Authorization", validAuthHeader())
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
