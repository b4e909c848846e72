package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"
)

func TestAuthMiddleware_MissingToken(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req := httptest.NewRequest("GET", "http://example.local/api/v1/students", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_InjectsIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateAccessToken(42, models.RoleTeacher, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var gotID uint
	var gotRole string
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = utils.GetUserID(r)
		gotRole, _ = utils.GetUserRole(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "http://example.local/api/v1/teacher/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	if gotID != 42 {
		t.Fatalf("context user id = %d, want 42", gotID)
	}
	if gotRole != "teacher" {
		t.Fatalf("context role = %q, want teacher", gotRole)
	}
}

func TestRequireTeacher_BlocksStudents(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateAccessToken(7, models.RoleStudent, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	handler := AuthMiddleware(RequireTeacher(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("student must not reach teacher-only handler")
	})))

	req := httptest.NewRequest("PUT", "http://example.local/api/v1/teacher/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
}
