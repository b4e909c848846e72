package utils

import (
	"testing"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(7, models.RoleStudent, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id, _ := claims["id"].(float64); uint(id) != 7 {
		t.Fatalf("id claim = %v, want 7", claims["id"])
	}
	if role, _ := claims["role"].(string); role != "student" {
		t.Fatalf("role claim = %q, want student", role)
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(7, models.RoleTeacher, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(7, models.RoleTeacher, time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}
