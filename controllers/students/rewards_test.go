package students

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AndradeRafael41/EducaGamfy/utils"
)

func asStudent(req *http.Request, id uint) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDKey, id)
	ctx = context.WithValue(ctx, utils.UserRoleKey, "student")
	return req.WithContext(ctx)
}

func TestRedeemReward_RequiresAuth(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.local/api/v1/students/redeem",
		strings.NewReader(`{"rewardId":1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	RedeemRewardHandler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestRedeemReward_RejectsMissingRewardID(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.local/api/v1/students/redeem",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	RedeemRewardHandler(rec, asStudent(req, 9))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestRedeemReward_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.local/api/v1/students/redeem",
		strings.NewReader(`{"rewardId":1,"points":99}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	RedeemRewardHandler(rec, asStudent(req, 9))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}
