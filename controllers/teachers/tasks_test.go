package teachers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AndradeRafael41/EducaGamfy/models"
	"github.com/AndradeRafael41/EducaGamfy/utils"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func asTeacher(req *http.Request, id uint) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDKey, id)
	ctx = context.WithValue(ctx, utils.UserRoleKey, "teacher")
	return req.WithContext(ctx)
}

func TestGradeSubmission_RequiresAuth(t *testing.T) {
	req := httptest.NewRequest("PUT", "http://example.local/api/v1/teacher/tasks",
		strings.NewReader(`{"submissionId":1,"points":10}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	GradeSubmissionHandler(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}
}

func TestGradeSubmission_RejectsMissingSubmissionID(t *testing.T) {
	req := httptest.NewRequest("PUT", "http://example.local/api/v1/teacher/tasks",
		strings.NewReader(`{"points":10}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	GradeSubmissionHandler(rec, asTeacher(req, 3))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

// The grading transaction computes a points delta against the stored value,
// so the submission read must take an exclusive lock or two concurrent grade
// calls could both apply their delta to the student balance.
func TestSubmissionForGrading_LocksRow(t *testing.T) {
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		DSN:                       "grader:grader@tcp(127.0.0.1:3306)/educagamefy",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var submission models.TaskSubmission
	sql := submissionForGrading(db, 5, &submission).Statement.SQL.String()
	if !strings.Contains(sql, "FOR UPDATE") {
		t.Fatalf("grading read must lock the row, got %q", sql)
	}
}

func TestCreateReward_RejectsNonPositiveCost(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.local/api/v1/rewards",
		strings.NewReader(`{"name":"Sticker pack","costPoints":0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	CreateRewardHandler(rec, asTeacher(req, 3))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}
