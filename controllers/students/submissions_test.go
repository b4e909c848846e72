package students

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

func submissionForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write form field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestCreateSubmission_RequiresIDs(t *testing.T) {
	body, contentType := submissionForm(t, map[string]string{"link": "https://example.local/work"})
	req := httptest.NewRequest("POST", "http://example.local/api/v1/task-submissions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateSubmissionHandler(rec, asStudent(req, 7))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestCreateSubmission_RequiresAuth(t *testing.T) {
	body, contentType := submissionForm(t, map[string]string{"taskId": "1", "studentId": "7"})
	req := httptest.NewRequest("POST", "http://example.local/api/v1/task-submissions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateSubmissionHandler(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
}

func TestCreateSubmission_BlocksOtherStudents(t *testing.T) {
	body, contentType := submissionForm(t, map[string]string{"taskId": "1", "studentId": "8"})
	req := httptest.NewRequest("POST", "http://example.local/api/v1/task-submissions", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	CreateSubmissionHandler(rec, asStudent(req, 7))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
}

func TestListSubmissions_BlocksOtherStudents(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.local/api/v1/task-submissions?studentId=8", nil)
	rec := httptest.NewRecorder()
	ListSubmissionsHandler(rec, asStudent(req, 7))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
}
