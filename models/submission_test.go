package models

import "testing"

func TestNormalizeSubmissionStatus_LegacyTokens(t *testing.T) {
	cases := map[string]SubmissionStatus{
		"submitted":  StatusSubmitted,
		"SUBMITTED":  StatusSubmitted,
		"respondida": StatusSubmitted,
		"RESPONDIDA": StatusSubmitted,
		"Submetido":  StatusSubmitted,
		"enviado":    StatusSubmitted,
		" enviado ":  StatusSubmitted,
		"pending":    StatusPending,
		"pendente":   StatusPending,
		"PENDING":    StatusPending,
		"":           StatusPending,
		"garbage":    StatusPending,
	}
	for raw, want := range cases {
		if got := NormalizeSubmissionStatus(raw); got != want {
			t.Fatalf("NormalizeSubmissionStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestSubmissionStatusScan(t *testing.T) {
	var s SubmissionStatus
	if err := s.Scan([]byte("respondida")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if s != StatusSubmitted {
		t.Fatalf("scan bytes = %s, want SUBMITTED", s)
	}
	if err := s.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if s != StatusPending {
		t.Fatalf("scan nil = %s, want PENDING", s)
	}
	if err := s.Scan(42); err == nil {
		t.Fatal("scan int should fail")
	}
}

func TestSubmissionStatusValue_EmptyDefaultsToPending(t *testing.T) {
	var s SubmissionStatus
	v, err := s.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != string(StatusPending) {
		t.Fatalf("value = %v, want PENDING", v)
	}
}
