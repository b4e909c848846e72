package utils

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"relatório final.pdf":  "relatorio-final.pdf",
		"Trabalho de Ciências": "Trabalho-de-Ciencias",
		"foto..png":            "foto..png",
		"  lição#1!.docx ":     "licao-1-.docx",
		"///":                  "file",
		"":                     "file",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSubmissionObjectKey_Layout(t *testing.T) {
	key := SubmissionObjectKey(5, 7, "dever de casa.pdf")
	if !strings.HasPrefix(key, "submissions/5/7/") {
		t.Fatalf("key %q not namespaced by task and student", key)
	}
	if !strings.HasSuffix(key, "-dever-de-casa.pdf") {
		t.Fatalf("key %q does not end with sanitized filename", key)
	}
}

func TestTaskObjectKey_Layout(t *testing.T) {
	key := TaskObjectKey(12, "máterial.pdf")
	if !strings.HasPrefix(key, "tasks/12/") {
		t.Fatalf("key %q not namespaced by task", key)
	}
	if strings.Contains(key, "á") {
		t.Fatalf("key %q still contains diacritics", key)
	}
}
