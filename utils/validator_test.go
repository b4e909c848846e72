package utils

import "testing"

type registerForm struct {
	Name     string `validate:"required,maxlen=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,pwdmin"`
	Role     string `validate:"required,role"`
}

func TestValidateStruct(t *testing.T) {
	valid := registerForm{Name: "Ana", Email: "ana@escola.br", Password: "secret1", Role: "student"}
	if err := ValidateStruct(&valid); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}

	cases := []registerForm{
		{Email: "ana@escola.br", Password: "secret1", Role: "student"},           // missing name
		{Name: "Ana", Email: "not-an-email", Password: "secret1", Role: "student"}, // bad email
		{Name: "Ana", Email: "ana@escola.br", Password: "abc", Role: "student"},  // short password
		{Name: "Ana", Email: "ana@escola.br", Password: "secret1", Role: "admin"}, // bad role
	}
	for i, c := range cases {
		if err := ValidateStruct(&c); err == nil {
			t.Fatalf("case %d: invalid struct accepted", i)
		}
	}
}

func TestAllowedUploadType(t *testing.T) {
	allowed := []string{
		"image/png", "image/jpeg", "IMAGE/GIF",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/pdf; charset=binary",
	}
	for _, ct := range allowed {
		if !AllowedUploadType(ct) {
			t.Fatalf("%q should be allowed", ct)
		}
	}
	rejected := []string{"application/zip", "text/html", "video/mp4", "", "application/octet-stream"}
	for _, ct := range rejected {
		if AllowedUploadType(ct) {
			t.Fatalf("%q should be rejected", ct)
		}
	}
}
