package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Minimal internal validator over `validate:"..."` struct tags. Supports:
// - required
// - email
// - pwdmin (min length 6)
// - maxlen=N
// - role (STUDENT or TEACHER, any casing)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateStruct inspects struct tags `validate:"..."` and returns the first error encountered.
func ValidateStruct(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("ValidateStruct expects a struct or pointer to struct")
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}
		fv := v.Field(i)
		var sval string
		if fv.IsValid() && fv.Kind() == reflect.String {
			sval = fv.String()
		}
		for _, p := range strings.Split(tag, ",") {
			p = strings.TrimSpace(p)
			switch {
			case p == "required":
				if sval == "" {
					return errors.New(field.Name + " is required")
				}
			case p == "email":
				if sval != "" && !reEmail.MatchString(sval) {
					return errors.New(field.Name + " must be a valid email address")
				}
			case p == "pwdmin":
				if len(sval) < 6 {
					return errors.New(field.Name + " must be at least 6 characters")
				}
			case p == "role":
				upper := strings.ToUpper(strings.TrimSpace(sval))
				if upper != "STUDENT" && upper != "TEACHER" {
					return errors.New(field.Name + " must be STUDENT or TEACHER")
				}
			case strings.HasPrefix(p, "maxlen="):
				n, err := strconv.Atoi(strings.TrimPrefix(p, "maxlen="))
				if err == nil && len(sval) > n {
					return errors.New(field.Name + " must be at most " + strconv.Itoa(n) + " characters")
				}
			}
		}
	}
	return nil
}
