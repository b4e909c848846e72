package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	reUnsafe   = regexp.MustCompile(`[^\w.\-]+`)
	diacritics = strings.NewReplacer(
		"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"í", "i", "ì", "i", "î", "i", "ï", "i",
		"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
		"ú", "u", "ù", "u", "û", "u", "ü", "u",
		"ç", "c", "ñ", "n",
		"Á", "A", "À", "A", "Â", "A", "Ã", "A", "Ä", "A",
		"É", "E", "È", "E", "Ê", "E", "Ë", "E",
		"Í", "I", "Ì", "I", "Î", "I", "Ï", "I",
		"Ó", "O", "Ò", "O", "Ô", "O", "Õ", "O", "Ö", "O",
		"Ú", "U", "Ù", "U", "Û", "U", "Ü", "U",
		"Ç", "C", "Ñ", "N",
	)
)

// SanitizeFilename makes an uploaded filename safe for object keys: diacritics
// stripped, whitespace and anything outside [A-Za-z0-9_.-] collapsed to "-",
// and the result percent-encoded for use in a URL path segment.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(diacritics.Replace(name))
	name = reUnsafe.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		name = "file"
	}
	return url.PathEscape(name)
}

// SubmissionObjectKey builds the bucket key for a submission upload,
// namespaced by task and student so concurrent uploads never collide.
func SubmissionObjectKey(taskID, studentID uint, filename string) string {
	return fmt.Sprintf("submissions/%d/%d/%d-%s",
		taskID, studentID, time.Now().UnixMilli(), SanitizeFilename(filename))
}

// TaskObjectKey builds the bucket key for a task's reference material.
func TaskObjectKey(taskID uint, filename string) string {
	return fmt.Sprintf("tasks/%d/%d-%s",
		taskID, time.Now().UnixMilli(), SanitizeFilename(filename))
}
