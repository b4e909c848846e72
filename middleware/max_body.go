package middleware

import (
	"net/http"
	"os"
	"strconv"

	"github.com/AndradeRafael41/EducaGamfy/utils"
)

// MaxBodyMiddleware enforces a maximum request body size read from env var
// MAX_BODY_BYTES. The default leaves headroom above the 10 MiB upload cap so
// multipart framing does not trip the limit before validation does.
func MaxBodyMiddleware(next http.Handler) http.Handler {
	max := int64(utils.MaxUploadBytes + 1<<20)
	if s := os.Getenv("MAX_BODY_BYTES"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			max = v
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, max)
		next.ServeHTTP(w, r)
	})
}
