package util

import (
	"io"
	"net/http"
)

// HttpBody reads at most limit bytes of the request body. It returns nil if
// the body is larger or cannot be read.
func HttpBody(w http.ResponseWriter, r *http.Request, limit int64) []byte {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	bodyb, err := io.ReadAll(body)
	if err != nil {
		return nil
	}

	return bodyb
}
