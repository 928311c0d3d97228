package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sunny-bhakta/payments-service/internal/domain"
)

// JSON writes v as compact JSON with no trailing newline. A value that cannot
// be encoded is answered with a 500 detail instead.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		Detail(w, http.StatusInternalServerError)
		return
	}
	write(w, status, body)
}

// Detail writes the {"detail":"<status text>"} error envelope.
func Detail(w http.ResponseWriter, status int) {
	body, err := json.Marshal(domain.ErrorDetail{Detail: http.StatusText(status)})
	if err != nil {
		// ErrorDetail is a single string field; encoding cannot fail.
		panic(err)
	}
	write(w, status, body)
}

func write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
