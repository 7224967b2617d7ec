package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tender-search/internal/app"
)

// statusFromDecodeError maps a request body decoding error onto the status and
// message of the error envelope.
func statusFromDecodeError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, app.MsgBodyTooLarge
	}
	return http.StatusBadRequest, app.MsgInvalidJSON
}
