// Package respond writes JSON responses for the HTTP handlers.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin/render"
	"github.com/wb-go/wbf/zlog"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	r := render.JSON{Data: v}
	r.WriteContentType(w)
	w.WriteHeader(code)

	if err := r.Render(w); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Accepted writes v with 202.
func Accepted(w http.ResponseWriter, v any) {
	JSON(w, http.StatusAccepted, v)
}

// Fail writes err as {"error": "..."} with the given code.
func Fail(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorResponse{Error: err.Error()})
}
