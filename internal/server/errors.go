package server

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/internal/identity"
	"github.com/retirmentaudit/retirement-audit-launch/internal/output"
	"github.com/retirmentaudit/retirement-audit-launch/internal/session"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// statusFor maps domain and identity errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, output.ErrUnsupportedFormat),
		errors.Is(err, identity.ErrMissingCredentials),
		errors.Is(err, identity.ErrInvalidEmail),
		errors.Is(err, identity.ErrWeakPassword):
		return fasthttp.StatusBadRequest
	case errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrUserNotFound),
		errors.Is(err, session.ErrInvalidToken):
		return fasthttp.StatusUnauthorized
	case errors.Is(err, identity.ErrEmailExists):
		return fasthttp.StatusConflict
	default:
		return fasthttp.StatusInternalServerError
	}
}

// fail writes err with its mapped status. Internal errors are logged and reported generically.
func (s *Server) fail(ctx *fasthttp.RequestCtx, err error) {
	status := statusFor(err)
	if status == fasthttp.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", string(ctx.Path())), zap.Error(err))
		writeError(ctx, status, "Internal server error")
		return
	}
	writeError(ctx, status, err.Error())
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"Internal server error"}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
