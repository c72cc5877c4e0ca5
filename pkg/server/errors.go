package server

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-listgen/pkg/dataset"
	"github.com/goliatone/go-listgen/pkg/render"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr != nil:
		return httpErr.StatusCode()
	case errors.Is(err, dataset.ErrModelNotFound),
		errors.Is(err, dataset.ErrRecordNotFound),
		errors.Is(err, dataset.ErrAttributeNotFound):
		return http.StatusNotFound
	case errors.Is(err, render.ErrRendererNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
