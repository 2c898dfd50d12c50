package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrTooManyResults = errors.New("more than one directory object matched")

// Error is a structured failure reported by the directory.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("directory request failed with status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsNotFound reports whether err is a directory error with a 404 status.
func IsNotFound(err error) bool {
	var graphErr *Error
	return errors.As(err, &graphErr) && graphErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a directory error with a 409 status.
func IsConflict(err error) bool {
	var graphErr *Error
	return errors.As(err, &graphErr) && graphErr.StatusCode == http.StatusConflict
}

type odataErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newError(statusCode int, body []byte) *Error {
	var envelope odataErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Code == "" && envelope.Error.Message == "" {
		return &Error{
			StatusCode: statusCode,
			Code:       "UnknownError",
			Message:    string(body),
		}
	}

	return &Error{
		StatusCode: statusCode,
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
	}
}
