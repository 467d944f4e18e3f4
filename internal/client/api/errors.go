package api

import (
	"encoding/json"
	"io"
	"net/http"
)

// Error is a non-2xx backend response. Detail carries the human-readable
// message from the response body's "detail" field; when the body is not in
// that shape a generic fallback is used so callers always have something to
// show the user.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// genericDetail is shown when the backend returns an unexpected body.
const genericDetail = "Something went wrong. Please try again."

func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode, Detail: genericDetail}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return e
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		e.Detail = payload.Detail
	}
	return e
}
