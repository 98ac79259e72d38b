package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnauthorized matches any backend response with status 401.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError is a failure reported by the backend itself.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend: status %d", e.Status)
	}
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Detail)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// errorBody mirrors the backend's error payload. detail is a string for
// domain errors and a list of objects for request validation errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func newAPIError(status int, body *errorBody, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	detail := body.Detail
	if len(detail) == 0 && len(raw) > 0 {
		var fallback errorBody
		if err := json.Unmarshal(raw, &fallback); err == nil {
			detail = fallback.Detail
		}
	}
	if len(detail) == 0 {
		return apiErr
	}
	var text string
	if err := json.Unmarshal(detail, &text); err == nil {
		apiErr.Detail = text
		return apiErr
	}
	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg == "" {
				continue
			}
			if len(item.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", item.Loc[len(item.Loc)-1], item.Msg))
				continue
			}
			msgs = append(msgs, item.Msg)
		}
		apiErr.Detail = strings.Join(msgs, "; ")
	}
	return apiErr
}

// Detail returns the backend's message carried by err, or fallback when err
// is a transport failure or the backend sent no usable message.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
