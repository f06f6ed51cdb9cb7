package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), parseDetail(resp.Body()))
}

// NewResponseError builds the error for a non-2xx status, picking the
// sentinel it unwraps to from the code.
func NewResponseError(statusCode int, detail string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Detail: detail}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	default:
		respErr.kind = ErrServer
	}

	return respErr
}

// parseDetail extracts a human-readable explanation from an error body.
// `detail` wins over `message`; otherwise field errors are flattened as
// "field: msg1, msg2; other: msg" sorted by field name.
func parseDetail(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return ""
	}

	for _, key := range []string{"detail", "message"} {
		if raw, ok := fields[key]; ok {
			if s := rawText(raw); s != "" {
				return s
			}
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := rawText(fields[k]); s != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", k, s))
		}
	}

	return strings.Join(parts, "; ")
}

// rawText renders a JSON string or list of strings; anything else is
// rendered as compact JSON.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		items := make([]string, 0, len(list))
		for _, item := range list {
			switch v := item.(type) {
			case string:
				items = append(items, v)
			default:
				b, _ := json.Marshal(v)
				items = append(items, string(b))
			}
		}
		return strings.Join(items, ", ")
	}

	if string(raw) == "null" {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
