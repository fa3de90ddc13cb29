package idempotency

import (
	"errors"
	"net/http"
	"slices"
)

var ErrInvalidStatusCode = errors.New("saved response status code out of range")

type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SavedResponse is the frozen HTTP response replayed for duplicates of a completed key.
type SavedResponse struct {
	StatusCode int
	Headers    []Header
	Body       []byte
}

func NewSavedResponse(status int, headers []Header, body []byte) (SavedResponse, error) {
	if status < 100 || status > 599 {
		return SavedResponse{}, ErrInvalidStatusCode
	}
	return SavedResponse{
		StatusCode: status,
		Headers:    slices.Clone(headers),
		Body:       slices.Clone(body),
	}, nil
}

// HeadersFrom flattens h in a stable order (sorted names, values in insertion order).
func HeadersFrom(h http.Header) []Header {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]Header, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			out = append(out, Header{Name: name, Value: v})
		}
	}
	return out
}

func (r SavedResponse) Header(name string) string {
	canonical := http.CanonicalHeaderKey(name)
	for _, h := range r.Headers {
		if http.CanonicalHeaderKey(h.Name) == canonical {
			return h.Value
		}
	}
	return ""
}
