// Package acl keeps the remote course API's wire format out of the domain.
// Wire shapes and their translators live in acl/course; request execution
// and error mapping live here.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

// maxProblemBytes caps how much of an error body is read.
const maxProblemBytes = 1 << 20

// problem is the part of an RFC 9457 document the course API sends that we
// use.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

var statusSentinels = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// TranslateHTTPError turns a failed course API response into a domain
// error. A problem+json body lends its detail, or failing that its title,
// to the message. Validation statuses carrying field errors become a
// *domain.ValidationError. Every 5xx is domain.ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	code := resp.StatusCode
	msg := cmp.Or(p.Detail, p.Title, http.StatusText(code))

	sentinel, known := statusSentinels[code]
	switch {
	case sentinel == domain.ErrValidation && len(p.Errors) > 0:
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			name := strings.TrimPrefix(e.Location, "body.")
			if _, dup := fields[name]; !dup {
				fields[name] = e.Message
			}
		}
		return &domain.ValidationError{Fields: fields}
	case known:
		return fmt.Errorf("%s: %w", msg, sentinel)
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnavailable)
	default:
		return fmt.Errorf("course API answered %d: %s", code, msg)
	}
}

func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt != "application/problem+json" {
		return p
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBytes))
	if err == nil {
		_ = json.Unmarshal(raw, &p)
	}
	return p
}
