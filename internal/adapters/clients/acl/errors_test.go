package acl

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

func reply(status int, contentType, body string) *http.Response {
	resp := &http.Response{StatusCode: status, Header: http.Header{}, Body: http.NoBody}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	if body != "" {
		resp.Body = io.NopCloser(strings.NewReader(body))
	}
	return resp
}

func TestTranslateHTTPError_Sentinels(t *testing.T) {
	t.Parallel()

	tests := map[int]error{
		http.StatusBadRequest:          domain.ErrValidation,
		http.StatusUnprocessableEntity: domain.ErrValidation,
		http.StatusNotFound:            domain.ErrNotFound,
		http.StatusConflict:            domain.ErrConflict,
		http.StatusUnauthorized:        domain.ErrForbidden,
		http.StatusForbidden:           domain.ErrForbidden,
		http.StatusTooManyRequests:     domain.ErrUnavailable,
		http.StatusInternalServerError: domain.ErrUnavailable,
		http.StatusBadGateway:          domain.ErrUnavailable,
		http.StatusServiceUnavailable:  domain.ErrUnavailable,
	}

	for status, want := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, TranslateHTTPError(reply(status, "", "")), want)
		})
	}
}

func TestTranslateHTTPError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *http.Response
		want string
	}{
		{
			name: "detail preferred",
			resp: reply(http.StatusBadGateway, "application/problem+json", `{"title":"Bad Gateway","detail":"model timed out"}`),
			want: "model timed out",
		},
		{
			name: "title fallback",
			resp: reply(http.StatusServiceUnavailable, "application/problem+json; charset=utf-8", `{"title":"Generator overloaded"}`),
			want: "Generator overloaded",
		},
		{
			name: "malformed problem falls back to status text",
			resp: reply(http.StatusServiceUnavailable, "application/problem+json", `{not json`),
			want: "Service Unavailable",
		},
		{
			name: "plain body ignored",
			resp: reply(http.StatusNotFound, "text/plain", "nope"),
			want: "Not Found",
		},
		{
			name: "problem type without body",
			resp: &http.Response{StatusCode: http.StatusNotFound, Header: http.Header{"Content-Type": {"application/problem+json"}}},
			want: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Contains(t, TranslateHTTPError(tt.resp).Error(), tt.want)
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	resp := reply(http.StatusUnprocessableEntity, "application/problem+json", `{
		"detail": "invalid request",
		"errors": [
			{"location": "body.durationWeeks", "message": "must be 2-12"},
			{"location": "body.durationWeeks", "message": "second message"},
			{"location": "topic", "message": "is required"}
		]
	}`)

	var verr *domain.ValidationError
	require.ErrorAs(t, TranslateHTTPError(resp), &verr)

	want := map[string]string{"durationWeeks": "must be 2-12", "topic": "is required"}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(reply(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable,
	} {
		assert.NotErrorIs(t, got, sentinel)
	}
	assert.Contains(t, got.Error(), "418")
}
