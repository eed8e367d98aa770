package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lower case, the HTTP headers that carry
// credentials. The access log's header dump and the attribute masker both
// read it.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// maskedFields are attribute keys whose values are never logged. The
// registration form's password, email and address are among them.
var maskedFields = []string{"password", "email", "address", "secret", "token"}

var maskedPrefixes = []string{"secret_", "api_key"}

// maskedValues catch secrets that reach the log under an innocent key.
var maskedValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWT: three base64url segments of 10+ characters each, so version
	// strings like 1.2.3 pass.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
}

// maskAttr builds the slog ReplaceAttr hook that applies the lists above.
func maskAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(maskedFields)+len(maskedPrefixes)+len(maskedValues))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range maskedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range maskedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range maskedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
