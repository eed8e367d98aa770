package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance reports fields by their koanf keys and adds the rule
// that tags cannot express.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
			return name
		})
		validate.RegisterStructValidation(func(sl validator.StructLevel) {
			rl := sl.Current().Interface().(RateLimitConfig)
			if rl.RequestsPerSecond > 0 && rl.BurstSize < 1 {
				sl.ReportError(rl.BurstSize, "burst_size", "BurstSize", "min_when_limited", "1")
			}
		}, RateLimitConfig{})
	})
	return validate
}

// Validate checks every constraint and reports all failures together, one
// line per key, e.g. "server.port: failed max=65535 (got 70000)".
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		key := fe.Namespace()
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		errs = append(errs, fmt.Errorf("%s: failed %s (got %v)", key, rule, fe.Value()))
	}
	return errors.Join(errs...)
}
