// Package validation registers the custom binding validators used by request DTOs.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// TagNotBlank rejects strings that are empty after trimming whitespace.
const TagNotBlank = "notblank"

// TagTrimmedEmail accepts an email address surrounded by whitespace.
// The value itself is left untouched; callers normalize it.
const TagTrimmedEmail = "trimmed_email"

var (
	once        sync.Once
	registerErr error
)

// Register installs the custom validators on gin's default validator engine.
// It is safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation(TagNotBlank, validators.NotBlank); err != nil {
			registerErr = fmt.Errorf("register %s: %w", TagNotBlank, err)
			return
		}
		trimmedEmail := func(fl validator.FieldLevel) bool {
			return v.Var(strings.TrimSpace(fl.Field().String()), "email") == nil
		}
		if err := v.RegisterValidation(TagTrimmedEmail, trimmedEmail); err != nil {
			registerErr = fmt.Errorf("register %s: %w", TagTrimmedEmail, err)
		}
	})
	return registerErr
}
