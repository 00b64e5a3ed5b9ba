package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fieldkit/curve"
	"github.com/fieldkit/curve/internal/shapes"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate

	pathNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their names in the file.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("path_name", func(fl validator.FieldLevel) bool {
			return pathNamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
			_, ok := shapes.Lookup(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("svgpath", func(fl validator.FieldLevel) bool {
			_, err := curve.ParseSVG(fl.Field().String())
			return err == nil
		})

		validate = v
	})
	return validate
}

// Validate checks cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Message: "configuration is nil"}
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]bool, len(cfg.Paths))
	for i, p := range cfg.Paths {
		field := fmt.Sprintf("paths[%d]", i)
		if (p.SVG == "") == (p.Shape == "") {
			return &ValidationError{Field: field, Message: "exactly one of svg and shape must be set"}
		}
		if seen[p.Name] {
			return &ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate path name %q", p.Name)}
		}
		seen[p.Name] = true
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Message: err.Error(), Err: err}
	}
	fe := ves[0]
	field := fe.Namespace()
	// Drop the struct name.
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var msg string
	switch fe.Tag() {
	case "shape":
		msg = fmt.Sprintf("unknown shape %q, want one of %s", fe.Value(), strings.Join(shapes.Names(), ", "))
	case "svgpath":
		_, perr := curve.ParseSVG(fmt.Sprint(fe.Value()))
		msg = fmt.Sprintf("invalid SVG path data: %v", perr)
	case "path_name":
		msg = fmt.Sprintf("%q is not a valid name; use lower case letters, digits, '-' and '_'", fe.Value())
	default:
		msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed validation for tag '%s=%s'", fe.Tag(), fe.Param())
		}
	}
	return &ValidationError{Field: field, Message: msg, Err: err}
}
