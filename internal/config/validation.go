package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator reports failures by the key a user writes in YAML or settings files,
// e.g. "opponent_pool[0].evasion" rather than the Go field path.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(keyName)
	return &Validator{validate: v}
}

// keyName prefers the yaml tag, then the mapstructure tag.
func keyName(f reflect.StructField) string {
	for _, tag := range []string{"yaml", "mapstructure"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("%d invalid setting(s):\n  %s", len(problems), strings.Join(problems, "\n  "))
}

// describe renders one failure as "key: problem (got value)". The top-level struct name
// is dropped from the namespace.
func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}
	var problem string
	switch fe.Tag() {
	case "required":
		problem = "is required"
	case "required_if":
		problem = "is required when " + strings.Replace(fe.Param(), " ", " is ", 1)
	case "min":
		problem = "must be at least " + fe.Param()
	case "max":
		problem = "must be at most " + fe.Param()
	case "oneof":
		problem = "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		problem = "fails " + fe.Tag()
	}
	return fmt.Sprintf("%s %s (got %v)", key, problem, fe.Value())
}

func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
