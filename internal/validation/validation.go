// Package validation builds per-option value validation functions,
// combining declared choice lists with optional go-playground/validator
// tag validations.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/commander/internal/errors"
	"github.com/reeflective/commander/internal/parser"
)

// NewDefault returns the validator engine used when
// the caller did not provide a customized one.
func NewDefault() *validator.Validate {
	return validator.New()
}

// Setup builds the validation function for a single option, or nil when
// there is nothing to enforce. The returned function is run against each
// raw command-line value before it is published to the option's binding
// handler. Choice lists are always enforced; tag validations only run
// when an engine has been provided.
func Setup(opt *parser.Option, engine *validator.Validate) func(val string) error {
	hasTag := opt.ValidateTag != "" && engine != nil

	if len(opt.Choices) == 0 && !hasTag {
		return nil
	}

	switch {
	case !hasTag:
		return func(val string) error {
			return validateChoice(val, opt.Choices)
		}
	case len(opt.Choices) == 0:
		return func(val string) error {
			return validateVar(engine, opt, val)
		}
	default:
		return func(val string) error {
			if err := validateChoice(val, opt.Choices); err != nil {
				return err
			}

			return validateVar(engine, opt, val)
		}
	}
}

// validateChoice checks the given value is among valid choices.
func validateChoice(val string, choices []string) error {
	for _, choice := range choices {
		if choice == val {
			return nil
		}
	}

	return fmt.Errorf("%w: %s (must be one of %s)",
		errors.ErrInvalidChoice, val, strings.Join(choices, ", "))
}

func validateVar(engine *validator.Validate, opt *parser.Option, val string) error {
	if err := engine.Var(val, opt.ValidateTag); err != nil {
		return &invalidVarError{
			optionName:  opt.Name,
			optionValue: val,
			validateErr: err,
		}
	}

	return nil
}

// invalidVarError wraps an error raised by the validator engine,
// and rewrites its message into one more adapted to CLI usage.
type invalidVarError struct {
	optionName  string
	optionValue string
	validateErr error
}

// Match the part of the validator message containing the tag name.
var retag = regexp.MustCompile(`the '.*' tag`)

func (err *invalidVarError) Error() string {
	if matched := retag.FindString(err.validateErr.Error()); matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			return fmt.Sprintf("`%s` is not a valid %s",
				err.optionValue, strings.Trim(parts[1], "'"))
		}
	}

	// Or simply replace the empty key with the option name.
	return strings.ReplaceAll(err.validateErr.Error(), "''",
		fmt.Sprintf("'%s'", err.optionName))
}

func (err *invalidVarError) Unwrap() error { return err.validateErr }
