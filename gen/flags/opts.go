package flags

import (
	"github.com/go-playground/validator/v10"

	"github.com/reeflective/commander/internal/validation"
)

// cliOpts holds the generation settings.
type cliOpts struct {
	// validator runs tag-based validations against raw flag values.
	// Choice lists declared on options are always enforced.
	validator *validator.Validate
}

func defOpts() cliOpts {
	return cliOpts{}
}

func (o cliOpts) apply(optFuncs ...OptFunc) cliOpts {
	for _, optFunc := range optFuncs {
		optFunc(&o)
	}

	return o
}

// OptFunc sets values in the generation settings.
type OptFunc func(opt *cliOpts)

// WithValidation enables tag-based validation of flag values for options
// declaring a validation tag. This makes use of go-playground/validator
// internally, refer to their docs for an exhaustive list of valid tags.
func WithValidation() OptFunc {
	return func(opt *cliOpts) {
		opt.validator = validation.NewDefault()
	}
}

// WithValidator registers a custom validator engine for flag values.
// It is required to pass a go-playground/validator object, since that
// library supports most of the validation one would want in a CLI, with
// vast possibilities for registering custom validations.
func WithValidator(engine *validator.Validate) OptFunc {
	return func(opt *cliOpts) {
		opt.validator = engine
	}
}
