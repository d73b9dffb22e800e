package footprint

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/footprint/internal/factors"
)

//nolint:gochecknoglobals // validator caches struct metadata; one instance is shared.
var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

// inputValidator returns the shared validator with the footprint rules registered.
func inputValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd // name,options
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("meat_multiplier", func(fl validator.FieldLevel) bool {
			return isMeatMultiplier(fl.Field().Float())
		}); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// Validate checks a household against the documented input ranges: quantities are
// non-negative, percentages lie within [0,100], the meat multiplier is one of the
// bucket values and the diet type is recognized.
//
// Failures wrap ErrInvalidInput, except an unrecognized diet type which wraps
// factors.ErrInvalidCategory. Unknown regions, vehicles and biomass usage are not
// errors; the calculators resolve them to documented defaults.
func Validate(h Household) error {
	if err := inputValidator().Struct(h); err != nil {
		return translateValidationError(err)
	}
	if !factors.IsDietType(h.Diet.DietType) {
		return fmt.Errorf("%w: diet type %q", factors.ErrInvalidCategory, h.Diet.DietType)
	}
	return nil
}

// translateValidationError flattens validator errors into one readable error.
func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %s", fieldPath(fe), describeRule(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

// fieldPath strips the root struct name from the namespace, e.g. "home.solar_pct".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
	case "meat_multiplier":
		return fmt.Sprintf("must be one of 0, 0.5, 1, 1.2, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
