package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	"lifecare/shared/constant"
	"lifecare/shared/failure"
	"lifecare/shared/timezone"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type referenceTimeKey struct{}

// whitespace is the Unicode white space set. RE2's \s only covers ASCII.
const whitespace = `\s\v\p{Z}\x{FEFF}`

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^[+]?[\d` + whitespace + `-]{10,}$`)
	emailPattern = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `@]+$`)
)

// WithReferenceTime fixes the instant "notpast" compares against. Without it the current time is used.
func WithReferenceTime(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, referenceTimeKey{}, now)
}

func referenceDay(ctx context.Context) time.Time {
	if now, ok := ctx.Value(referenceTimeKey{}).(time.Time); ok {
		return timezone.StartOfDay(now)
	}

	return timezone.Today()
}

func registerPhoneValidation(fl val.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func registerContactEmailValidation(fl val.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func registerDateOnlyValidation(fl val.FieldLevel) bool {
	_, err := timezone.Parse(constant.DateOnlyFormat, fl.Field().String())

	return err == nil
}

// registerNotPastValidation accepts a YYYY-MM-DD date on or after the reference calendar day.
func registerNotPastValidation(ctx context.Context, fl val.FieldLevel) bool {
	date, err := timezone.Parse(constant.DateOnlyFormat, fl.Field().String())
	if err != nil {
		return false
	}

	return !date.Before(referenceDay(ctx))
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	err := validate.RegisterValidation("notblank", validators.NotBlank)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("contactemail", registerContactEmailValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateonly", registerDateOnlyValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidationCtx("notpast", registerNotPastValidation)
	if err != nil {
		panic(err)
	}
}

// RegisterValidation adds a custom tag. Domain packages call it from their init.
func RegisterValidation(tag string, fn val.Func) error {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register %s validation: %w", tag, err)
	}

	return nil
}

// Decode reads JSON from r into data without validating it.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateFields evaluates every rule on data and returns one message per failing field,
// keyed by the field's JSON name. An empty map means data is valid.
func ValidateFields[T any](ctx context.Context, data *T, overrides map[string]string) map[string]string {
	err := validate.StructCtx(ctx, data)
	if err == nil {
		return map[string]string{}
	}

	return fieldMessages(err, overrides)
}
