package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/m-mizutani/goerr/v2"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = goerr.New("translator not found")

// requestValidator checks the shape of request bodies. Business rules are
// applied by the use case layer, not here.
type requestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// fieldErrors maps JSON field names to messages
type fieldErrors map[string]string

func (fe fieldErrors) Error() string {
	return "invalid request body"
}

func newRequestValidator() (*requestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, goerr.Wrap(err, "failed to register translations")
	}

	return &requestValidator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate returns fieldErrors when data does not satisfy its validate tags
func (v *requestValidator) Validate(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return goerr.Wrap(err, "failed to validate request")
	}

	fields := make(fieldErrors, len(validateErrs))
	for _, fe := range validateErrs {
		fields[fe.Field()] = fe.Translate(v.translator)
	}
	return fields
}
