package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/at-ishikawa/ktytools/internal/lang"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("lang", isSupportedLanguage); err != nil {
		return nil, nil, fmt.Errorf("failed to register lang validation: %w", err)
	}
	if err := validate.RegisterTranslation("lang", trans, func(ut ut.Translator) error {
		return ut.Add("lang", "{0} must be one of the supported language codes, got {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("lang", strings.TrimPrefix(fe.Namespace(), "Config."), fmt.Sprint(fe.Value()))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register lang translation: %w", err)
	}

	return validate, trans, nil
}

func isSupportedLanguage(fl validator.FieldLevel) bool {
	return lang.IsSupported(fl.Field().String())
}
