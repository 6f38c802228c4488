package Controllers

import (
	en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")
	entranslations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct runs validator tags over s and returns translated
// field messages, or nil when the struct is valid.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"error": err.Error()}
	}

	out := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		out[fieldErr.Field()] = fieldErr.Translate(translator)
	}
	return out
}
