package util

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"exusiai.dev/equipsorter/internal/model"
)

// Validator bundles a validator with its English translator so that
// violations can be rendered as readable messages.
type Validator struct {
	*validator.Validate

	Translator ut.Translator
}

func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterValidation("labelheader", labelHeader)

	entr, _ := ut.New(en.New()).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
	err := validate.RegisterTranslation("labelheader", entr, func(ut ut.Translator) error {
		return ut.Add("labelheader", "{0} must be a single-line name that does not collide with an equipment column", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("labelheader", fe.Field())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Str("tag", "labelheader").Msg("could not register translation")
	}

	return &Validator{
		Validate:   validate,
		Translator: entr,
	}
}

// Violations renders validation errors as translated messages keyed by field.
func (v *Validator) Violations(errs validator.ValidationErrors) map[string]string {
	return lo.SliceToMap(errs, func(fe validator.FieldError) (string, string) {
		return fe.Field(), fe.Translate(v.Translator)
	})
}

func labelHeader(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" || strings.ContainsAny(val, "\r\n") {
		return false
	}
	return !lo.Contains(model.EquipmentColumns, val)
}
