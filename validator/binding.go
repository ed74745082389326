package validator

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"tourbooking/i18n"
)

var registerOnce sync.Once

// RegisterBindings adds the site's custom tags to gin's binding validator:
// "locale" (one of the supported locales) and "isodate" (YYYY-MM-DD).
func RegisterBindings() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("locale", func(fl playground.FieldLevel) bool {
			return i18n.IsLocale(fl.Field().String())
		})
		v.RegisterValidation("isodate", func(fl playground.FieldLevel) bool {
			return IsValidDate(fl.Field().String())
		})
	})
}
