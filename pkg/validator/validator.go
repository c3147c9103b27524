package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func Init() {
	validate = validator.New()

	sanitizer = bluemonday.UGCPolicy()
	sanitizer.AllowElements("iframe")
	sanitizer.AllowAttrs("src", "width", "height", "style", "allowfullscreen", "loading").OnElements("iframe")

	registerCustomValidations(validate)

	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomValidations(engine)
	}
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("slug", validateSlug)
	v.RegisterValidation("hexcolor_opt", validateHexColor)
}

func Validate(s interface{}) error {
	return validate.Struct(s)
}

// SanitizeHTML cleans user-supplied markup such as contact map embeds before
// it is rendered into a page.
func SanitizeHTML(html string) string {
	if sanitizer == nil {
		Init()
	}
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup from a plain-text field.
func SanitizeString(s string) string {
	return bluemonday.StrictPolicy().Sanitize(s)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

func ValidatePassword(password string) (bool, string) {
	if len(password) < 6 {
		return false, "password must be at least 6 characters long"
	}

	return true, ""
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

func validateHexColor(fl validator.FieldLevel) bool {
	value := strings.TrimSpace(fl.Field().String())
	if value == "" {
		return true
	}
	return hexColorRegex.MatchString(value)
}
