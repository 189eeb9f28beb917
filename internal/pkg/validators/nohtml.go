package validators

import (
	"html"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// ContainsMarkup reports whether s carries HTML that a strict sanitizer would strip
func ContainsMarkup(s string) bool {
	return html.UnescapeString(strictPolicy.Sanitize(s)) != s
}

// NoHTMLValidation rejects strings containing HTML markup.
func NoHTMLValidation(fl validator.FieldLevel) bool {
	return !ContainsMarkup(fl.Field().String())
}
