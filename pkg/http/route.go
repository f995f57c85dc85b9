package http

import (
	"strings"
	"unicode"

	pkgstrings "github.com/klwxsrx/parcelshare/pkg/strings"
)

// Route is a request template; URL may contain {param} placeholders
// filled with Request.SetPathParam.
type Route struct {
	Method string
	URL    string
}

// Name returns a low-cardinality identifier usable as a metric label.
func (r Route) Name() string {
	if r.URL == "" {
		return "none"
	}

	words := strings.FieldsFunc(r.URL, func(c rune) bool {
		return !unicode.Is(unicode.Latin, c) && !unicode.IsDigit(c)
	})
	return pkgstrings.ToKebabCase(strings.ToLower(r.Method) + " " + strings.Join(words, " "))
}
