package i18n

import (
	"golang.org/x/text/language"
)

// Supported lists the customer-facing languages; the first entry is the fallback.
var Supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

// Negotiate picks the best supported language for an Accept-Language header and
// returns its base code ("en", "es").
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return baseOf(Supported[0])
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return baseOf(Supported[0])
	}
	return baseOf(Supported[index])
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
