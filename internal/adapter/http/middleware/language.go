package middleware

import (
	"planner/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{language.English, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// LanguageMiddleware is a Gin middleware that picks the response language from
// the Accept-Language header, matched against the languages we translate.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}
