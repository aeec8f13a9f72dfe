// Package i18n translates user-facing messages into English, Spanish and
// Portuguese, the languages of the warehouse sites.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, then in DefaultLocale,
// then the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// supportedTags are the locales with messages, DefaultLocale first.
var (
	supportedTags = []language.Tag{language.English, language.Spanish, language.Portuguese}
	localeMatcher = language.NewMatcher(supportedTags)
)

// GetLocale negotiates the response locale from Accept-Language.
func GetLocale(c *gin.Context) string {
	return MatchLocale(c.GetHeader(AcceptLanguageHeader))
}

// MatchLocale picks the supported base language that best satisfies an
// Accept-Language value, honoring q weights and regional variants. Anything
// unparsable or unsupported yields DefaultLocale.
func MatchLocale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	base, _ := supportedTags[idx].Base()
	return base.String()
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":           "Invalid request",
			"error.invalid_request_body":      "Invalid request body",
			"error.internal_error":            "An unexpected error occurred",
			"error.not_found":                 "Not found",
			"error.rate_limit_exceeded":       "Too many requests, please try again later",
			"error.conflict":                  "Idempotency-Key was already used with a different request body",
			"error.timeout":                   "The request took too long to complete",
			"error.validation.items":          "Every item needs positive dimensions and quantity",
			"error.validation.too_many_items": "Too many items in a single order",
			"error.product_not_found":         "Product not found in the site catalog",
			"error.site_not_found":            "Site not found",
			"error.catalog_unavailable":       "The box catalog is temporarily unavailable",
			"error.service_unavailable":       "Service unavailable",
			"success.cache_invalidated":       "Catalog cache invalidated",
		},
		"es": {
			"error.invalid_request":           "Solicitud inválida",
			"error.invalid_request_body":      "Cuerpo de la solicitud inválido",
			"error.internal_error":            "Ocurrió un error inesperado",
			"error.not_found":                 "No encontrado",
			"error.rate_limit_exceeded":       "Demasiadas solicitudes, intente más tarde",
			"error.conflict":                  "El Idempotency-Key ya se usó con otro cuerpo de solicitud",
			"error.timeout":                   "La solicitud tardó demasiado en completarse",
			"error.validation.items":          "Cada ítem requiere dimensiones y cantidad positivas",
			"error.validation.too_many_items": "Demasiados ítems en un solo pedido",
			"error.product_not_found":         "Producto no encontrado en el catálogo del sitio",
			"error.site_not_found":            "Sitio no encontrado",
			"error.catalog_unavailable":       "El catálogo de cajas no está disponible temporalmente",
			"error.service_unavailable":       "Servicio no disponible",
			"success.cache_invalidated":       "Caché del catálogo invalidada",
		},
		"pt": {
			"error.invalid_request":           "Requisição inválida",
			"error.invalid_request_body":      "Corpo da requisição inválido",
			"error.internal_error":            "Ocorreu um erro inesperado",
			"error.not_found":                 "Não encontrado",
			"error.rate_limit_exceeded":       "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                  "O Idempotency-Key já foi usado com outro corpo de requisição",
			"error.timeout":                   "A requisição demorou demais para ser concluída",
			"error.validation.items":          "Cada item precisa de dimensões e quantidade positivas",
			"error.validation.too_many_items": "Itens demais em um único pedido",
			"error.product_not_found":         "Produto não encontrado no catálogo do site",
			"error.site_not_found":            "Site não encontrado",
			"error.catalog_unavailable":       "O catálogo de caixas está temporariamente indisponível",
			"error.service_unavailable":       "Serviço indisponível",
			"success.cache_invalidated":       "Cache do catálogo invalidado",
		},
	}
}
