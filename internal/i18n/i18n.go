package i18n

import (
	"fmt"
	"strings"
)

// Language describes a supported storefront language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Currency   string `json:"currency"`
	Locale     string `json:"locale"`
	RTL        bool   `json:"rtl,omitempty"`
}

// Currency describes a supported display currency. Rate is the fixed exchange
// rate relative to USD; there is no live rate feed.
type Currency struct {
	Code   string  `json:"code"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
}

const (
	DefaultLanguage = "en"
	DefaultCurrency = "USD"
)

var languages = map[string]Language{
	"en": {Code: "en", Name: "English", NativeName: "English", Currency: "USD", Locale: "en-US"},
	"es": {Code: "es", Name: "Spanish", NativeName: "Español", Currency: "EUR", Locale: "es-ES"},
	"fr": {Code: "fr", Name: "French", NativeName: "Français", Currency: "EUR", Locale: "fr-FR"},
	"de": {Code: "de", Name: "German", NativeName: "Deutsch", Currency: "EUR", Locale: "de-DE"},
	"ja": {Code: "ja", Name: "Japanese", NativeName: "日本語", Currency: "JPY", Locale: "ja-JP"},
	"zh": {Code: "zh", Name: "Chinese", NativeName: "中文", Currency: "CNY", Locale: "zh-CN"},
	"ar": {Code: "ar", Name: "Arabic", NativeName: "العربية", Currency: "AED", Locale: "ar-SA", RTL: true},
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 1},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.92},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.79},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: 149.50},
	"CNY": {Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", Rate: 7.24},
	"AED": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Rate: 3.67},
}

// LanguageByCode returns the language for a code, if supported.
func LanguageByCode(code string) (Language, bool) {
	lang, ok := languages[code]
	return lang, ok
}

// CurrencyByCode returns the currency for a code, if supported.
func CurrencyByCode(code string) (Currency, bool) {
	cur, ok := currencies[code]
	return cur, ok
}

// Languages returns all supported languages.
func Languages() []Language {
	out := make([]Language, 0, len(languages))
	for _, code := range []string{"en", "es", "fr", "de", "ja", "zh", "ar"} {
		out = append(out, languages[code])
	}
	return out
}

// Currencies returns all supported currencies.
func Currencies() []Currency {
	out := make([]Currency, 0, len(currencies))
	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "CNY", "AED"} {
		out = append(out, currencies[code])
	}
	return out
}

// FormatPrice renders an amount with the currency's symbol and two decimal
// places. Unknown currency codes fall back to a dollar sign.
func FormatPrice(amount float64, currencyCode string) string {
	symbol := "$"
	if cur, ok := currencies[currencyCode]; ok {
		symbol = cur.Symbol
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Convert translates an amount between currencies through the USD base rate.
// Unknown codes are treated as rate 1.
func Convert(amount float64, fromCode, toCode string) float64 {
	if fromCode == toCode {
		return amount
	}

	fromRate := 1.0
	if cur, ok := currencies[fromCode]; ok {
		fromRate = cur.Rate
	}
	toRate := 1.0
	if cur, ok := currencies[toCode]; ok {
		toRate = cur.Rate
	}

	return (amount / fromRate) * toRate
}

// NormalizeLanguage maps a BCP 47-ish tag ("en-GB") onto a supported language
// code, falling back to the default.
func NormalizeLanguage(tag string) string {
	code := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
	if _, ok := languages[code]; ok {
		return code
	}
	return DefaultLanguage
}

// T looks up a translation key in the given language, falling back to English
// and finally to the key itself.
func T(key, lang string) string {
	if msg, ok := translations[lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Translations returns the full message table for a language, with English
// filling any gaps. The returned map is a copy.
func Translations(lang string) map[string]string {
	out := make(map[string]string, len(translations[DefaultLanguage]))
	for key, msg := range translations[DefaultLanguage] {
		out[key] = msg
	}
	for key, msg := range translations[lang] {
		out[key] = msg
	}
	return out
}

var translations = map[string]map[string]string{
	"en": {
		"nav.home":           "Home",
		"nav.shop":           "Shop",
		"nav.about":          "About",
		"nav.contact":        "Contact",
		"product.addToCart":  "Add to Cart",
		"product.outOfStock": "Out of Stock",
		"product.inStock":    "In Stock",
		"cart.title":         "Shopping Cart",
		"cart.empty":         "Your cart is empty",
		"cart.checkout":      "Checkout",
		"cart.subtotal":      "Subtotal",
		"search.placeholder": "Search products...",
		"filter.category":    "Category",
		"filter.price":       "Price",
		"filter.size":        "Size",
		"filter.color":       "Color",
	},
	"es": {
		"nav.home":           "Inicio",
		"nav.shop":           "Tienda",
		"nav.about":          "Acerca de",
		"nav.contact":        "Contacto",
		"product.addToCart":  "Añadir al Carrito",
		"product.outOfStock": "Agotado",
		"product.inStock":    "En Stock",
		"cart.title":         "Carrito de Compras",
		"cart.empty":         "Tu carrito está vacío",
		"cart.checkout":      "Pagar",
		"cart.subtotal":      "Subtotal",
		"search.placeholder": "Buscar productos...",
		"filter.category":    "Categoría",
		"filter.price":       "Precio",
		"filter.size":        "Talla",
		"filter.color":       "Color",
	},
	"fr": {
		"nav.home":           "Accueil",
		"nav.shop":           "Boutique",
		"nav.about":          "À propos",
		"nav.contact":        "Contact",
		"product.addToCart":  "Ajouter au Panier",
		"product.outOfStock": "Rupture de Stock",
		"product.inStock":    "En Stock",
		"cart.title":         "Panier",
		"cart.empty":         "Votre panier est vide",
		"cart.checkout":      "Commander",
		"cart.subtotal":      "Sous-total",
		"search.placeholder": "Rechercher des produits...",
		"filter.category":    "Catégorie",
		"filter.price":       "Prix",
		"filter.size":        "Taille",
		"filter.color":       "Couleur",
	},
}
