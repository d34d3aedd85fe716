package textrank

import "strings"

// Languages with dedicated sentence segmentation support. Codes cover
// ISO 639-1, ISO 639-2 and the plain language name; regional variants
// like "pt-BR" resolve through their base code.
var languageByCode = map[string]string{
	"cs": "czech", "ces": "czech", "cze": "czech", "czech": "czech",
	"da": "danish", "dan": "danish", "danish": "danish",
	"nl": "dutch", "nld": "dutch", "dut": "dutch", "dutch": "dutch",
	"en": "english", "eng": "english", "english": "english",
	"et": "estonian", "est": "estonian", "estonian": "estonian",
	"fi": "finnish", "fin": "finnish", "finnish": "finnish",
	"fr": "french", "fra": "french", "fre": "french", "french": "french",
	"de": "german", "deu": "german", "ger": "german", "german": "german",
	"el": "greek", "ell": "greek", "gre": "greek", "greek": "greek",
	"it": "italian", "ita": "italian", "italian": "italian",
	"no": "norwegian", "nor": "norwegian", "nb": "norwegian", "nob": "norwegian",
	"nn": "norwegian", "nno": "norwegian", "norwegian": "norwegian",
	"pl": "polish", "pol": "polish", "polish": "polish",
	"pt": "portuguese", "por": "portuguese", "portuguese": "portuguese",
	"ru": "russian", "rus": "russian", "russian": "russian",
	"sl": "slovene", "slv": "slovene", "slovene": "slovene",
	"es": "spanish", "spa": "spanish", "spanish": "spanish",
	"sv": "swedish", "swe": "swedish", "swedish": "swedish",
	"tr": "turkish", "tur": "turkish", "turkish": "turkish",
}

// ResolveLanguage maps an ISO 639-1/639-2 code or language name, optionally
// with a region suffix ("pt-BR", "en_US"), to a supported language name.
// The second return value is false when the language has no dedicated
// segmentation support and callers must use the fallback splitter.
func ResolveLanguage(code string) (string, bool) {
	if code == "" {
		return "", false
	}

	base := strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	if base == "" {
		return "", false
	}

	lang, ok := languageByCode[base]
	return lang, ok
}
