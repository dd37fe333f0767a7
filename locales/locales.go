// Package locales holds the static table of locales the translation project
// supports, with their native display names, plus the overrides mapping our
// locale codes to the translation service's own codes where they differ.
package locales

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// SourceLocale is the source language of every resource. It must always be
// part of the supported set; pulls use it as the diff baseline.
const SourceLocale = "en"

// Names maps each supported locale code to its native display name.
// This table is project configuration, not data from the translation
// service; the packager's locale-names.json is generated from it.
var Names = map[string]string{
	"ar":      "العربية",
	"az":      "Azərbaycanca",
	"be":      "Беларуская",
	"bg":      "Български",
	"ca":      "Català",
	"cs":      "Čeština",
	"cy":      "Cymraeg",
	"da":      "Dansk",
	"de":      "Deutsch",
	"el":      "Ελληνικά",
	"en":      "English",
	"es":      "Español",
	"es-419":  "Español Latinoamericano",
	"et":      "Eesti",
	"eu":      "Euskara",
	"fa":      "فارسی",
	"fi":      "Suomi",
	"fr":      "Français",
	"ga":      "Gaeilge",
	"gl":      "Galego",
	"he":      "עברית",
	"hr":      "Hrvatski",
	"hu":      "Magyar",
	"id":      "Bahasa Indonesia",
	"it":      "Italiano",
	"ja":      "日本語",
	"ja-Hira": "にほんご",
	"ko":      "한국어",
	"lt":      "Lietuvių",
	"lv":      "Latviešu",
	"nb":      "Norsk Bokmål",
	"nl":      "Nederlands",
	"nn":      "Norsk Nynorsk",
	"pl":      "Polski",
	"pt":      "Português",
	"pt-br":   "Português Brasileiro",
	"ro":      "Română",
	"ru":      "Русский",
	"sk":      "Slovenčina",
	"sl":      "Slovenščina",
	"sr":      "Српски",
	"sv":      "Svenska",
	"th":      "ไทย",
	"tr":      "Türkçe",
	"uk":      "Українська",
	"vi":      "Tiếng Việt",
	"zh-cn":   "简体中文",
	"zh-tw":   "繁體中文",
}

// serviceOverrides maps our locale codes to the translation service's codes
// where the two disagree. Codes not listed here are used verbatim.
var serviceOverrides = map[string]string{
	"es-419":  "es_419",
	"ja-Hira": "ja-Hira",
	"pt-br":   "pt_BR",
	"zh-cn":   "zh_CN",
	"zh-tw":   "zh_TW",
}

// Supported returns all supported locale codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(Names))
	for code := range Names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ServiceCode returns the code the translation service uses for one of our
// locale codes.
func ServiceCode(code string) string {
	if mapped, ok := serviceOverrides[code]; ok {
		return mapped
	}
	return code
}

// Name returns the native display name for a supported locale code.
// Lookup is case-insensitive because pull results carry lowercased codes
// while the table keeps canonical casing (ja-Hira).
func Name(code string) (string, bool) {
	if name, ok := Names[code]; ok {
		return name, true
	}
	for c, name := range Names {
		if strings.EqualFold(c, code) {
			return name, true
		}
	}
	return "", false
}

// Valid reports whether a code parses as a well-formed BCP 47 language tag.
// language.Parse is case-insensitive, so our lowercase region convention
// (zh-cn) passes. Used to catch typos when the supported table or a config
// override is edited.
func Valid(code string) bool {
	_, err := language.Parse(code)
	return err == nil
}
