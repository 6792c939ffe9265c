package quizgen

import "strings"

// languageCodes is the known-language list consulted by the language
// detector for validation and by the code lookup used to tag persisted
// quizzes. Keys are lower-case English language names.
var languageCodes = map[string]string{
	"arabic":     "ar",
	"bengali":    "bn",
	"bulgarian":  "bg",
	"chinese":    "zh",
	"croatian":   "hr",
	"czech":      "cs",
	"danish":     "da",
	"dutch":      "nl",
	"english":    "en",
	"estonian":   "et",
	"finnish":    "fi",
	"french":     "fr",
	"german":     "de",
	"greek":      "el",
	"hebrew":     "he",
	"hindi":      "hi",
	"hungarian":  "hu",
	"indonesian": "id",
	"italian":    "it",
	"japanese":   "ja",
	"korean":     "ko",
	"latvian":    "lv",
	"lithuanian": "lt",
	"norwegian":  "no",
	"persian":    "fa",
	"polish":     "pl",
	"portuguese": "pt",
	"romanian":   "ro",
	"russian":    "ru",
	"serbian":    "sr",
	"slovak":     "sk",
	"slovenian":  "sl",
	"spanish":    "es",
	"swahili":    "sw",
	"swedish":    "sv",
	"thai":       "th",
	"turkish":    "tr",
	"ukrainian":  "uk",
	"urdu":       "ur",
	"vietnamese": "vi",
}

// UnknownLanguage is the sentinel returned when detection or validation
// fails.
const UnknownLanguage = "unknown"

// IsKnownLanguage reports whether name is in the known-language list.
// Matching is case-insensitive.
func IsKnownLanguage(name string) bool {
	_, ok := languageCodes[strings.ToLower(name)]
	return ok
}

// CodeForLanguage returns the ISO 639-1 code for a known language name,
// or UnknownLanguage when the name is not in the list.
func CodeForLanguage(name string) string {
	if code, ok := languageCodes[strings.ToLower(name)]; ok {
		return code
	}
	return UnknownLanguage
}
