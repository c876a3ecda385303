package models

import "strings"

// Languages is the list offered by the language pickers, in display order.
var Languages = []string{
	"Afrikaans",
	"Albanian",
	"Arabic",
	"Armenian",
	"Basque",
	"Bengali",
	"Bulgarian",
	"Catalan",
	"Chinese",
	"Croatian",
	"Czech",
	"Danish",
	"Dutch",
	"English",
	"Estonian",
	"Finnish",
	"French",
	"Georgian",
	"German",
	"Greek",
	"Gujarati",
	"Hebrew",
	"Hindi",
	"Hungarian",
	"Icelandic",
	"Indonesian",
	"Irish",
	"Italian",
	"Japanese",
	"Korean",
	"Latvian",
	"Lithuanian",
	"Macedonian",
	"Malay",
	"Maltese",
	"Mongolian",
	"Nepali",
	"Norwegian",
	"Persian",
	"Polish",
	"Portuguese",
	"Punjabi",
	"Romanian",
	"Russian",
	"Serbian",
	"Slovak",
	"Slovenian",
	"Spanish",
	"Swahili",
	"Swedish",
	"Tamil",
	"Telugu",
	"Thai",
	"Turkish",
	"Ukrainian",
	"Urdu",
	"Vietnamese",
	"Welsh",
}

// LookupLanguage matches name case-insensitively and returns its canonical spelling.
func LookupLanguage(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, l := range Languages {
		if strings.EqualFold(l, name) {
			return l, true
		}
	}
	return "", false
}
