// services/sugar.go
package services

import "strings"

// The ESP32 display can only show spoon counts, so free-text sugar wording
// from the app is rewritten to numbers before an order reaches the device.
// An ordered slice, not a map: replacement order stays deterministic. None of
// the phrases is a substring of another, so the order does not change results.
var sugarMap = []struct {
	word   string
	spoons string
}{
	{"سادة", "0"},
	{"ع الريحة", "0.5"},
	{"مظبوط", "2"},
	{"زيادة", "3"},
}

// TranslateSugarToNumbers rewrites known sugar phrases into numeric spoon
// counts. Unknown text passes through untouched; empty notes become "0".
func TranslateSugarToNumbers(text string) string {
	if text == "" {
		return "0"
	}

	translated := text
	for _, m := range sugarMap {
		translated = strings.ReplaceAll(translated, m.word, m.spoons)
	}
	return translated
}
