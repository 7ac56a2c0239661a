// Package lang holds the fixed set of languages the service can answer in.
package lang

import "strings"

type Code string

// Base is used whenever the caller supplies no usable language tag.
const Base Code = "en"

var supported = map[Code]string{
	"en":  "English",
	"hi":  "Hindi",
	"te":  "Telugu",
	"ta":  "Tamil",
	"kn":  "Kannada",
	"ml":  "Malayalam",
	"pa":  "Punjabi",
	"bho": "Bhojpuri",
}

// Normalize maps an arbitrary tag onto the supported set. Unknown or empty
// input resolves to Base. Total over all inputs and idempotent.
func Normalize(raw string) Code {
	c := Code(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := supported[c]; ok {
		return c
	}
	return Base
}

// DisplayName returns the English name of a supported code; input outside
// the set falls back to the base language's name.
func DisplayName(c Code) string {
	if name, ok := supported[c]; ok {
		return name
	}
	return supported[Base]
}

// Codes lists the supported codes, for validation and tests.
func Codes() []Code {
	out := make([]Code, 0, len(supported))
	for c := range supported {
		out = append(out, c)
	}
	return out
}
