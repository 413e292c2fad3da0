package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	fallbackPropertyName  = "property"
	fallbackComponentName = "Component"
)

// PropertyName converts a host property key ("Has Icon#12:3") into a
// lowerCamelCase identifier ("hasIcon"). The trailing "#id" suffix the host
// appends to non-variant keys is dropped. Applying PropertyName to its own
// output returns the same string.
func PropertyName(key string) string {
	if idx := strings.LastIndex(key, "#"); idx > 0 {
		key = key[:idx]
	}
	words := splitWords(key)
	if len(words) == 0 {
		return fallbackPropertyName
	}

	var out strings.Builder
	out.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		out.WriteString(titleCase(word))
	}
	return guardIdentifier(out.String())
}

// CapitalizedName converts a display label ("icon button", "Forms/Input")
// into a PascalCase identifier ("IconButton", "FormsInput").
func CapitalizedName(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return fallbackComponentName
	}

	var out strings.Builder
	for _, word := range words {
		out.WriteString(titleCase(word))
	}
	return guardIdentifier(out.String())
}

// splitWords breaks input on anything that is not a letter or digit and on
// camelCase and letter/digit boundaries.
func splitWords(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var words []string
	for _, field := range fields {
		words = append(words, splitCamel(field)...)
	}
	return words
}

func splitCamel(input string) []string {
	var (
		words []string
		start int
		prev  rune
	)
	for i, r := range input {
		if i > 0 && isBoundary(prev, r) {
			words = append(words, input[start:i])
			start = i
		}
		prev = r
	}
	if start < len(input) {
		words = append(words, input[start:])
	}
	return words
}

func isBoundary(prev, r rune) bool {
	return (unicode.IsLower(prev) && unicode.IsUpper(r)) ||
		(unicode.IsLetter(prev) && unicode.IsDigit(r)) ||
		(unicode.IsDigit(prev) && unicode.IsLetter(r))
}

// titleCase upper-cases the first rune and keeps the rest, so acronyms
// survive and a second pass splits the output into the same words.
func titleCase(word string) string {
	if word == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(first)) + word[size:]
}

// guardIdentifier prefixes names that would start with a digit.
func guardIdentifier(name string) string {
	first, _ := utf8.DecodeRuneInString(name)
	if unicode.IsDigit(first) {
		return "_" + name
	}
	return name
}
