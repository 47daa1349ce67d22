package dialogue

import (
	"strings"
	"unicode"
)

// Detail is one key/value pair of the response detail block. A slice keeps
// the rendering order deterministic.
type Detail struct {
	Key   string
	Value string
}

// Format renders the outbound reply: the message alone, or the message
// followed by a Details block listing each pair on its own line.
func Format(message string, details []Detail) string {
	if len(details) == 0 {
		return message
	}

	var b strings.Builder
	b.WriteString(message)
	b.WriteString("\n\nDetails:")
	for _, d := range details {
		b.WriteString("\n")
		b.WriteString(d.Key)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

// CapitalizeWords uppercases the first letter of each word and lowercases
// the rest, for display of user-typed slot values.
func CapitalizeWords(sentence string) string {
	words := strings.Fields(sentence)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
