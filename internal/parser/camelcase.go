package parser

import "strings"

// CamelCase converts a canonical long-flag token into the key under which
// its bound value is stored: words are split on dashes, and every word
// after the first has its first letter uppercased ("dry-run" => "dryRun").
func CamelCase(name string) string {
	words := strings.Split(name, "-")

	key := words[0]

	for _, word := range words[1:] {
		if word == "" {
			continue
		}

		key += strings.ToUpper(word[:1]) + word[1:]
	}

	return key
}
