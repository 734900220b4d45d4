// Package tokenbuilder turns one input level's word list into the
// (name_token, type_token) pair the word index and the type filter
// key off of.
package tokenbuilder

import "strings"

// haltWords stop the right-to-left scan once the buffer already holds
// content: the halt word and every word to its left are dropped, so
// "Foo or Bar" builds its token from "Bar" alone.
var haltWords = map[string]bool{
	"or":  true,
	"now": true,
}

// Result is the outcome of building tokens for one input level at one
// skip offset.
type Result struct {
	NameToken string
	HasName   bool
	TypeToken string
	HasType   bool
}

// Build concatenates words[wordsToSkip:] right-to-left into a name
// token, peeling off a trailing run of type words into a separate type
// token. See spec §4.2 for the exact algorithm.
func Build(words []string, wordsToSkip int, abbreviations map[string]string, typeWords map[string]bool) Result {
	multiWord := len(words)-wordsToSkip > 1

	var buffer []string
	var result Result
	nameWordSeen := false

	for i := len(words) - 1; i >= wordsToSkip; i-- {
		word := words[i]
		if word == "" {
			continue
		}
		if len(buffer) > 0 && haltWords[word] {
			break
		}

		useWord := word
		if multiWord {
			if expansion, ok := abbreviations[word]; ok {
				useWord = expansion
			}
		}

		if !IsTypeWord(word, abbreviations, typeWords) {
			if !nameWordSeen && len(buffer) > 0 {
				result.TypeToken = strings.Join(buffer, "")
				result.HasType = true
				buffer = nil
			}
			nameWordSeen = true
		}

		buffer = append([]string{useWord}, buffer...)
	}

	if len(buffer) > 0 {
		result.NameToken = strings.Join(buffer, "")
		result.HasName = true
	}
	return result
}

// IsTypeWord reports whether word (after abbreviation expansion) is a
// member of the type-word set.
func IsTypeWord(word string, abbreviations map[string]string, typeWords map[string]bool) bool {
	candidate := word
	if expansion, ok := abbreviations[word]; ok {
		candidate = expansion
	}
	return typeWords[candidate]
}
