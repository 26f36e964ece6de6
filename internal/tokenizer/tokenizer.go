// Package tokenizer classifies a composite track filename into index,
// title and artist fields.
//
// Filenames in GEMA track listings pack all three fields into one string,
// for example "01_02_TRACK_ONE_Artist_Name.wav": a digit-bearing index
// section, an all-uppercase title section and a mixed-case artist section,
// joined by underscores. A four-state scanner walks the tokens left to
// right and routes each one to the field the current state dictates.
package tokenizer

import (
	"strings"
	"unicode"
)

// Fields is the classification result for one filename. Every input
// produces a result; fields that never receive a token stay empty.
type Fields struct {
	// Index is the lowercased, underscore-joined index token sequence.
	Index string

	// Title is the lowercased, space-joined title token sequence.
	Title string

	// Artist is the lowercased, space-joined artist token sequence.
	Artist string
}

// state is the scanner state. The zero value is the initial state.
type state int

const (
	// beforeDigit accumulates into index until a digit-bearing token is seen.
	beforeDigit state = iota

	// afterDigit accumulates into index until an uppercase token starts
	// the title. Trailing non-uppercase tokens therefore land in index,
	// not artist, when no title ever starts.
	afterDigit

	// inTitle accumulates uppercase tokens; the first non-uppercase token
	// starts the artist.
	inTitle

	// inArtist takes every remaining token.
	inArtist
)

// target is the field a token is routed to.
type target int

const (
	toIndex target = iota
	toTitle
	toArtist
)

// transition is the pure state-transition function: given the current
// state and the next token it yields the successor state and the field
// the token belongs to.
func transition(s state, token string) (state, target) {
	switch s {
	case beforeDigit:
		if containsDigit(token) {
			return afterDigit, toIndex
		}
		return beforeDigit, toIndex
	case afterDigit:
		if isUpperToken(token) {
			return inTitle, toTitle
		}
		return afterDigit, toIndex
	case inTitle:
		if isUpperToken(token) {
			return inTitle, toTitle
		}
		return inArtist, toArtist
	default:
		return inArtist, toArtist
	}
}

// Tokenize classifies filename into index, title and artist. It never
// fails: a filename with no digit-bearing token becomes all index, and
// title/artist stay empty.
func Tokenize(filename string) Fields {
	stem, _, _ := strings.Cut(filename, ".")
	tokens := strings.Fields(strings.ReplaceAll(stem, "_", " "))

	var index, title, artist []string
	s := beforeDigit
	for _, token := range tokens {
		var dst target
		s, dst = transition(s, token)
		switch dst {
		case toIndex:
			index = append(index, token)
		case toTitle:
			title = append(title, token)
		case toArtist:
			artist = append(artist, token)
		}
	}

	return Fields{
		Index:  strings.ToLower(strings.TrimSpace(strings.Join(index, "_"))),
		Title:  strings.ToLower(strings.TrimSpace(strings.Join(title, " "))),
		Artist: strings.ToLower(strings.TrimSpace(strings.Join(artist, " "))),
	}
}

// containsDigit reports whether the token carries at least one decimal digit.
func containsDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isUpperToken reports whether the token has at least one letter and every
// letter in it is uppercase. A token without letters is never uppercase.
func isUpperToken(token string) bool {
	hasLetter := false
	for _, r := range token {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}
