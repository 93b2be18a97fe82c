// Package phonetic converts text to and from the NATO (ICAO) spelling alphabet.
//
// Letters are case-insensitive and use the official ICAO spellings ("Alfa",
// "Juliett"); digits use "Zero" through "Niner". Whitespace separates words and
// produces no code word. Decoding also accepts the common variants "Alpha",
// "Juliet" and "Nine".
package phonetic

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnsupportedRune indicates a rune with no code word.
	ErrUnsupportedRune = errors.New("phonetic: unsupported character")
	// ErrUnknownWord indicates a word that is not a code word.
	ErrUnknownWord = errors.New("phonetic: unknown code word")
)

var codeWords = map[rune]string{
	'A': "Alfa", 'B': "Bravo", 'C': "Charlie", 'D': "Delta", 'E': "Echo",
	'F': "Foxtrot", 'G': "Golf", 'H': "Hotel", 'I': "India", 'J': "Juliett",
	'K': "Kilo", 'L': "Lima", 'M': "Mike", 'N': "November", 'O': "Oscar",
	'P': "Papa", 'Q': "Quebec", 'R': "Romeo", 'S': "Sierra", 'T': "Tango",
	'U': "Uniform", 'V': "Victor", 'W': "Whiskey", 'X': "X-ray", 'Y': "Yankee",
	'Z': "Zulu",
	'0': "Zero", '1': "One", '2': "Two", '3': "Three", '4': "Four",
	'5': "Five", '6': "Six", '7': "Seven", '8': "Eight", '9': "Niner",
}

// decodeTable maps lower-cased code words, including variants, back to runes.
var decodeTable = func() map[string]rune {
	m := make(map[string]rune, len(codeWords)+4)
	for r, w := range codeWords {
		m[strings.ToLower(w)] = r
	}
	m["alpha"] = 'A'
	m["juliet"] = 'J'
	m["xray"] = 'X'
	m["nine"] = '9'

	return m
}()

// Options configures Encode.
type Options struct {
	// SkipUnknown drops unsupported runes instead of failing.
	SkipUnknown bool
}

// Option represents a functional option for Encode.
type Option func(*Options)

// WithSkipUnknown drops characters that have no code word.
func WithSkipUnknown() Option {
	return func(o *Options) {
		o.SkipUnknown = true
	}
}

// Encode returns the code word of every letter and digit in s.
func Encode(s string, opts ...Option) ([]string, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]string, 0, len(s))
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		w, ok := codeWords[unicode.ToUpper(r)]
		if !ok {
			if o.SkipUnknown {
				continue
			}
			return nil, fmt.Errorf("%w: %q at byte %d", ErrUnsupportedRune, r, i)
		}
		out = append(out, w)
	}

	return out, nil
}

// EncodeString is Encode joined with single spaces.
func EncodeString(s string, opts ...Option) (string, error) {
	words, err := Encode(s, opts...)
	if err != nil {
		return "", err
	}

	return strings.Join(words, " "), nil
}

// Decode maps code words back to upper-case letters and digits.
func Decode(words []string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(words))
	for i, w := range words {
		r, ok := decodeTable[strings.ToLower(strings.TrimSpace(w))]
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownWord, w, i)
		}
		sb.WriteRune(r)
	}

	return sb.String(), nil
}
