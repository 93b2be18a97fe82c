package phonetic_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/phonetic"
)

func TestEncode(t *testing.T) {
	got, err := phonetic.Encode("Go 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Golf", "Oscar", "Two"}, got)

	got, err = phonetic.Encode("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := phonetic.Encode("a-b")
	assert.ErrorIs(t, err, phonetic.ErrUnsupportedRune)

	got, err := phonetic.EncodeString("a-b!", phonetic.WithSkipUnknown())
	require.NoError(t, err)
	assert.Equal(t, "Alfa Bravo", got)
}

func TestEncodeString_AllSymbols(t *testing.T) {
	got, err := phonetic.EncodeString("jx9")
	require.NoError(t, err)
	assert.Equal(t, "Juliett X-ray Niner", got)
}

func TestDecode(t *testing.T) {
	got, err := phonetic.Decode([]string{"golf", "OSCAR", " Alpha ", "juliet", "Nine", "xray"})
	require.NoError(t, err)
	assert.Equal(t, "GOAJ9X", got)

	_, err = phonetic.Decode([]string{"Alfa", "Banana"})
	assert.ErrorIs(t, err, phonetic.ErrUnknownWord)
}

func TestRoundTrip(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	words, err := phonetic.Encode(strings.ToLower(alphabet))
	require.NoError(t, err)
	require.Len(t, words, len(alphabet))

	back, err := phonetic.Decode(words)
	require.NoError(t, err)
	assert.Equal(t, alphabet, back)
}

func ExampleEncodeString() {
	s, _ := phonetic.EncodeString("SOS 1")
	fmt.Println(s)
	// Output: Sierra Oscar Sierra One
}
