package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLanguageNext_CyclesWithWraparound(t *testing.T) {
	require.Equal(t, LanguageUS, LanguageUA.Next())
	require.Equal(t, LanguageUA, LanguageUS.Next())
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage("ua")
	require.True(t, ok)
	require.Equal(t, LanguageUA, lang)

	lang, ok = ParseLanguage("us")
	require.True(t, ok)
	require.Equal(t, LanguageUS, lang)

	_, ok = ParseLanguage("fr")
	require.False(t, ok)

	_, ok = ParseLanguage("")
	require.False(t, ok)
}

func TestLanguageCode_RoundTrips(t *testing.T) {
	for _, lang := range []Language{LanguageUA, LanguageUS} {
		parsed, ok := ParseLanguage(lang.Code())
		require.True(t, ok)
		require.Equal(t, lang, parsed)
	}
}
