package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenFromLink(t *testing.T) {
	cases := []struct {
		name string
		link string
		want string
	}{
		{"fragment", "http://localhost:3000/#data=eyJ9", "eyJ9"},
		{"fragment keeps escapes", "https://lg.example/#data=Leonard%20Souza,M,90", "Leonard%20Souza,M,90"},
		{"query from old links", "localhost:3000/?data=Leonard%20Souza,M,200,182.88,13,M,38,6600,1", "Leonard Souza,M,200,182.88,13,M,38,6600,1"},
		{"fragment wins over query", "https://lg.example/?data=old#data=new", "new"},
		{"no token", "https://lg.example/", ""},
		{"other fragment", "https://lg.example/#about", ""},
		{"unparseable", "://bad", ""},
		{"blank", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenFromLink(tc.link))
		})
	}
}

func TestShareLink(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/#data=abc", shareLink("http://localhost:3000/", "abc"))
	assert.Equal(t, "http://localhost:3000/#data=abc", shareLink("http://localhost:3000/#data=old", "abc"))
}

// TestShareLink_RoundTrip: a link built from any state decodes back to it.
func TestShareLink_RoundTrip(t *testing.T) {
	for _, s := range []appState{defaultState(), completeState(), customState()} {
		link := shareLink(defaultShareURL, encodeState(s))
		assert.Equal(t, s, decodeState(tokenFromLink(link)))
	}

	s := completeState()
	s.Name = "Leonard Souza"
	link := shareLink(defaultShareURL, encodeLegacyState(s))
	assert.Equal(t, s.userProfile, decodeState(tokenFromLink(link)).userProfile)
}
