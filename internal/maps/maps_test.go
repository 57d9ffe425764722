package maps

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates(t *testing.T) {
	assert.Equal(t, "17.4704426,78.435808", Showroom.Coordinates())
}

func TestProviderURLs(t *testing.T) {
	u, err := url.Parse(GoogleURL(Showroom))
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", u.Host)
	assert.Equal(t, "17.4704426,78.435808", u.Query().Get("query"))

	u, err = url.Parse(BingURL(Showroom))
	require.NoError(t, err)
	assert.Equal(t, "www.bing.com", u.Host)
	assert.Equal(t, Showroom.Address, u.Query().Get("q"))

	u, err = url.Parse(AppleURL(Showroom))
	require.NoError(t, err)
	assert.Equal(t, "maps.apple.com", u.Host)
	assert.Equal(t, Showroom.Address, u.Query().Get("q"))

	u, err = url.Parse(EmbedURL(Showroom))
	require.NoError(t, err)
	assert.Equal(t, "embed", u.Query().Get("output"))
	assert.Equal(t, "15", u.Query().Get("z"))
}

func TestNewWidget(t *testing.T) {
	w := NewWidget(Showroom)

	assert.Equal(t, "Kohinoor Interiors", w.MarkerTitle)
	assert.Contains(t, w.Popup, "Balanagar")
	require.Len(t, w.Links, 3)
	assert.Equal(t, "Google Maps", w.Links[0].Provider)
	assert.Equal(t, "Bing Maps", w.Links[1].Provider)
	assert.Equal(t, "Apple Maps", w.Links[2].Provider)
}
