// Package maps describes the showroom location and builds links to the
// external map providers the site sends visitors to.
package maps

import (
	"net/url"
	"strconv"
)

// Location is a single pinned place.
type Location struct {
	Name    string
	Address string
	Lat     float64
	Lng     float64
	Zoom    int
}

// Showroom is the company's walk-in location in Balanagar, Hyderabad.
var Showroom = Location{
	Name:    "Kohinoor Interiors",
	Address: "Kohinoor Interiors, MSR Complex, beside HDFC Bank, SVCIE, Balanagar, Hyderabad, Telangana 500037",
	Lat:     17.4704426,
	Lng:     78.435808,
	Zoom:    15,
}

// Coordinates formats the location as "lat,lng".
func (l Location) Coordinates() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// GoogleURL opens the location in Google Maps.
func GoogleURL(l Location) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", l.Coordinates())
	return "https://www.google.com/maps/search/?" + q.Encode()
}

// DirectionsURL starts Google Maps navigation towards the location.
func DirectionsURL(l Location) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", l.Coordinates())
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

// BingURL opens an address search in Bing Maps.
func BingURL(l Location) string {
	q := url.Values{}
	q.Set("q", l.Address)
	return "https://www.bing.com/maps?" + q.Encode()
}

// AppleURL opens an address search in Apple Maps.
func AppleURL(l Location) string {
	q := url.Values{}
	q.Set("q", l.Address)
	return "https://maps.apple.com/?" + q.Encode()
}

// EmbedURL is the iframe source for the embedded map.
func EmbedURL(l Location) string {
	q := url.Values{}
	q.Set("q", l.Coordinates())
	q.Set("z", strconv.Itoa(l.Zoom))
	q.Set("output", "embed")
	return "https://www.google.com/maps?" + q.Encode()
}

// ProviderLink is one "open in ..." link-out.
type ProviderLink struct {
	Provider string
	URL      string
}

// Widget is the view model rendered for the map block: one marker, one popup
// and the provider link-outs.
type Widget struct {
	EmbedURL      string
	MarkerTitle   string
	Popup         string
	DirectionsURL string
	Links         []ProviderLink
}

// NewWidget builds the widget for l.
func NewWidget(l Location) Widget {
	return Widget{
		EmbedURL:      EmbedURL(l),
		MarkerTitle:   l.Name,
		Popup:         l.Address,
		DirectionsURL: DirectionsURL(l),
		Links: []ProviderLink{
			{Provider: "Google Maps", URL: GoogleURL(l)},
			{Provider: "Bing Maps", URL: BingURL(l)},
			{Provider: "Apple Maps", URL: AppleURL(l)},
		},
	}
}
