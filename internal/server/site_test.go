package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/content"
	"github.com/kohinoor-interiors/showroom/internal/quote"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeSender records every form it is asked to relay.
type fakeSender struct {
	mu    sync.Mutex
	forms []quote.Form
	err   error
}

func (f *fakeSender) Send(_ context.Context, form quote.Form) (*quote.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forms = append(f.forms, form)
	if f.err != nil {
		return nil, f.err
	}
	return &quote.Receipt{ID: "q-123", Status: "received", Notified: true}, nil
}

func (f *fakeSender) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.forms)
}

func newTestSite(t *testing.T, sender *fakeSender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := &Site{Quotes: sender, Logger: zap.NewNop(), Interval: 10 * time.Millisecond}
	r, err := s.Engine()
	require.NoError(t, err)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPagesRender(t *testing.T) {
	r := newTestSite(t, &fakeSender{})

	paths := []string{"/", "/about", "/projects", "/contact", "/kitchen", "/bedroom", "/living"}
	for _, p := range content.Projects {
		paths = append(paths, "/projects/"+p.Slug)
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			w := get(r, p)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), content.Kohinoor.Name)
			assert.Contains(t, w.Body.String(), `src="/static/site.js"`)
		})
	}
}

func TestRoomPagesShowTheirRoom(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	for _, room := range content.Rooms {
		w := get(r, "/"+room.Slug)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>"+room.Title+" | ")
	}
}

func TestNavMarksCurrentPage(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	w := get(r, "/about")
	assert.Contains(t, w.Body.String(), `<a href="/about" class="active" aria-current="page">`)
}

func TestUnknownRoutesAre404(t *testing.T) {
	r := newTestSite(t, &fakeSender{})

	w := get(r, "/projects/floating-castle")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "/projects/floating-castle")

	w = get(r, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectPageLinksToPreselectedContact(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	p := content.Projects[0]

	w := get(r, "/projects/"+p.Slug)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), p.Title)
	assert.Contains(t, w.Body.String(), "/contact?projectType="+string(p.ProjectType))
}

func TestHomeTestimonialNavigationWraps(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	first := content.Testimonials[0]
	last := content.Testimonials[len(content.Testimonials)-1]

	tests := []struct {
		name  string
		query string
		want  content.Testimonial
		index int
	}{
		{"default", "", first, 0},
		{"prev from first", "?t=0&nav=prev", last, len(content.Testimonials) - 1},
		{"next from last", "?t=4&nav=next", first, 0},
		{"out of range wraps", "?t=7", content.Testimonials[2], 2},
		{"garbage is first", "?t=abc", first, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, "/"+tc.query)
			require.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.Contains(t, body, tc.want.Name)
			assert.Contains(t, body, `data-index="`+strconv.Itoa(tc.index)+`"`)
			assert.Equal(t, 1, strings.Count(body, "dot current"))
		})
	}
}

func TestHealthz(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	w := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestStaticAssetsServed(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	w := get(r, "/static/site.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scrollTimestamp")
}

func TestRequestIDHeaderSet(t *testing.T) {
	r := newTestSite(t, &fakeSender{})
	w := get(r, "/")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
