// Package server is the public marketing site: server-rendered pages, the
// contact form that relays quote requests, and the testimonial stream.
package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/carousel"
	"github.com/kohinoor-interiors/showroom/internal/content"
	"github.com/kohinoor-interiors/showroom/internal/maps"
	"github.com/kohinoor-interiors/showroom/internal/middleware"
	"github.com/kohinoor-interiors/showroom/internal/quote"
)

// QuoteSender relays a validated contact form.
type QuoteSender interface {
	Send(ctx context.Context, f quote.Form) (*quote.Receipt, error)
}

// Site renders the public pages.
type Site struct {
	Quotes QuoteSender
	Logger *zap.Logger
	// Interval is the testimonial rotation period for the live stream.
	Interval time.Duration
}

// Engine builds the gin engine with templates, static files and every route.
func (s *Site) Engine() (*gin.Engine, error) {
	if s.Interval <= 0 {
		s.Interval = carousel.DefaultInterval
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.Logger))
	r.SetHTMLTemplate(tmpl)
	if err := RegisterStaticFiles(r); err != nil {
		return nil, err
	}
	s.RegisterRoutes(r)
	return r, nil
}

// RegisterRoutes wires up every page.
func (s *Site) RegisterRoutes(r *gin.Engine) {
	r.GET("/", s.handleHome)
	r.GET("/about", s.handleAbout)
	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:slug", s.handleProject)
	for _, room := range content.Rooms {
		r.GET("/"+room.Slug, s.handleRoom)
	}
	r.GET("/contact", s.handleContact)
	r.POST("/contact", s.handleContactSubmit)
	r.POST("/api/quote", s.handleQuoteAPI)
	r.GET("/testimonials/stream", s.handleTestimonialStream)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	r.NoRoute(s.handleNotFound)
}

// page fills the fields every layout needs.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Path"] = c.Request.URL.Path
	data["Nav"] = content.Navigation
	data["Company"] = content.Kohinoor
	data["Rooms"] = content.Rooms
	return data
}

// testimonialView is one carousel position as rendered on the home page and
// sent on the stream.
type testimonialView struct {
	content.Testimonial
	Index int   `json:"index"`
	Total int   `json:"total"`
	Prev  int   `json:"prev"`
	Next  int   `json:"next"`
	Dots  []int `json:"-"`
}

func newTestimonialView(i int) testimonialView {
	n := len(content.Testimonials)
	i = carousel.Clamp(i, n)
	dots := make([]int, n)
	for k := range dots {
		dots[k] = k
	}
	return testimonialView{
		Testimonial: content.Testimonials[i],
		Index:       i,
		Total:       n,
		Prev:        carousel.Retreat(i, n),
		Next:        carousel.Advance(i, n),
		Dots:        dots,
	}
}

// testimonialIndex reads ?t=<i>&nav=next|prev. A missing or malformed t is
// treated as 0; out-of-range values wrap.
func testimonialIndex(c *gin.Context) int {
	n := len(content.Testimonials)
	i, err := strconv.Atoi(c.Query("t"))
	if err != nil {
		i = 0
	}
	i = carousel.Clamp(i, n)
	switch c.Query("nav") {
	case "next":
		i = carousel.Advance(i, n)
	case "prev":
		i = carousel.Retreat(i, n)
	}
	return i
}

func (s *Site) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", page(c, "Home", gin.H{
		"Services":    content.Services,
		"Projects":    content.Projects,
		"Testimonial": newTestimonialView(testimonialIndex(c)),
		"Map":         maps.NewWidget(maps.Showroom),
	}))
}

func (s *Site) handleAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", page(c, "About", gin.H{
		"Services": content.Services,
	}))
}

func (s *Site) handleProjects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", page(c, "Projects", gin.H{
		"Projects": content.Projects,
	}))
}

func (s *Site) handleProject(c *gin.Context) {
	p, ok := content.ProjectBySlug(c.Param("slug"))
	if !ok {
		s.handleNotFound(c)
		return
	}
	c.HTML(http.StatusOK, "project.html", page(c, p.Title, gin.H{
		"Project": p,
	}))
}

// handleRoom serves /<slug> for every room category; the route pattern is
// the slug.
func (s *Site) handleRoom(c *gin.Context) {
	room, ok := content.RoomBySlug(strings.TrimPrefix(c.FullPath(), "/"))
	if !ok {
		s.handleNotFound(c)
		return
	}
	c.HTML(http.StatusOK, "room.html", page(c, room.Title, gin.H{
		"Room": room,
	}))
}

func (s *Site) handleNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", page(c, "Page not found", gin.H{
		"Missing": c.Request.URL.Path,
	}))
}
