package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/carousel"
	"github.com/kohinoor-interiors/showroom/internal/content"
)

// handleTestimonialStream pushes the carousel position over server-sent
// events. Each connection owns a rotator started at ?start=<i>; it is stopped
// when the client goes away, so no timer outlives its viewer.
//
//	GET /testimonials/stream?start=2
//	event: testimonial
//	data: {"name":...,"index":2,"total":5,"prev":1,"next":3}
func (s *Site) handleTestimonialStream(c *gin.Context) {
	n := len(content.Testimonials)
	start, err := strconv.Atoi(c.Query("start"))
	if err != nil {
		start = 0
	}
	start = carousel.Clamp(start, n)

	rot, err := carousel.New(n, s.Interval)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if _, err := rot.Jump(start); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticks := rot.Start(c.Request.Context())
	defer rot.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("testimonial", newTestimonialView(start))
	c.Writer.Flush()

	for idx := range ticks {
		c.SSEvent("testimonial", newTestimonialView(idx))
		c.Writer.Flush()
	}
	s.Logger.Debug("testimonial stream closed", zap.Int("last_index", rot.Index()))
}
