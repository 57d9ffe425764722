package relay

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/middleware"
	"github.com/kohinoor-interiors/showroom/internal/models"
	"github.com/kohinoor-interiors/showroom/internal/quote"
)

// notifyTimeout bounds staff notification for one request.
const notifyTimeout = 30 * time.Second

// maxListLimit caps GET /api/quotes.
const maxListLimit = 200

// Server is the quote relay.
type Server struct {
	Store          *Store
	Notifier       Notifier
	Auth           *Auth
	Logger         *zap.Logger
	SubmitToken    string
	AllowedOrigins []string
}

// Engine builds the gin engine with recovery, access logging and CORS, and
// registers every relay route.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.Logger), cors.New(s.corsConfig()))
	s.RegisterRoutes(r)
	return r
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(s.AllowedOrigins) == 0 || slices.Contains(s.AllowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.AllowedOrigins
	}
	return cfg
}

// RegisterRoutes wires up the relay API.
//
//	Public:   POST /send-quote (relay token if configured), GET /healthz, POST /api/login
//	Protected (JWT): /api/quotes*
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.POST("/send-quote", SubmitTokenMiddleware(s.SubmitToken), s.handleSendQuote)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")

	// ── Public endpoints ──────────────────────────────────────────────────────
	api.POST("/login", s.handleLogin)

	// ── JWT-protected endpoints ───────────────────────────────────────────────
	staff := api.Group("/", s.Auth.JWTMiddleware())
	{
		staff.GET("/quotes", s.handleListQuotes)
		staff.GET("/quotes/:id", s.handleGetQuote)
		staff.POST("/quotes/:id/ack", s.handleAckQuote)
	}
}

// ── Handlers ──────────────────────────────────────────────────────────────────

// handleSendQuote stores a quote request and notifies staff.
//
//	POST /send-quote
//	Body: { "fullName", "email", "phone", "projectType", "message" }
func (s *Server) handleSendQuote(c *gin.Context) {
	var form quote.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON quote request"})
		return
	}
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		var verr *quote.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote request", "fields": verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := &models.QuoteRequest{
		FullName:    form.FullName,
		Email:       form.Email,
		Phone:       form.Phone,
		ProjectType: form.ProjectType,
		Message:     form.Message,
		RemoteAddr:  c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
	}
	if err := s.Store.Create(q); err != nil {
		s.Logger.Error("storing quote request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store quote request"})
		return
	}

	// The request is accepted once stored; a mail failure is recorded for
	// staff to see in the API instead of being reported to the visitor.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), notifyTimeout)
	defer cancel()
	notifyErr := s.Notifier.Notify(ctx, q)
	if notifyErr != nil {
		s.Logger.Warn("quote notification failed",
			zap.String("id", q.PublicID),
			zap.String("request_id", middleware.RequestID(c.Request.Context())),
			zap.Error(notifyErr))
	}
	if err := s.Store.MarkNotified(q.PublicID, notifyErr); err != nil {
		s.Logger.Error("recording notification outcome", zap.String("id", q.PublicID), zap.Error(err))
	}

	c.JSON(http.StatusOK, quote.Receipt{
		ID:       q.PublicID,
		Status:   "received",
		Notified: notifyErr == nil,
	})
}

// handleLogin accepts username + password and returns a signed JWT.
//
//	POST /api/login
//	Body: { "username": "admin", "password": "admin" }
func (s *Server) handleLogin(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	if !s.Auth.CheckCredentials(body.Username, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := s.Auth.GenerateJWT(body.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
		"type":       "Bearer",
	})
}

// handleListQuotes returns stored requests, newest first.
//
//	GET /api/quotes?pending=true&limit=50
func (s *Server) handleListQuotes(c *gin.Context) {
	pending := c.Query("pending") == "true"

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = min(n, maxListLimit)
	}

	quotes, err := s.Store.List(pending, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": quotes})
}

// handleGetQuote returns one request by public id.
func (s *Server) handleGetQuote(c *gin.Context) {
	q, err := s.Store.Get(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": q})
}

// handleAckQuote marks a request as followed up.
func (s *Server) handleAckQuote(c *gin.Context) {
	q, err := s.Store.Acknowledge(c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.Logger.Info("quote acknowledged", zap.String("id", q.PublicID), zap.String("by", c.GetString("username")))
	c.JSON(http.StatusOK, gin.H{"data": q})
}

// handleHealth reports liveness plus host status (no auth, for probes).
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"time":           time.Now().UTC(),
		"relay_uptime_s": int64(time.Since(processStart).Seconds()),
		"host":           CollectHostStatus(),
	})
}
