package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/content"
	"github.com/kohinoor-interiors/showroom/internal/maps"
	"github.com/kohinoor-interiors/showroom/internal/middleware"
	"github.com/kohinoor-interiors/showroom/internal/models"
	"github.com/kohinoor-interiors/showroom/internal/quote"
)

// submission is the outcome of one contact form post.
type submission struct {
	Status   int
	Form     quote.Form
	Notice   quote.Notice
	Category quote.Category
	Fields   []quote.FieldError
	Receipt  *quote.Receipt
}

// submit validates f and relays it. Invalid forms never reach the relay.
// On success the returned form is empty; on any failure it is the
// visitor's input, so nothing has to be typed again.
func (s *Site) submit(c *gin.Context, f quote.Form) submission {
	f = f.Normalize()

	err := f.Validate()
	var receipt *quote.Receipt
	if err == nil {
		receipt, err = s.Quotes.Send(c.Request.Context(), f)
	}
	if err == nil {
		return submission{Status: http.StatusOK, Form: f.Reset(), Notice: quote.Success, Receipt: receipt}
	}

	out := submission{
		Form:     f,
		Category: quote.Classify(err),
		Notice:   quote.NoticeForError(err),
	}
	var verr *quote.ValidationError
	if errors.As(err, &verr) {
		out.Status = http.StatusUnprocessableEntity
		out.Fields = verr.Fields
		return out
	}

	out.Status = http.StatusBadGateway
	s.Logger.Warn("quote submission failed",
		zap.String("request_id", middleware.RequestID(c.Request.Context())),
		zap.String("category", string(out.Category)),
		zap.Error(err))
	return out
}

func contactPage(c *gin.Context, sub submission) gin.H {
	errs := make(map[string]string, len(sub.Fields))
	for _, fe := range sub.Fields {
		errs[fe.Field] = fe.Message
	}
	data := gin.H{
		"Form":         sub.Form,
		"Errors":       errs,
		"ProjectTypes": models.ProjectTypes,
		"FAQs":         content.FAQs,
		"Map":          maps.NewWidget(maps.Showroom),
	}
	if sub.Status != 0 {
		notice := sub.Notice
		data["Notice"] = &notice
	}
	return page(c, "Contact", data)
}

// handleContact renders an empty form; ?projectType= preselects a known type.
func (s *Site) handleContact(c *gin.Context) {
	var sub submission
	if pt := models.ProjectType(c.Query("projectType")); pt.Valid() {
		sub.Form.ProjectType = pt
	}
	c.HTML(http.StatusOK, "contact.html", contactPage(c, sub))
}

// handleContactSubmit is the no-JavaScript path: a plain form post that
// re-renders the contact page with a notice.
func (s *Site) handleContactSubmit(c *gin.Context) {
	var f quote.Form
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "contact.html", contactPage(c, submission{
			Status: http.StatusBadRequest,
			Notice: quote.NoticeFor(quote.CategoryValidation),
		}))
		return
	}
	sub := s.submit(c, f)
	c.HTML(sub.Status, "contact.html", contactPage(c, sub))
}

// handleQuoteAPI is the same flow for the page script.
//
//	POST /api/quote
//	Body: { "fullName", "email", "phone", "projectType", "message" }
func (s *Site) handleQuoteAPI(c *gin.Context) {
	var f quote.Form
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":       false,
			"category": quote.CategoryValidation,
			"notice":   quote.NoticeFor(quote.CategoryValidation),
		})
		return
	}

	sub := s.submit(c, f)
	body := gin.H{
		"ok":     sub.Status == http.StatusOK,
		"notice": sub.Notice,
		"form":   sub.Form,
	}
	if sub.Category != "" {
		body["category"] = sub.Category
	}
	if len(sub.Fields) > 0 {
		body["fields"] = sub.Fields
	}
	if sub.Receipt != nil && sub.Receipt.ID != "" {
		body["id"] = sub.Receipt.ID
	}
	c.JSON(sub.Status, body)
}
