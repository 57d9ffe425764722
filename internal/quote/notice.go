package quote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

// Category groups failures by the message the visitor should see.
type Category string

const (
	CategoryValidation   Category = "validation"
	CategoryTimeout      Category = "timeout"
	CategoryConnectivity Category = "connectivity"
	CategoryAuth         Category = "auth"
	CategoryNotFound     Category = "not_found"
	CategoryServer       Category = "server"
	CategoryGeneric      Category = "generic"
)

// SendError is a failed relay attempt.
type SendError struct {
	Category Category
	Status   int // HTTP status, 0 when no response arrived
	Err      error
}

func (e *SendError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("send quote (%s, status %d): %v", e.Category, e.Status, e.Err)
	}
	return fmt.Sprintf("send quote (%s): %v", e.Category, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// StatusCategory maps a non-2xx HTTP status to a category.
func StatusCategory(code int) Category {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return CategoryAuth
	case code == http.StatusNotFound:
		return CategoryNotFound
	case code == http.StatusRequestTimeout, code == http.StatusGatewayTimeout:
		return CategoryTimeout
	case code >= 500:
		return CategoryServer
	}
	return CategoryGeneric
}

// Classify maps any error returned by Send to a category.
func Classify(err error) Category {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return CategoryValidation
	}
	var serr *SendError
	if errors.As(err, &serr) {
		return serr.Category
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return CategoryTimeout
	}
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return CategoryConnectivity
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return CategoryConnectivity
	}
	return CategoryGeneric
}

// Notice is the toast shown after a submission attempt.
type Notice struct {
	Kind        string `json:"kind"` // success | error
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Success is shown once the relay accepted the request.
var Success = Notice{
	Kind:        "success",
	Title:       "Quote Request Sent!",
	Description: "Thank you for your interest. We'll get back to you within 24 hours.",
}

var notices = map[Category]Notice{
	CategoryValidation: {
		Title:       "Error",
		Description: "Please fill in all required fields.",
	},
	CategoryTimeout: {
		Title:       "Request timed out",
		Description: "Our server took too long to respond. Please try again in a moment.",
	},
	CategoryConnectivity: {
		Title:       "Connection problem",
		Description: "We couldn't reach our server. Check your internet connection and try again.",
	},
	CategoryAuth: {
		Title:       "Submission not authorised",
		Description: "The quote service refused the request. Please call or email us directly.",
	},
	CategoryNotFound: {
		Title:       "Service unavailable",
		Description: "The quote service could not be found. Please call or email us directly.",
	},
	CategoryServer: {
		Title:       "Server error",
		Description: "Something went wrong on our side. Please try again later.",
	},
	CategoryGeneric: {
		Title:       "Failed to send",
		Description: "We couldn't send your request. Please try again or contact us by phone.",
	},
}

// NoticeFor returns the error notice for c; unknown categories get the
// generic message.
func NoticeFor(c Category) Notice {
	n, ok := notices[c]
	if !ok {
		n = notices[CategoryGeneric]
	}
	n.Kind = "error"
	return n
}

// NoticeForError is NoticeFor(Classify(err)), with Success for a nil error.
func NoticeForError(err error) Notice {
	if err == nil {
		return Success
	}
	return NoticeFor(Classify(err))
}
