package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/models"
	"github.com/kohinoor-interiors/showroom/internal/quote"
)

type recordingNotifier struct {
	mu   sync.Mutex
	seen []string
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, q *models.QuoteRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, q.PublicID)
	return n.err
}

func newTestServer(t *testing.T, token string) (*Server, *recordingNotifier, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth, err := NewAuth("test-secret", "admin", "hunter2")
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	srv := &Server{
		Store:          openTestStore(t),
		Notifier:       notifier,
		Auth:           auth,
		Logger:         zap.NewNop(),
		SubmitToken:    token,
		AllowedOrigins: []string{"https://kohinoorinteriors.com"},
	}
	return srv, notifier, srv.Engine()
}

func postJSON(t *testing.T, r http.Handler, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

var goodQuote = quote.Form{
	FullName:    "Sarah Johnson",
	Email:       "sarah@example.com",
	Phone:       "+1 555 123 4567",
	ProjectType: models.ProjectTypeResidential,
	Message:     "Kitchen and living room refresh.",
}

func TestSendQuoteStoresAndNotifies(t *testing.T) {
	srv, notifier, r := newTestServer(t, "")

	rr := postJSON(t, r, "/send-quote", goodQuote, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var receipt quote.Receipt
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &receipt))
	assert.Equal(t, "received", receipt.Status)
	assert.True(t, receipt.Notified)
	assert.Equal(t, []string{receipt.ID}, notifier.seen)

	stored, err := srv.Store.Get(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", stored.FullName)
	assert.True(t, stored.Notified)
}

func TestSendQuoteNotifyFailureStillAccepted(t *testing.T) {
	srv, notifier, r := newTestServer(t, "")
	notifier.err = errors.New("smtp unreachable")

	rr := postJSON(t, r, "/send-quote", goodQuote, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var receipt quote.Receipt
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &receipt))
	assert.False(t, receipt.Notified)

	stored, err := srv.Store.Get(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "smtp unreachable", stored.NotifyError)
}

func TestSendQuoteValidation(t *testing.T) {
	_, notifier, r := newTestServer(t, "")

	bad := goodQuote
	bad.Email = "sarah-at-example"
	bad.Phone = ""
	rr := postJSON(t, r, "/send-quote", bad, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Fields []quote.FieldError `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "email", body.Fields[0].Field)
	assert.Equal(t, "phone", body.Fields[1].Field)
	assert.Empty(t, notifier.seen)

	req := httptest.NewRequest(http.MethodPost, "/send-quote", bytes.NewBufferString("not json"))
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendQuoteToken(t *testing.T) {
	_, _, r := newTestServer(t, "relay-token")

	rr := postJSON(t, r, "/send-quote", goodQuote, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = postJSON(t, r, "/send-quote", goodQuote, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = postJSON(t, r, "/send-quote", goodQuote, map[string]string{"Authorization": "Bearer relay-token"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSendQuoteCORSPreflight(t *testing.T) {
	_, _, r := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/send-quote", nil)
	req.Header.Set("Origin", "https://kohinoorinteriors.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://kohinoorinteriors.com", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/send-quote", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	rr := postJSON(t, r, "/api/login", map[string]string{"username": "admin", "password": "hunter2"}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestStaffAPI(t *testing.T) {
	_, _, r := newTestServer(t, "")

	rr := postJSON(t, r, "/send-quote", goodQuote, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var receipt quote.Receipt
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &receipt))

	// Unauthenticated access is refused.
	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token := login(t, r)
	authz := map[string]string{"Authorization": "Bearer " + token}

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	rr = get("/api/quotes?pending=true")
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Data []models.QuoteRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, receipt.ID, list.Data[0].PublicID)

	rr = get("/api/quotes/" + receipt.ID)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, http.StatusNotFound, get("/api/quotes/unknown").Code)
	assert.Equal(t, http.StatusBadRequest, get("/api/quotes?limit=abc").Code)

	rr = postJSON(t, r, "/api/quotes/"+receipt.ID+"/ack", nil, authz)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = get("/api/quotes?pending=true")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Data)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, _, r := newTestServer(t, "")

	rr := postJSON(t, r, "/api/login", map[string]string{"username": "admin", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = postJSON(t, r, "/api/login", map[string]string{"username": "admin"}, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealth(t *testing.T) {
	_, _, r := newTestServer(t, "")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Status string     `json:"status"`
		Host   HostStatus `json:"host"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}
