package relay

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohinoor-interiors/showroom/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open("sqlite", filepath.Join(t.TempDir(), "quotes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleQuote(name string) *models.QuoteRequest {
	return &models.QuoteRequest{
		FullName:    name,
		Email:       "client@example.com",
		Phone:       "9866652824",
		ProjectType: models.ProjectTypeCommercial,
		Message:     "Office fit-out, 40 seats.",
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "")
	assert.Error(t, err)
}

func TestCreateAndGet(t *testing.T) {
	store := openTestStore(t)

	q := sampleQuote("Narayana Reddy")
	require.NoError(t, store.Create(q))
	assert.NotEmpty(t, q.PublicID)
	assert.False(t, q.ReceivedAt.IsZero())

	got, err := store.Get(q.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Narayana Reddy", got.FullName)
	assert.Equal(t, models.ProjectTypeCommercial, got.ProjectType)

	_, err = store.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListOrderAndFilter(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var ids []string
	for i, name := range []string{"first", "second", "third"} {
		q := sampleQuote(name)
		q.ReceivedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Create(q))
		ids = append(ids, q.PublicID)
	}

	all, err := store.List(false, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].FullName)
	assert.Equal(t, "first", all[2].FullName)

	_, err = store.Acknowledge(ids[2])
	require.NoError(t, err)

	pending, err := store.List(true, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "second", pending[0].FullName)

	limited, err := store.List(false, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAcknowledgeKeepsFirstTimestamp(t *testing.T) {
	store := openTestStore(t)
	q := sampleQuote("Rao")
	require.NoError(t, store.Create(q))

	first, err := store.Acknowledge(q.PublicID)
	require.NoError(t, err)
	require.NotNil(t, first.AcknowledgedAt)

	second, err := store.Acknowledge(q.PublicID)
	require.NoError(t, err)
	assert.True(t, second.Acknowledged)
	assert.WithinDuration(t, *first.AcknowledgedAt, *second.AcknowledgedAt, time.Second)

	_, err = store.Acknowledge("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkNotified(t *testing.T) {
	store := openTestStore(t)
	q := sampleQuote("Soundarya")
	require.NoError(t, store.Create(q))

	require.NoError(t, store.MarkNotified(q.PublicID, errors.New("smtp down")))
	got, err := store.Get(q.PublicID)
	require.NoError(t, err)
	assert.False(t, got.Notified)
	assert.Equal(t, "smtp down", got.NotifyError)

	require.NoError(t, store.MarkNotified(q.PublicID, nil))
	got, err = store.Get(q.PublicID)
	require.NoError(t, err)
	assert.True(t, got.Notified)
	assert.Empty(t, got.NotifyError)

	assert.ErrorIs(t, store.MarkNotified("missing", nil), ErrNotFound)
}
