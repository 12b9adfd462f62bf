package collector_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobiledetect/pkg/collector"
	"github.com/dmitrymomot/mobiledetect/pkg/devicedetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/requestid"
)

const uaIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"

func serve(t *testing.T, c *collector.Collector, target string, status int) *httptest.ResponseRecorder {
	t.Helper()

	var token string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = collector.TokenFromContext(r.Context())
		w.WriteHeader(status)
	})

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set("User-Agent", uaIPhone)
	rec := httptest.NewRecorder()
	devicedetect.New(nil).Middleware(c.Middleware(next)).ServeHTTP(rec, r)

	assert.Equal(t, token, rec.Header().Get(collector.TokenHeader))
	return rec
}

func TestMiddleware_RecordsProfile(t *testing.T) {
	t.Parallel()

	store := collector.NewMemoryStore(10)
	c := collector.New(collector.WithStore(store))

	rec := serve(t, c, "http://testsite.com/news?id=1", http.StatusTeapot)
	token := rec.Header().Get(collector.TokenHeader)
	_, err := uuid.Parse(token)
	require.NoError(t, err)

	p, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, p.Method)
	assert.Equal(t, "http://testsite.com/news?id=1", p.URL)
	assert.Equal(t, http.StatusTeapot, p.StatusCode)
	assert.Equal(t, uaIPhone, p.UserAgent)
	assert.Equal(t, "Safari 14.0 on iOS (mobile)", p.Device)
	assert.Equal(t, deviceview.ViewMobile, p.Data.CurrentView)
	assert.False(t, p.Time.IsZero())
}

type failingStore struct{ collector.Store }

func (failingStore) Save(context.Context, collector.Profile) error { return errors.New("down") }

func TestMiddleware_StoreFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	c := collector.New(collector.WithStore(failingStore{}))
	rec := serve(t, c, "http://testsite.com/", http.StatusOK)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	c := collector.New()
	token := serve(t, c, "http://testsite.com/page?a=<b>", http.StatusOK).Header().Get(collector.TokenHeader)
	h := c.Handler()

	t.Run("panel", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+token, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		body := rec.Body.String()
		assert.Contains(t, body, `<strong class="current-view">mobile</strong>`)
		assert.Contains(t, body, "Switch to Full")
		assert.NotContains(t, body, "<b>")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/"+token, nil)
		r.Header.Set("Accept", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)

		require.Equal(t, http.StatusOK, rec.Code)
		var p collector.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, token, p.Token)
		assert.Len(t, p.Data.Views, 3)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?limit=5", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var list []collector.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 1)
		assert.Equal(t, token, list[0].Token)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?limit=x", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := collector.ConnectRedis(context.Background(), collector.RedisConfig{URL: "mysql://localhost"})
	assert.ErrorIs(t, err, collector.ErrInvalidRedisURL)
}

func TestMiddleware_RequestID(t *testing.T) {
	t.Parallel()

	store := collector.NewMemoryStore(10)
	c := collector.New(collector.WithStore(store))
	h := requestid.Middleware(devicedetect.New(nil).Middleware(c.Middleware(http.NotFoundHandler())))

	r := httptest.NewRequest(http.MethodGet, "http://testsite.com/", nil)
	r.Header.Set(requestid.Header, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	p, err := store.Get(context.Background(), rec.Header().Get(collector.TokenHeader))
	require.NoError(t, err)
	assert.Equal(t, "req-42", p.RequestID)

	var buf bytes.Buffer
	require.NoError(t, collector.Panel(p).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "Request ID: req-42")
}

func TestPanel_Escaping(t *testing.T) {
	t.Parallel()

	p := collector.Profile{
		Method:     http.MethodGet,
		URL:        "/news?a=1&b=2",
		StatusCode: http.StatusOK,
		UserAgent:  `<script>alert("x")</script>`,
		Data: collector.Data{
			Views: []collector.ViewInfo{
				{Type: deviceview.ViewMobile, Label: "Mobile", Link: "javascript:alert(1)", Enabled: true},
				{Type: deviceview.ViewTablet, Label: "Tablet", Link: "http://t.testsite.com/", Enabled: false},
				{Type: deviceview.ViewDesktop, Label: "Full", Link: "/?device_view=desktop", Enabled: true, IsCurrent: true},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, collector.Panel(p).Render(context.Background(), &buf))
	body := buf.String()

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "/news?a=1&amp;b=2")
	assert.NotContains(t, body, "javascript:")
	assert.Contains(t, body, `<strong class="current-view">none</strong>`)
	assert.Contains(t, body, "served on another host")
	assert.NotContains(t, body, "Switch to Full")
	assert.NotContains(t, body, "Switch to Tablet")
}
