package wiz_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wiz"
)

func TestSend(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.Send([]byte("hello"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
}

func TestSendAppliesPendingStatus(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.SetStatus(http.StatusCreated).SendText("made")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "made", rec.Body.String())
}

func TestSendHelpersSetContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		send func(c *wiz.Context)
		want string
	}{
		{
			name: "text",
			send: func(c *wiz.Context) { c.SendText("a") },
			want: "text/plain; charset=UTF-8",
		},
		{
			name: "html",
			send: func(c *wiz.Context) { c.SendHTML("<p>a</p>") },
			want: "text/html; charset=UTF-8",
		},
		{
			name: "json",
			send: func(c *wiz.Context) { c.SendJSON(`{"a":1}`) },
			want: "application/json; charset=UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, rec := newTestContext("GET", "/")
			tt.send(c)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Type"))
		})
	}
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.Redirect("/login")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String(), "redirect writes no body")
}

func TestResponseHeaders(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.SetHeader("X-Spell", "fire").
		AppendHeader("X-Spell", "ice").
		SetHeader("X-Gone", "yes").
		RemoveHeader("X-Gone")

	assert.Equal(t, []string{"fire", "ice"}, rec.Header().Values("X-Spell"))
	assert.Empty(t, rec.Header().Get("X-Gone"))
}

func TestSetContentType(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.SetContentType("application/xml").Send([]byte("<a/>"))
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
}

func TestFlushWithoutBody(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	c.SetStatus(http.StatusNoContent).Flush()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, rec.Flushed)
	assert.Empty(t, rec.Body.String())
}

func TestWritesChain(t *testing.T) {
	t.Parallel()

	c, rec := newTestContext("GET", "/")
	got := c.SetStatus(http.StatusTeapot).SetHeader("X-Pot", "short").SendText("stout")
	require.Same(t, c, got)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "stout", rec.Body.String())
}
