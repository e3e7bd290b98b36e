package router

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	RegisterRoutes(e)
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRegisterRoutes_OnlyHealthz(t *testing.T) {
	routes := newEcho().Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/healthz", routes[0].Path)
}

func TestHealthz_Repeatable(t *testing.T) {
	e := newEcho()
	first := serve(e, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, first.Code)

	for i := 0; i < 5; i++ {
		rec := serve(e, http.MethodGet, "/healthz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, first.Body.String(), rec.Body.String())
	}
}

func TestHealthz_Concurrent(t *testing.T) {
	e := newEcho()
	const n = 64

	var wg sync.WaitGroup
	codes := make([]int, n)
	bodies := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := serve(e, http.MethodGet, "/healthz")
			codes[i] = rec.Code
			bodies[i] = rec.Body.String()
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.Equal(t, http.StatusOK, codes[i])
		assert.JSONEq(t, `{"ok":true,"data":null}`, bodies[i])
	}
}

func TestUnknownPath_NotFound(t *testing.T) {
	e := newEcho()
	for _, p := range []string{"/", "/health", "/healthz/extra", "/v1/healthz"} {
		rec := serve(e, http.MethodGet, p)
		assert.Equal(t, http.StatusNotFound, rec.Code, p)
	}
}

func TestHealthz_WrongMethod(t *testing.T) {
	rec := serve(newEcho(), http.MethodPost, "/healthz")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz_HeadNotRegistered(t *testing.T) {
	rec := serve(newEcho(), http.MethodHead, "/healthz")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
