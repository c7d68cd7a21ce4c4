package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func tracingMiddleware(name string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+"-in")
			next.ServeHTTP(w, r)
			*trace = append(*trace, name+"-out")
		})
	}
}

func TestChain_Order(t *testing.T) {
	var trace []string

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
		w.WriteHeader(http.StatusOK)
	})

	chained := Chain(
		tracingMiddleware("outer", &trace),
		tracingMiddleware("inner", &trace),
	)(handler)

	chained.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	got := strings.Join(trace, " ")
	want := "outer-in inner-in handler inner-out outer-out"
	if got != want {
		t.Errorf("execution order %q, want %q", got, want)
	}
}

func TestChain_Empty(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Chain()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("handler was not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
