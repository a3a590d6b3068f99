package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/san-kum/folio/internal/content"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := New(content.Default(), Options{Seed: 42, Quiet: true})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	g := NewWithT(t)
	w := get(t, "/")

	g.Expect(w.Code).To(Equal(http.StatusOK))
	body := w.Body.String()
	g.Expect(body).To(ContainSubstring("<title>Sitesh Muduli</title>"))
	g.Expect(body).To(ContainSubstring("Data Engineer"))
	g.Expect(body).To(ContainSubstring("/splash.svg?seed=42"))
}

func TestAPIProfile(t *testing.T) {
	g := NewWithT(t)
	w := get(t, "/api/profile")

	g.Expect(w.Code).To(Equal(http.StatusOK))
	var p content.Profile
	g.Expect(json.Unmarshal(w.Body.Bytes(), &p)).To(Succeed())
	g.Expect(p.Name).To(Equal("Sitesh Muduli"))
	g.Expect(p.Skills).NotTo(BeEmpty())
}

func TestSplashSVG(t *testing.T) {
	g := NewWithT(t)
	w := get(t, "/splash.svg?tick=30&w=200&h=120")

	g.Expect(w.Code).To(Equal(http.StatusOK))
	g.Expect(w.Header().Get("Content-Type")).To(HavePrefix("image/svg+xml"))
	g.Expect(w.Body.String()).To(ContainSubstring(`width="200" height="120"`))
	g.Expect(strings.Count(w.Body.String(), "<circle")).To(BeNumerically(">", 0))
}

func TestSplashIsDeterministic(t *testing.T) {
	g := NewWithT(t)
	a := get(t, "/splash.svg?tick=5&seed=9").Body.String()
	b := get(t, "/splash.svg?tick=5&seed=9").Body.String()
	c := get(t, "/splash.svg?tick=6&seed=9").Body.String()

	g.Expect(a).To(Equal(b))
	g.Expect(a).NotTo(Equal(c))
}

func TestSplashRejectsBadParams(t *testing.T) {
	for _, path := range []string{
		"/splash.svg?tick=-1",
		"/splash.svg?tick=100001",
		"/splash.svg?tick=abc",
		"/splash.svg?seed=x",
		"/splash.svg?w=0",
		"/splash.svg?h=5000",
		"/splash.svg?format=png",
	} {
		if w := get(t, path); w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestHealthz(t *testing.T) {
	g := NewWithT(t)
	w := get(t, "/healthz")
	g.Expect(w.Code).To(Equal(http.StatusOK))
	g.Expect(w.Body.String()).To(ContainSubstring(`"ok"`))
}
