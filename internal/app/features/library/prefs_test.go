package library_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/learnhub/internal/app/features/library"
	"go.uber.org/zap"
)

func newPrefs(t *testing.T) *library.Prefs {
	t.Helper()
	return library.NewPrefs("0123456789abcdef0123456789abcdef", "test_prefs", "", false, zap.NewNop())
}

func roundTrip(t *testing.T, p *library.Prefs, category string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	p.SaveCategory(rec, req, category)

	next := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestPrefs_RemembersCategory(t *testing.T) {
	p := newPrefs(t)
	next := roundTrip(t, p, "multimedia")
	if got := p.Category(next); got != "multimedia" {
		t.Errorf("Category = %q, want %q", got, "multimedia")
	}
}

func TestPrefs_AllIsStorable(t *testing.T) {
	p := newPrefs(t)
	next := roundTrip(t, p, "all")
	if got := p.Category(next); got != "all" {
		t.Errorf("Category = %q, want %q", got, "all")
	}
}

func TestPrefs_RejectsUnknownCategory(t *testing.T) {
	p := newPrefs(t)
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	p.SaveCategory(rec, req, "video")
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("unknown category set %d cookies", len(cookies))
	}
}

func TestPrefs_NoCookieReadsEmpty(t *testing.T) {
	p := newPrefs(t)
	req := httptest.NewRequest("GET", "/", nil)
	if got := p.Category(req); got != "" {
		t.Errorf("Category = %q, want empty", got)
	}
}

func TestPrefs_TamperedCookieReadsEmpty(t *testing.T) {
	p := newPrefs(t)
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_prefs", Value: "not-a-signed-session"})
	if got := p.Category(req); got != "" {
		t.Errorf("Category = %q, want empty", got)
	}
}
