// internal/app/features/library/prefs.go
package library

import (
	"net/http"

	"github.com/dalemusser/learnhub/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const categoryKey = "category"

// Prefs remembers a visitor's last category selection in a signed cookie
// session, so returning to the library reopens the shelf they were on.
// Nothing here identifies the visitor; it is a display preference only.
type Prefs struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewPrefs builds the preference store. An empty sessionKey gets a random
// one, which works fine for a single instance but resets preferences on
// restart; multi-instance deployments must configure a shared key.
//
// In production (secure=true) cookies are marked Secure; over plain http in
// dev they are not, so localhost still accepts them.
func NewPrefs(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) *Prefs {
	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("no session key configured; preferences reset on restart")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if sessionName == "" {
		sessionName = "learnhub_prefs"
	}
	return &Prefs{store: store, name: sessionName, log: logger}
}

// Category returns the remembered category selection, or "" when nothing
// valid is stored. A tampered or stale cookie reads as empty, never as an
// error the visitor has to see.
func (p *Prefs) Category(r *http.Request) string {
	session, err := p.store.Get(r, p.name)
	if err != nil {
		return ""
	}
	v, ok := session.Values[categoryKey].(string)
	if !ok {
		return ""
	}
	if v != "all" && !models.IsValidResourceType(v) {
		return ""
	}
	return v
}

// SaveCategory records the category selection for future visits. Unknown
// values are ignored rather than stored.
func (p *Prefs) SaveCategory(w http.ResponseWriter, r *http.Request, category string) {
	if category != "all" && !models.IsValidResourceType(category) {
		return
	}
	session, _ := p.store.Get(r, p.name)
	session.Values[categoryKey] = category
	if err := session.Save(r, w); err != nil {
		p.log.Warn("saving category preference failed", zap.Error(err))
	}
}
