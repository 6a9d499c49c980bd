package handler

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/sanyco86/sample-app/internal/http/view"
)

const (
	flashCookie      = "flash"
	forwardingCookie = "forwarding_url"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

func setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending flash and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) *view.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	expireCookie(w, flashCookie)

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(string(raw), "|")
	if !ok || message == "" {
		return nil
	}

	return &view.Flash{Kind: kind, Message: message}
}

func storeLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     forwardingCookie,
		Value:    r.URL.RequestURI(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popLocation returns the stored location or fallback. Only local paths are
// honoured.
func popLocation(w http.ResponseWriter, r *http.Request, fallback string) string {
	cookie, err := r.Cookie(forwardingCookie)
	if err != nil {
		return fallback
	}
	expireCookie(w, forwardingCookie)

	location := cookie.Value
	if !strings.HasPrefix(location, "/") || strings.HasPrefix(location, "//") {
		return fallback
	}
	return location
}

func expireCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
