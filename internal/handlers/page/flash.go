package page

import (
	"net/http"
	"net/url"
)

const flashCookieName = "flash"

const (
	flashCreated    = "Todo created successfully!"
	flashUpdated    = "Todo updated successfully!"
	flashDeleted    = "Todo deleted successfully!"
	flashResolved   = "Todo marked as resolved!"
	flashUnresolved = "Todo marked as unresolved!"
)

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending message and expires the cookie so it is shown once.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}

	return message
}
