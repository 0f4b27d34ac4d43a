package middleware

import (
	"net/http"

	"hospital-management/internal/service"

	"github.com/google/uuid"
)

// Flasher binds FlashService to the browser through the flash cookie.
type Flasher struct {
	flash      *service.FlashService
	cookieName string
	secure     bool
}

func NewFlasher(flash *service.FlashService, cookieName string, secure bool) *Flasher {
	return &Flasher{
		flash:      flash,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Add queues message for the next page this browser renders. A flash id
// cookie is issued when the request has none.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, message string) {
	flashID := ""
	if cookie, err := r.Cookie(f.cookieName); err == nil && cookie.Value != "" {
		flashID = cookie.Value
	} else {
		flashID = uuid.New().String()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     f.cookieName,
		Value:    flashID,
		Path:     "/",
		MaxAge:   int(f.flash.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	// A lost flash only drops the message; the service logs the cause.
	_ = f.flash.Add(r.Context(), flashID, message)
}

// Pop returns and clears the queued messages.
func (f *Flasher) Pop(r *http.Request) []string {
	cookie, err := r.Cookie(f.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	messages, err := f.flash.Pop(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return messages
}

// Redirect queues message, if any, and sends a 303 to target.
func (f *Flasher) Redirect(w http.ResponseWriter, r *http.Request, target, message string) {
	if message != "" {
		f.Add(w, r, message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
