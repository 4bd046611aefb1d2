package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
// Cookies must be set before calling WriteJSON.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteCookie translates a cookie directive into a Set-Cookie header.
// A directive with Clear set expires the cookie immediately.
func WriteCookie(w http.ResponseWriter, c models.Cookie) {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		HttpOnly: c.HTTPOnly,
		Secure:   c.Secure,
		SameSite: sameSite(c.SameSite),
	}
	if cookie.Path == "" {
		cookie.Path = "/"
	}

	if c.Clear {
		cookie.Value = ""
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(c.MaxAge.Seconds())
	}

	http.SetCookie(w, cookie)
}

func sameSite(s models.SameSite) http.SameSite {
	switch s {
	case models.SameSiteLax:
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}
