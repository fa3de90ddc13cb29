package cookie

import (
	"net/http"
	"net/url"

	"newsletter-delivery/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"
	FlashCookieName       = "_flash"
)

// Flash builds the one-shot message cookie that the dashboard displays after a redirect.
// The value is query-escaped so it survives the cookie value grammar.
func Flash(cfg config.CookieConfig, message string) *http.Cookie {
	return &http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		Domain:   cfg.Domain,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: getSameSite(cfg.SameSite),
	}
}

// ReadFlash returns the decoded flash message, or "" if none was set.
func ReadFlash(c *http.Cookie) string {
	if c == nil {
		return ""
	}
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
