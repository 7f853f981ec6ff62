package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie holds the refresh token, scoped to the refresh endpoint.
const RefreshTokenCookie = "refresh_token"

const refreshCookiePath = "/api/v1/auth"

// CookieOptions controls the attributes of auth cookies.
type CookieOptions struct {
	Domain string
	Secure bool
}

// setAuthCookies sets the access and refresh tokens as HttpOnly,
// SameSite=Strict cookies with max-ages matching the token expiries.
func setAuthCookies(c *gin.Context, opts CookieOptions, accessToken string, accessExpiry int, refreshToken string, refreshExpiry int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenCookie, accessToken, accessExpiry, "/", opts.Domain, opts.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshExpiry, refreshCookiePath, opts.Domain, opts.Secure, true)
}

// clearAuthCookies expires both auth cookies.
func clearAuthCookies(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", opts.Domain, opts.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, refreshCookiePath, opts.Domain, opts.Secure, true)
}
