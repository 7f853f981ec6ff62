package acceptance

import (
	"encoding/json"
	"net/http"

	"github.com/secureride/booking-service/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jordan Reeve",
		Email:    "jordan@example.com",
		Password: "Password123",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var body registerResponse
	s.decode(resp, &body)

	s.Equal("jordan@example.com", body.User.Email)
	s.Equal("pending", string(body.User.Status))
	s.Equal("user", string(body.User.Role))
	s.NotEmpty(body.User.ID)
	s.NotEmpty(body.VerificationToken, "Registration should return a verification token")
}

func (s *Suite) TestRegister_DuplicateEmail() {
	s.register("Jordan Reeve", "duplicate@example.com", "Password123")

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jordan Clone",
		Email:    "duplicate@example.com",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	json.NewDecoder(resp.Body).Decode(&errResp)
	s.Equal("Conflict", errResp.Error)
}

func (s *Suite) TestRegister_InvalidEmail() {
	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jordan Reeve",
		Email:    "invalid-email",
		Password: "Password123",
	})
	resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestRegister_WeakPassword() {
	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     "Jordan Reeve",
		Email:    "jordan@example.com",
		Password: "alllowercase",
	})
	resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestVerifyEmail_ActivatesAccount() {
	user := s.registerAndVerify("Jordan Reeve", "verify@example.com", "Password123")

	s.Equal("active", string(user.Status))
	s.NotNil(user.EmailVerifiedAt)
}

func (s *Suite) TestVerifyEmail_TokenSingleUse() {
	_, token := s.register("Jordan Reeve", "once@example.com", "Password123")

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/verify-email", dto.VerifyEmailRequest{Token: token})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	resp = s.postJSON(http.DefaultClient, "/api/v1/auth/verify-email", dto.VerifyEmailRequest{Token: token})
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode, "A consumed token must not verify twice")
}

func (s *Suite) TestVerifyEmail_UnknownToken() {
	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/verify-email", dto.VerifyEmailRequest{
		Token: "0000000000000000000000000000000000000000000000000000000000000000",
	})
	resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestResendVerification() {
	s.register("Jordan Reeve", "resend@example.com", "Password123")

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/resend-verification", dto.ResendVerificationRequest{
		Email: "resend@example.com",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var body registerResponse
	s.decode(resp, &body)
	s.NotEmpty(body.VerificationToken)

	resp = s.postJSON(http.DefaultClient, "/api/v1/auth/verify-email", dto.VerifyEmailRequest{
		Token: body.VerificationToken,
	})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode, "The reissued token should verify the account")
}

func (s *Suite) TestLogin_BeforePendingVerification() {
	s.register("Jordan Reeve", "pending@example.com", "Password123")

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "pending@example.com",
		Password: "Password123",
	})
	resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode, "Unverified accounts must not log in")
}

func (s *Suite) TestLogin_Success() {
	s.registerAndVerify("Jordan Reeve", "login@example.com", "Password123")

	client := s.newClient()
	resp := s.postJSON(client, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "login@example.com",
		Password: "Password123",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.decode(resp, &authResp)

	s.NotEmpty(authResp.AccessToken)
	s.Equal("Bearer", authResp.TokenType)
	s.NotZero(authResp.ExpiresIn)
	s.Equal("login@example.com", authResp.User.Email)
}

func (s *Suite) TestLogin_SetsHttpOnlyCookies() {
	s.registerAndVerify("Jordan Reeve", "cookies@example.com", "Password123")

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "cookies@example.com",
		Password: "Password123",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	var accessCookie, refreshCookie *http.Cookie
	for _, c := range resp.Cookies() {
		switch c.Name {
		case "access_token":
			accessCookie = c
		case "refresh_token":
			refreshCookie = c
		}
	}

	s.Require().NotNil(accessCookie, "Login should set the access token cookie")
	s.Require().NotNil(refreshCookie, "Login should set the refresh token cookie")
	s.True(accessCookie.HttpOnly)
	s.True(refreshCookie.HttpOnly)
	s.Equal("/api/v1/auth", refreshCookie.Path, "The refresh cookie must be scoped to the auth routes")
}

func (s *Suite) TestLogin_InvalidCredentials() {
	s.registerAndVerify("Jordan Reeve", "creds@example.com", "Password123")

	// Unknown email and wrong password must be indistinguishable.
	for _, req := range []dto.LoginRequest{
		{Email: "nobody@example.com", Password: "Password123"},
		{Email: "creds@example.com", Password: "WrongPassword123"},
	} {
		resp := s.postJSON(http.DefaultClient, "/api/v1/auth/login", req)
		s.Equal(http.StatusUnauthorized, resp.StatusCode)

		var errResp dto.ErrorResponse
		s.decode(resp, &errResp)
		s.Equal("Unauthorized", errResp.Error)
	}
}

func (s *Suite) TestRefresh_RotatesToken() {
	client := s.activeClient("Jordan Reeve", "refresh@example.com", "Password123")

	resp := s.postJSON(client, "/api/v1/auth/refresh", struct{}{})
	s.Equal(http.StatusOK, resp.StatusCode)

	var authResp dto.AuthResponse
	s.decode(resp, &authResp)
	s.NotEmpty(authResp.AccessToken)
}

func (s *Suite) TestRefresh_WithoutCookie() {
	resp := s.postJSON(s.newClient(), "/api/v1/auth/refresh", struct{}{})
	resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestGetMe() {
	client := s.activeClient("Jordan Reeve", "me@example.com", "Password123")

	resp := s.getPath(client, "/api/v1/auth/me")
	s.Equal(http.StatusOK, resp.StatusCode)

	var user dto.UserResponse
	s.decode(resp, &user)
	s.Equal("me@example.com", user.Email)
	s.Equal("active", string(user.Status))
}

func (s *Suite) TestGetMe_Unauthenticated() {
	resp := s.getPath(s.newClient(), "/api/v1/auth/me")
	resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogout_InvalidatesRefreshToken() {
	client := s.activeClient("Jordan Reeve", "logout@example.com", "Password123")

	resp := s.postJSON(client, "/api/v1/auth/logout", struct{}{})
	resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	// The rotated-out cookie was cleared; a refresh now has nothing to send.
	resp = s.postJSON(client, "/api/v1/auth/refresh", struct{}{})
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}
