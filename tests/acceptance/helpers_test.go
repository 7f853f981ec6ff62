package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"

	"github.com/secureride/booking-service/internal/dto"
)

// registerResponse mirrors the 201 register body.
type registerResponse struct {
	User              *dto.UserResponse `json:"user"`
	VerificationToken string            `json:"verification_token"`
}

func (s *Suite) newClient() *http.Client {
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	return &http.Client{Jar: jar}
}

func (s *Suite) postJSON(client *http.Client, path string, body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	resp, err := client.Post(s.BaseURL+path, "application/json", bytes.NewBuffer(payload))
	s.Require().NoError(err)
	return resp
}

func (s *Suite) getPath(client *http.Client, path string) *http.Response {
	resp, err := client.Get(s.BaseURL + path)
	s.Require().NoError(err)
	return resp
}

func (s *Suite) decode(resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// register creates an account and returns the pending user with the raw
// verification token from the response body.
func (s *Suite) register(name, email, password string) (*dto.UserResponse, string) {
	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/register", dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode, "Registration should succeed")

	var body registerResponse
	s.decode(resp, &body)
	return body.User, body.VerificationToken
}

// registerAndVerify runs the full register plus verify-email flow.
func (s *Suite) registerAndVerify(name, email, password string) *dto.UserResponse {
	_, token := s.register(name, email, password)

	resp := s.postJSON(http.DefaultClient, "/api/v1/auth/verify-email", dto.VerifyEmailRequest{Token: token})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Verification should succeed")

	var user dto.UserResponse
	s.decode(resp, &user)
	return &user
}

// login authenticates on a cookie-jar client so later requests carry the
// auth cookies.
func (s *Suite) login(client *http.Client, email, password string) dto.AuthResponse {
	resp := s.postJSON(client, "/api/v1/auth/login", dto.LoginRequest{
		Email:    email,
		Password: password,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode, "Login should succeed")

	var authResp dto.AuthResponse
	s.decode(resp, &authResp)
	return authResp
}

// setRole flips an account's role directly in the database.
func (s *Suite) setRole(email, role string) {
	_, err := s.Postgres.DB.Exec(`UPDATE users SET role = $1 WHERE email = $2`, role, email)
	s.Require().NoError(err)
}

// activeClient registers, verifies, and logs in a fresh account, returning
// an authenticated client.
func (s *Suite) activeClient(name, email, password string) *http.Client {
	s.registerAndVerify(name, email, password)
	client := s.newClient()
	s.login(client, email, password)
	return client
}
