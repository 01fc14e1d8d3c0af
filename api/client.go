package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bistrohq/bistro-web/utils"
	"github.com/go-resty/resty/v2"
)

// Client talks to the remote Bistro services. The frontend owns no
// state of its own: every call relays the browser's backend session
// cookies and hands back whatever cookies the backend sets.
type Client struct {
	http *resty.Client

	Cart   *CartClient
	Orders *OrderClient
	Auth   *AuthClient
	Menu   *MenuClient
	Users  *UserClient
	Admin  *AdminClient
}

func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	c := &Client{http: httpClient}
	c.Cart = &CartClient{client: c}
	c.Orders = &OrderClient{client: c}
	c.Auth = &AuthClient{client: c}
	c.Menu = &MenuClient{client: c}
	c.Users = &UserClient{client: c}
	c.Admin = &AdminClient{client: c}
	return c
}

// Session carries the browser's backend cookies through one request
// flow and collects any Set-Cookie responses to relay back.
type Session struct {
	Cookies    []*http.Cookie
	SetCookies []*http.Cookie
}

func (s *Session) absorb(cookies []*http.Cookie) {
	if s == nil {
		return
	}
	s.SetCookies = append(s.SetCookies, cookies...)
}

// Error is a non-2xx backend response. The message comes from the
// response body when the backend sent one, verbatim for business-rule
// rejections such as duplicate usernames; it is empty otherwise so
// callers can substitute their own wording.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (c *Client) request(ctx context.Context, session *Session) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", utils.RequestID())
	if session != nil && len(session.Cookies) > 0 {
		req.SetCookies(session.Cookies)
	}
	return req
}

// check shapes one response: transport failures wrap, non-2xx becomes
// *Error with the backend's own message, cookies get relayed.
func check(resp *resty.Response, err error, session *Session) error {
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	session.absorb(resp.Cookies())
	if resp.IsError() {
		return &Error{StatusCode: resp.StatusCode(), Message: errorMessage(resp)}
	}
	return nil
}

func errorMessage(resp *resty.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		return body.Message
	}
	return ""
}
