// Package client is the helpdesk front end as a library: a thin API
// client plus the in-memory session state a single-page app would
// keep. The bearer token travels in a context value threaded into
// every call; there is no package-level token state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deskflow/helpdesk/internal/api/dto"
	"github.com/deskflow/helpdesk/internal/domain"
)

type tokenKey struct{}

// WithToken returns a context carrying the bearer credential.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext retrieves the credential placed by WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// APIError is a non-2xx response decoded from the server's uniform
// {"message": "..."} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the helpdesk REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Login exchanges credentials for a token and the authenticated user.
func (c *Client) Login(ctx context.Context, email string, role domain.Role, password string) (*domain.User, string, error) {
	var resp dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    email,
		Role:     role,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// Tickets fetches the full ticket collection, newest first.
func (c *Client) Tickets(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	if err := c.do(ctx, http.MethodGet, "/api/tickets", nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Ticket fetches one ticket by id.
func (c *Client) Ticket(ctx context.Context, id string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := c.do(ctx, http.MethodGet, "/api/tickets/"+id, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Users fetches the user directory.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateTicket files a new ticket.
func (c *Client) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*domain.Ticket, error) {
	var resp dto.TicketResponse
	if err := c.do(ctx, http.MethodPost, "/api/tickets", req, &resp); err != nil {
		return nil, err
	}
	return resp.Ticket, nil
}

// UpdateTicket applies a partial update.
func (c *Client) UpdateTicket(ctx context.Context, id string, req dto.UpdateTicketRequest) (*domain.Ticket, error) {
	var resp dto.TicketResponse
	if err := c.do(ctx, http.MethodPut, "/api/tickets/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Ticket, nil
}

// AddComment appends a comment to a ticket's thread.
func (c *Client) AddComment(ctx context.Context, id, text string) (*domain.Ticket, error) {
	var resp dto.TicketResponse
	if err := c.do(ctx, http.MethodPost, "/api/tickets/"+id+"/comments", dto.CreateCommentRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return resp.Ticket, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Message == "" {
			payload.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: payload.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
