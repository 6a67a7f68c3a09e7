// Package api is the HTTP client for the slides server. It keeps the
// session token from login and attaches it to every later request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
)

// ErrUnauthorized is returned when the server rejects the session
// token, login is required (again).
var ErrUnauthorized = errors.New("unauthorized")

type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 60 * time.Second},
		baseURL: baseURL,
	}
}

// Token returns the current session token, empty before login.
func (c *Client) Token() string { return c.token }

type apiResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	ID      string `json:"id"`
	Token   string `json:"token"`
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*apiResponse, int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	var out apiResponse
	if len(raw) > 0 {
		// Non-JSON bodies (e.g. middleware rejections) fall through with
		// the status code alone.
		_ = json.Unmarshal(raw, &out)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &out, resp.StatusCode, ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		msg := out.Msg
		if msg == "" {
			msg = string(raw)
		}
		return &out, resp.StatusCode, fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
	}
	return &out, resp.StatusCode, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	_, _, err := c.do(ctx, http.MethodPost, "/api/signup", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	return err
}

// Login authenticates and stores the session token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) error {
	out, _, err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if out.Token == "" {
		return errors.New("login response carried no token")
	}
	c.token = out.Token
	return nil
}

// CreatePresentation makes a new empty presentation and returns its id.
func (c *Client) CreatePresentation(ctx context.Context) (string, error) {
	out, _, err := c.do(ctx, http.MethodPost, "/api/presentation", map[string]any{})
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// Presentation is the wire shape of one presentation record.
type Presentation struct {
	ID                string    `json:"id"`
	ContentInput      *string   `json:"content_input"`
	SystemInstruction *string   `json:"system_instruction"`
	Tone              *string   `json:"tone"`
	Verbosity         *int      `json:"verbosity"`
	NoOfSlides        *int      `json:"no_of_slides"`
	GeneratedContent  *string   `json:"generated_content"`
	CreatedAt         time.Time `json:"createdAt"`
}

// GetAll lists the authenticated user's presentations.
func (c *Client) GetAll(ctx context.Context) ([]Presentation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/get-all", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var out struct {
		Presentations []Presentation `json:"presentations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Presentations, nil
}

// Get fetches one presentation by id.
func (c *Client) Get(ctx context.Context, id string) (*Presentation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/presentation/"+id, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var out struct {
		Presentation Presentation `json:"presentation"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out.Presentation, nil
}

// Delete removes a presentation.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, _, err := c.do(ctx, http.MethodDelete, "/api/presentation/"+id, nil)
	return err
}

// SaveInput stores the source content, instructions, and slide count.
func (c *Client) SaveInput(ctx context.Context, id, content, instructions string, slideCount int) error {
	payload := map[string]any{
		"id": id,
		"data": map[string]string{
			"content":      content,
			"instructions": instructions,
		},
	}
	if slideCount > 0 {
		payload["slideCount"] = slideCount
	}
	_, _, err := c.do(ctx, http.MethodPost, "/api/input", payload)
	return err
}

// SetTone stores the calibration tone.
func (c *Client) SetTone(ctx context.Context, id, tone string) error {
	_, _, err := c.do(ctx, http.MethodPost, "/api/set-calibrate-tone", map[string]string{
		"id":   id,
		"tone": tone,
	})
	return err
}

// SetVerbosity stores the calibration verbosity level.
func (c *Client) SetVerbosity(ctx context.Context, id string, level int) error {
	if !models.ValidVerbosity(level) {
		return fmt.Errorf("verbosity must be between %d and %d", models.VerbosityMin, models.VerbosityMax)
	}
	_, _, err := c.do(ctx, http.MethodPost, "/api/set-calibrate-verbosity", map[string]any{
		"id":        id,
		"verbosity": level,
	})
	return err
}

// Generate asks the server to run slide generation for the
// presentation. All inputs must have been saved first.
func (c *Client) Generate(ctx context.Context, id string) error {
	_, _, err := c.do(ctx, http.MethodPost, "/api/generate-slides", map[string]any{
		"id":   id,
		"data": map[string]any{},
	})
	return err
}

// SaveDeck uploads an edited deck, replacing the stored generated
// content. Satisfies the deck session's saver interface.
func (c *Client) SaveDeck(ctx context.Context, id, rawDeck string) error {
	_, _, err := c.do(ctx, http.MethodPut, "/api/presentation/"+id, map[string]string{
		"generated_content": rawDeck,
	})
	return err
}
