// internal/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codr1/qlick/internal/models"
)

const DefaultTimeout = 10 * time.Second

// ErrStatus is wrapped by errors for non-2xx responses.
var ErrStatus = errors.New("unexpected response status")

// Client talks to the storefront HTTP API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type AddFoodRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

type ScheduleThemeRequest struct {
	ThemeName string `json:"themeName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type orderRequest struct {
	FoodID int64 `json:"foodId"`
}

type currentThemeResponse struct {
	Theme string `json:"theme"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (c *Client) Foods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := c.doJSON(ctx, http.MethodGet, "/foods", nil, &foods); err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (c *Client) AddFood(ctx context.Context, req AddFoodRequest) (models.Food, error) {
	var food models.Food
	if err := c.doJSON(ctx, http.MethodPost, "/add-food", req, &food); err != nil {
		return models.Food{}, fmt.Errorf("add food: %w", err)
	}
	return food, nil
}

func (c *Client) ScheduleTheme(ctx context.Context, req ScheduleThemeRequest) (models.ThemeSchedule, error) {
	var schedule models.ThemeSchedule
	if err := c.doJSON(ctx, http.MethodPost, "/schedule-theme", req, &schedule); err != nil {
		return models.ThemeSchedule{}, fmt.Errorf("schedule theme: %w", err)
	}
	return schedule, nil
}

// CurrentTheme returns the raw theme name the server resolved for today. The
// name is not checked against the catalog.
func (c *Client) CurrentTheme(ctx context.Context) (string, error) {
	var resp currentThemeResponse
	if err := c.doJSON(ctx, http.MethodGet, "/current-theme", nil, &resp); err != nil {
		return "", fmt.Errorf("current theme: %w", err)
	}
	return resp.Theme, nil
}

// ActiveThemeName lets the client act as a theme provider source.
func (c *Client) ActiveThemeName(ctx context.Context) (string, error) {
	return c.CurrentTheme(ctx)
}

func (c *Client) Order(ctx context.Context, foodID int64) (string, error) {
	var resp messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/order", orderRequest{FoodID: foodID}, &resp); err != nil {
		return "", fmt.Errorf("order: %w", err)
	}
	return resp.Message, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s %s returned %d: %s", ErrStatus, method, path, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
