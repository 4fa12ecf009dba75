package branchservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BranchService (календарь филиала и праздники)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BranchService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusinessCalendar получает часы работы филиала
func (c *Client) GetBusinessCalendar(ctx context.Context, branchID int64) (*BusinessCalendar, error) {
	url := fmt.Sprintf("%s/internal/branches/%d/calendar", c.baseURL, branchID)

	var calendar BusinessCalendar
	if err := c.get(ctx, url, &calendar); err != nil {
		c.log.Warn("BranchService: failed to fetch calendar for branch_id=%d: %v", branchID, err)
		return nil, err
	}

	return &calendar, nil
}

// GetHolidays получает праздничные дни филиала
func (c *Client) GetHolidays(ctx context.Context, branchID int64) (*HolidaysResponse, error) {
	url := fmt.Sprintf("%s/internal/branches/%d/holidays", c.baseURL, branchID)

	var holidays HolidaysResponse
	if err := c.get(ctx, url, &holidays); err != nil {
		c.log.Warn("BranchService: failed to fetch holidays for branch_id=%d: %v", branchID, err)
		return nil, err
	}

	return &holidays, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid branch ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return ErrBranchNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
