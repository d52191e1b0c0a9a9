package gcalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

// Client клиент для работы с API внешнего календаря
type Client struct {
	baseURL    string
	httpClient *http.Client
	loc        *time.Location
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		loc: time.Local,
		log: log,
	}
}

// CreateEvent создает событие календаря для бронирования и возвращает ID события
func (c *Client) CreateEvent(ctx context.Context, booking *domain.Booking) (string, error) {
	payload, err := eventFromBooking(booking, c.loc)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/calendars/primary/events", c.baseURL)
	resp, err := c.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var event EventResponse
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if event.ID == "" {
		return "", fmt.Errorf("%w: empty event id", ErrInvalidResponse)
	}

	c.log.Info("CreateEvent: created calendar event id=%s for booking id=%s", event.ID, booking.ID)
	return event.ID, nil
}

// UpdateEvent обновляет существующее событие календаря
func (c *Client) UpdateEvent(ctx context.Context, eventID string, booking *domain.Booking) error {
	payload, err := eventFromBooking(booking, c.loc)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/calendars/primary/events/%s", c.baseURL, eventID)
	resp, err := c.do(ctx, http.MethodPut, url, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// DeleteEvent удаляет событие календаря
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	url := fmt.Sprintf("%s/calendars/primary/events/%s", c.baseURL, eventID)
	resp, err := c.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrEventNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

func (c *Client) do(ctx context.Context, method, url string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	return resp, nil
}
