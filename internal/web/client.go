package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/respond"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/middleware"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
)

// APIError is a non-2xx answer from the booking API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: %d %s", e.Status, e.Message)
}

// BookingClient calls the booking API's guest booking endpoint.
type BookingClient struct {
	baseURL string
	http    *http.Client
}

// NewBookingClient returns a client for the API rooted at baseURL.
func NewBookingClient(baseURL string, httpClient *http.Client) *BookingClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BookingClient{baseURL: baseURL, http: httpClient}
}

// CreateBooking submits a guest booking. API rejections come back as *APIError.
func (c *BookingClient) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingSummary, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return dto.BookingSummary{}, fmt.Errorf("marshal booking: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookings/book", bytes.NewReader(body))
	if err != nil {
		return dto.BookingSummary{}, fmt.Errorf("build booking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if id, ok := middleware.RequestIDFrom(ctx); ok {
		httpReq.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return dto.BookingSummary{}, fmt.Errorf("booking request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return dto.BookingSummary{}, fmt.Errorf("read booking response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var apiErr respond.ErrorBody
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = "Booking failed"
		}
		return dto.BookingSummary{}, &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	var out dto.CreateBookingResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return dto.BookingSummary{}, fmt.Errorf("decode booking response: %w", err)
	}
	return out.Booking, nil
}
