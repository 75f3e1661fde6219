package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"timeclock/internal/domain"
	"timeclock/internal/errors"
)

// Sink accepts finalized timer logs for remote persistence. The engine's
// locally computed duration and income are immediate feedback only; the
// stored record returned by the remote service is the system of record.
type Sink interface {
	SubmitLog(ctx context.Context, log domain.TimerLog) (*StoredLog, error)
}

// StoredLog is the billing service's stored representation of a submitted
// log, with server-side computed fields.
type StoredLog struct {
	ID              string    `json:"id"`
	DurationSeconds int64     `json:"duration"`
	Income          float64   `json:"income"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// logPayload is the wire shape of a submitted log.
type logPayload struct {
	CustomerID  string    `json:"customerId"`
	ProjectID   string    `json:"projectId"`
	TaskID      string    `json:"taskId,omitempty"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	HourlyRate  float64   `json:"hourlyRate"`
	UserID      string    `json:"userId"`
}

// Client submits timer logs to the remote billing API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a billing client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SubmitLog posts a finalized log to the billing service and returns the
// stored record.
func (c *Client) SubmitLog(ctx context.Context, log domain.TimerLog) (*StoredLog, error) {
	payload := logPayload{
		CustomerID:  log.CustomerID,
		ProjectID:   log.ProjectID,
		TaskID:      log.TaskID,
		Description: log.Description,
		StartTime:   log.StartTime,
		EndTime:     log.EndTime,
		HourlyRate:  log.HourlyRate,
		UserID:      log.UserID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.NewRemoteAPIError("encode log", 0, err)
	}

	url := fmt.Sprintf("%s/time-logs", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewRemoteAPIError("build request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewRemoteAPIError("submit log", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewRemoteAPIError("submit log", resp.StatusCode, nil)
	}

	var stored StoredLog
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, errors.NewRemoteAPIError("decode response", resp.StatusCode, err)
	}

	return &stored, nil
}
