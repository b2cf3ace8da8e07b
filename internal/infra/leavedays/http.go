package leavedays

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

type leaveDaysResponse struct {
	Days *int `json:"dias"`
}

// HTTPProvider asks the HR service for accumulated leave: GET {base}/{user_id} -> {"dias": n}.
type HTTPProvider struct {
	client *resty.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)
	return &HTTPProvider{client: client}
}

func (p *HTTPProvider) AccumulatedLeaveDays(ctx context.Context, userID int64) (int, error) {
	var body leaveDaysResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&body).
		SetPathParam("userID", strconv.FormatInt(userID, 10)).
		Get("/{userID}")
	if err != nil {
		return 0, fmt.Errorf("leave days request failed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("leave days service returned %d for user %d", resp.StatusCode(), userID)
	}
	if body.Days == nil {
		return 0, fmt.Errorf("leave days response for user %d has no dias field", userID)
	}
	return *body.Days, nil
}
