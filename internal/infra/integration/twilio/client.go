package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL     string
	accountSID  string
	apiKey      string
	apiSecret   string
	callbackURL string
	http        *http.Client
}

// NewClient wires the account credentials and the webhook callback URL the
// provider will hit with call-progress events. Nothing in this service
// handles that webhook; the provider just needs a syntactically valid URL.
func NewClient(accountSID, apiKey, apiSecret, baseURL, appBaseURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		accountSID:  accountSID,
		apiKey:      apiKey,
		apiSecret:   apiSecret,
		callbackURL: appBaseURL + "/api/calling/webhook",
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// InitiateCall asks the provider to place one outbound call and returns the
// provider-assigned call SID plus the initial status (queued, ringing, ...).
// No retry and no idempotency key: calling this twice places two real calls.
func (c *Client) InitiateCall(ctx context.Context, input InitiateCallInput) (string, string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", input.To)
	form.Set("From", input.From)
	form.Set("Url", c.callbackURL)
	form.Set("Record", strconv.FormatBool(input.Record))

	var response callResponse
	if err := c.postForm(ctx, endpoint, form, &response); err != nil {
		return "", "", fmt.Errorf("call initiation failed: %w", err)
	}

	return response.Sid, response.Status, nil
}

// EndCall tells the provider to complete an in-progress call.
func (c *Client) EndCall(ctx context.Context, callSid string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls/%s.json", c.baseURL, c.accountSID, callSid)

	form := url.Values{}
	form.Set("Status", "completed")

	if err := c.postForm(ctx, endpoint, form, nil); err != nil {
		return fmt.Errorf("end call failed: %w", err)
	}
	return nil
}

// GetCallDetails fetches the provider's view of a call after the fact.
func (c *Client) GetCallDetails(ctx context.Context, callSid string) (*CallDetail, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls/%s.json", c.baseURL, c.accountSID, callSid)

	var response callDetailResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("call detail lookup failed: %w", err)
	}

	duration, _ := strconv.Atoi(response.Duration)

	return &CallDetail{
		Sid:       response.Sid,
		From:      response.From,
		To:        response.To,
		Duration:  duration,
		Status:    response.Status,
		StartedAt: response.DateCreated,
	}, nil
}

// GetCallRecording returns the URI of the first recording for a call, or ""
// when the provider has none.
func (c *Client) GetCallRecording(ctx context.Context, callSid string) (string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Calls/%s/Recordings.json", c.baseURL, c.accountSID, callSid)

	var response recordingsResponse
	if err := c.get(ctx, endpoint, &response); err != nil {
		return "", fmt.Errorf("recording lookup failed: %w", err)
	}

	if len(response.Recordings) == 0 {
		return "", nil
	}
	return response.Recordings[0].URI, nil
}

func (c *Client) postForm(ctx context.Context, endpoint string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.apiKey)

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.apiKey)

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("provider request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Provider error bodies stay in the server log; callers get a
		// status code only (see the error taxonomy in the handlers).
		body, _ := io.ReadAll(resp.Body)
		log.Printf("twilio rejected %s %s (status %d): %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}
