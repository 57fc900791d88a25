package tunnel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var ErrNoTunnel = errors.New("ngrok has no active tunnels")

type tunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// Detector reads the public URL of a local ngrok agent so the skill endpoint
// can be registered during development.
type Detector struct {
	client *resty.Client
}

// New creates a Detector for the ngrok local API at apiBase
// (e.g. http://localhost:4040). The agent is polled up to attempts times,
// wait apart, while it starts up.
func New(apiBase string, attempts int, wait time.Duration) *Detector {
	if attempts < 1 {
		attempts = 1
	}
	client := resty.New().
		SetBaseURL(apiBase).
		SetTimeout(5*time.Second).
		SetRetryCount(attempts-1).
		SetRetryWaitTime(wait).
		SetRetryMaxWaitTime(wait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			res, ok := r.Result().(*tunnelsResponse)
			return !ok || len(res.Tunnels) == 0
		})
	return &Detector{client: client}
}

// PublicURL returns the first HTTPS tunnel, or any tunnel when none is HTTPS.
func (d *Detector) PublicURL(ctx context.Context) (string, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetResult(&tunnelsResponse{}).
		Get("/api/tunnels")
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ngrok API returned %s", resp.Status())
	}

	res := resp.Result().(*tunnelsResponse)
	for _, t := range res.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(res.Tunnels) > 0 {
		return res.Tunnels[0].PublicURL, nil
	}
	return "", ErrNoTunnel
}
