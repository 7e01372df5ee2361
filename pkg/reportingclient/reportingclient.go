package reportingclient

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/dropforge/drop-engine/pkg/httpclient"
	"github.com/valyala/fasthttp"
)

const DefaultBaseURL = "https://reporting.dropforge.io"

type Config struct {
	Disabled bool   `mapstructure:"disabled"`
	BaseURL  string `mapstructure:"base_url"`
	Name     string `mapstructure:"name"`
	Website  string `mapstructure:"website"`
}

type ReportingClient struct {
	httpClient *httpclient.Client
	name       string
	website    string
}

func New(config Config) (*ReportingClient, error) {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Name == "" {
		return nil, errors.New("reporting name is required")
	}
	httpClient, err := httpclient.New(config.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create http client")
	}
	return &ReportingClient{
		httpClient: httpClient,
		name:       config.Name,
		website:    config.Website,
	}, nil
}

type SubmitDropStatsPayload struct {
	Name         string `json:"name"`
	Website      string `json:"website"`
	Network      string `json:"network"`
	DropCount    int64  `json:"dropCount"`
	MintedTokens int64  `json:"mintedTokens"`
	EventCount   int64  `json:"eventCount"`
}

// SubmitDropStats pushes an aggregate usage snapshot to the reporting
// endpoint.
func (r *ReportingClient) SubmitDropStats(ctx context.Context, payload SubmitDropStatsPayload) error {
	payload.Name = r.name
	payload.Website = r.website
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal payload")
	}
	resp, err := r.httpClient.Post(ctx, "/v1/drop-stats", httpclient.RequestOptions{
		Body: body,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return errors.Errorf("unexpected status code: %d", resp.StatusCode())
	}
	return nil
}
