package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/credlens/underwriter/dto"
)

// FeedClient retrieves company statement snapshots from the market-data
// feed. Each call is bounded by its own timeout so one unreachable feed
// cannot stall unrelated requests.
type FeedClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewFeedClient(baseURL string, timeout time.Duration) *FeedClient {
	return &FeedClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// feedEnvelope mirrors the feed's wire format. Field values are decoded as
// json.Number so exotic renderings survive until normalization.
type feedEnvelope struct {
	Company struct {
		Name     string `json:"name"`
		Sector   string `json:"sector"`
		Currency string `json:"currency"`
	} `json:"company"`
	Periods []struct {
		Period string                 `json:"period"`
		Fields map[string]json.Number `json:"fields"`
	} `json:"periods"`
}

// FetchStatements retrieves the reporting periods for a ticker symbol, most
// recent first per the feed's ordering, plus company metadata.
func (c *FeedClient) FetchStatements(ctx context.Context, symbol string) ([]dto.FeedPeriod, *dto.CompanyMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v1/statements/%s", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("feed returned status %d for %s", resp.StatusCode, symbol)
	}

	var envelope feedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	periods := make([]dto.FeedPeriod, 0, len(envelope.Periods))
	for _, p := range envelope.Periods {
		fields := make(map[string]string, len(p.Fields))
		for key, value := range p.Fields {
			fields[key] = value.String()
		}
		periods = append(periods, dto.FeedPeriod{Period: p.Period, Fields: fields})
	}

	meta := &dto.CompanyMeta{
		Symbol:   symbol,
		Name:     envelope.Company.Name,
		Sector:   envelope.Company.Sector,
		Currency: envelope.Company.Currency,
	}

	log.Printf("feed returned %d periods for %s", len(periods), symbol)
	return periods, meta, nil
}
