// Package countries talks to the REST Countries API for hint data.
package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

const DefaultBaseURL = "https://restcountries.com/v3.1"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type countryRecord struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Capital    []string `json:"capital"`
}

// Lookup returns the first record the API matches for the name.
func (that *Client) Lookup(ctx context.Context, name string) (*entity.CountryInfo, error) {
	endpoint := that.baseURL + "/name/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCountryNotFound, name)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperror.ErrLookupFailed, resp.StatusCode)
	}

	var records []countryRecord
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", apperror.ErrLookupFailed, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCountryNotFound, name)
	}

	record := records[0]

	return &entity.CountryInfo{
		Name:       record.Name.Common,
		Population: record.Population,
		Area:       record.Area,
		Capital:    record.Capital,
	}, nil
}
