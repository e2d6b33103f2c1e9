// Package alfabank reads the National Bank rates republished by Alfa-Bank's
// public partner API.
package alfabank

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"bookcatalog/internal/platform/restclient"

	"github.com/shopspring/decimal"
)

const DefaultBaseURL = "https://developerhub.alfabank.by:8273"

type Client struct {
	rest *restclient.Client
}

func NewClient(baseURL, userAgent string, rps int, maxRetries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{rest: restclient.New(baseURL, userAgent, rps, maxRetries)}
}

// NationalRate is the official rate of one currency. Rate is the price in
// BYN of Quantity units of the currency.
type NationalRate struct {
	Rate     decimal.Decimal `json:"rate"`
	Code     int             `json:"code"`
	Date     string          `json:"date"`
	ISO      string          `json:"iso"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
}

// PerUnit is the rate for a single unit of the currency.
func (r NationalRate) PerUnit() decimal.Decimal {
	if r.Quantity <= 1 {
		return r.Rate
	}
	return r.Rate.DivRound(decimal.NewFromInt(int64(r.Quantity)), 8)
}

type nationalRatesResponse struct {
	Rates []NationalRate `json:"rates"`
}

// NationalRates returns today's rates for the requested currencies.
func (c *Client) NationalRates(ctx context.Context, currencies []Currency) ([]NationalRate, error) {
	if len(currencies) == 0 {
		return []NationalRate{}, nil
	}

	codes := make([]string, 0, len(currencies))
	for _, cur := range currencies {
		if !cur.Valid() {
			return nil, fmt.Errorf("unsupported currency %q", cur)
		}
		codes = append(codes, strconv.Itoa(cur.Code()))
	}

	path := "/partner/1.0.0/public/nationalRates?currencyCode=" + strings.Join(codes, ",")

	var res nationalRatesResponse
	if err := c.rest.GetJSON(ctx, path, &res); err != nil {
		return nil, fmt.Errorf("national rates: %w", err)
	}
	if res.Rates == nil {
		return []NationalRate{}, nil
	}
	return res.Rates, nil
}
