package alfabank

import (
	"errors"
	"fmt"
	"strings"
)

// Currency is an ISO 4217 alphabetic code the national rate feed knows about.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	RUB Currency = "RUB"
	PLN Currency = "PLN"
	UAH Currency = "UAH"
	CNY Currency = "CNY"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	JPY Currency = "JPY"
)

var numericCodes = map[Currency]int{
	USD: 840,
	EUR: 978,
	RUB: 643,
	PLN: 985,
	UAH: 980,
	CNY: 156,
	GBP: 826,
	CHF: 756,
	JPY: 392,
}

// Code returns the numeric ISO 4217 code, or 0 for an unknown currency.
func (c Currency) Code() int {
	return numericCodes[c]
}

func (c Currency) Valid() bool {
	_, ok := numericCodes[c]
	return ok
}

// ParseCurrency accepts an alphabetic code in any case.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return c, nil
}

// ErrNoCurrency is returned for a list with no currency in it.
var ErrNoCurrency = errors.New("at least one currency is required")

// ParseCurrencies parses a comma separated list such as "RUB,usd".
func ParseCurrencies(list string) ([]Currency, error) {
	var out []Currency
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCurrency(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, ErrNoCurrency
	}
	return out, nil
}
