package domain

import (
	"encoding/json"
	"strconv"
)

// Market represents a market returned by the Gamma API.
// String-encoded numeric fields are kept raw and parsed on demand because
// the upstream serializes them inconsistently.
type Market struct {
	ID            string `json:"id"`
	ConditionID   string `json:"conditionId"`   // stable identifier joining trades to outcomes
	Question      string `json:"question"`      // display question text
	OutcomePrices string `json:"outcomePrices"` // JSON array of numeric strings, e.g. `["0.97","0.03"]`
	Volume        string `json:"volume"`        // string-encoded USD volume
	Liquidity     string `json:"liquidity"`     // string-encoded USD liquidity
	Active        bool   `json:"active"`
	Closed        bool   `json:"closed"`
}

// OutcomePricePair parses the encoded outcome price array.
// A market is binary and priced only when exactly two entries parse as
// numbers; anything else (absent, malformed, non-binary) returns ok=false.
func (m Market) OutcomePricePair() (yes, no float64, ok bool) {
	if m.OutcomePrices == "" {
		return 0, 0, false
	}

	var raw []string
	if err := json.Unmarshal([]byte(m.OutcomePrices), &raw); err != nil {
		return 0, 0, false
	}

	prices := make([]float64, 0, len(raw))
	for _, s := range raw {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		prices = append(prices, p)
	}

	if len(prices) != 2 {
		return 0, 0, false
	}

	return prices[0], prices[1], true
}

// VolumeUSD parses the string-encoded volume, returning 0 when absent or
// malformed.
func (m Market) VolumeUSD() float64 {
	return parseMoney(m.Volume)
}

// LiquidityUSD parses the string-encoded liquidity, returning 0 when absent
// or malformed.
func (m Market) LiquidityUSD() float64 {
	return parseMoney(m.Liquidity)
}

func parseMoney(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
