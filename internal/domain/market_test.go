package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarket_OutcomePricePair(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantYes float64
		wantNo  float64
		wantOK  bool
	}{
		{
			name:    "binary priced",
			encoded: `["0.97","0.03"]`,
			wantYes: 0.97,
			wantNo:  0.03,
			wantOK:  true,
		},
		{
			name:    "absent",
			encoded: "",
			wantOK:  false,
		},
		{
			name:    "malformed json",
			encoded: `[0.97, 0.03`,
			wantOK:  false,
		},
		{
			name:    "not an array of strings",
			encoded: `{"yes":"0.97"}`,
			wantOK:  false,
		},
		{
			name:    "non-binary market",
			encoded: `["0.2","0.3","0.5"]`,
			wantOK:  false,
		},
		{
			name:    "single outcome",
			encoded: `["1.0"]`,
			wantOK:  false,
		},
		{
			name:    "unparseable entry drops below two",
			encoded: `["abc","0.5"]`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Market{OutcomePrices: tt.encoded}
			yes, no, ok := m.OutcomePricePair()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantYes, yes)
				assert.Equal(t, tt.wantNo, no)
			}
		})
	}
}

func TestMarket_MoneyFields(t *testing.T) {
	m := Market{Volume: "12345.67", Liquidity: "not-a-number"}
	assert.Equal(t, 12345.67, m.VolumeUSD())
	assert.Zero(t, m.LiquidityUSD())

	empty := Market{}
	assert.Zero(t, empty.VolumeUSD())
	assert.Zero(t, empty.LiquidityUSD())
}
