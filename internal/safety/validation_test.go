package safety

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		price float64
		valid bool
		code  string
	}{
		{"normal price", 50000.0, true, ""},
		{"small but sane price", 0.0001, true, ""},
		{"zero price", 0, false, "INVALID_PRICE_NEGATIVE"},
		{"negative price", -1, false, "INVALID_PRICE_NEGATIVE"},
		{"NaN price", math.NaN(), false, "INVALID_PRICE_NAN"},
		{"infinite price", math.Inf(1), false, "INVALID_PRICE_INF"},
		{"absurdly large price", 1e11, false, "PRICE_OUT_OF_BOUNDS"},
		{"sub-satoshi price", 1e-9, false, "PRICE_TOO_SMALL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.ValidatePrice(tt.price, "entry price")
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, tt.code, res.Code)
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestValidateLeverage(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidateLeverage(1).Valid)
	assert.True(t, v.ValidateLeverage(125).Valid)
	assert.False(t, v.ValidateLeverage(0).Valid)
	assert.False(t, v.ValidateLeverage(-10).Valid)
	assert.False(t, v.ValidateLeverage(126).Valid)
	assert.False(t, v.ValidateLeverage(math.NaN()).Valid)
}

func TestValidateBalance(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidateBalance(0).Valid, "zero balance is allowed")
	assert.True(t, v.ValidateBalance(10000).Valid)
	assert.False(t, v.ValidateBalance(-0.01).Valid)
	assert.False(t, v.ValidateBalance(math.Inf(1)).Valid)
}

func TestValidateMarginRate(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidateMarginRate(0.004).Valid)
	assert.True(t, v.ValidateMarginRate(0.5).Valid)
	assert.False(t, v.ValidateMarginRate(0).Valid)
	assert.False(t, v.ValidateMarginRate(1).Valid)
	assert.False(t, v.ValidateMarginRate(-0.004).Valid)
}

func TestValidatePercent(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.ValidatePercent(2, "risk percent").Valid)
	assert.True(t, v.ValidatePercent(100, "risk percent").Valid)
	assert.False(t, v.ValidatePercent(0, "risk percent").Valid)
	assert.False(t, v.ValidatePercent(101, "risk percent").Valid)
}
