package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		input    string
		expected Cents
		wantErr  bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"20", 2000, false},
		{"0.5", 50, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{".99", 99, false},
		{"0", 0, false},
		{"-5.00", 0, true},
		{"+5.00", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCents(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q should fail", tt.input)
			continue
		}
		assert.NoError(t, err, "input %q should parse", tt.input)
		assert.Equal(t, tt.expected, got, "input %q", tt.input)
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "12.34", Cents(1234).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "-20.50", Cents(-2050).String())
}

func TestCentsJSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(Cents(2000))
	assert.NoError(t, err)
	assert.Equal(t, "20.00", string(payload))

	var fromNumber Cents
	assert.NoError(t, json.Unmarshal([]byte("12.34"), &fromNumber))
	assert.Equal(t, Cents(1234), fromNumber)

	var fromString Cents
	assert.NoError(t, json.Unmarshal([]byte(`"12.34"`), &fromString))
	assert.Equal(t, Cents(1234), fromString)
}

func TestSummingCentsIsExact(t *testing.T) {
	// 0.10 added a thousand times is exactly 100.00 in cents; the same loop
	// over float64 drifts.
	var total Cents
	for i := 0; i < 1000; i++ {
		total += Cents(10)
	}
	assert.Equal(t, Cents(10000), total)
	assert.Equal(t, "100.00", total.String())
}
