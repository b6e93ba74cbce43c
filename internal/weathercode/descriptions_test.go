package weathercode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-agent/internal/weathercode"
)

func TestDescribeKnownCodes(t *testing.T) {
	tests := []struct {
		code weathercode.Code
		want string
	}{
		{0, "clear sky"},
		{1, "mainly clear"},
		{3, "cloudy"},
		{45, "fog"},
		{48, "rime fog"},
		{56, "freezing drizzle"},
		{61, "rain"},
		{68, "sleet"},
		{71, "snow"},
		{77, "snow pellets"},
		{89, "hail showers"},
		{95, "thunderstorm"},
		{99, "violent thunderstorm"},
	}

	for _, tt := range tests {
		got := weathercode.Describe(tt.code)
		assert.Equal(t, tt.want, got, "code %d", tt.code)

		entry, ok := weathercode.Lookup(tt.code)
		require.True(t, ok, "code %d", tt.code)
		assert.Equal(t, got, entry)
	}
}

func TestDescribeUnknownCodeFallsBack(t *testing.T) {
	for _, code := range []weathercode.Code{16, 17, 23, 44, 100, -1} {
		_, ok := weathercode.Lookup(code)
		assert.False(t, ok, "code %d", code)
	}

	assert.Equal(t, "unknown (code 16)", weathercode.Describe(16))
	assert.Equal(t, "unknown (code 100)", weathercode.Describe(100))
	assert.Equal(t, "unknown (code -1)", weathercode.Describe(-1))
}

func TestTableIsSparse(t *testing.T) {
	assert.Equal(t, 80, weathercode.Len())

	for code := weathercode.Code(0); code <= 99; code++ {
		desc := weathercode.Describe(code)
		assert.NotEmpty(t, desc)
	}
}
