package heatrisk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		temp, green float64
		want        Tier
	}{
		{31, 20, High},
		{31, 40, Medium},
		{27, 50, Medium},
		{20, 50, Low},
		{26, 10, Low},

		// medium threshold
		{26, 50, Low},
		{26.0001, 50, Medium},
		{26.0001, 10, Medium},

		// high threshold, temperature side
		{30, 10, Medium},
		{30.0001, 10, High},
		{30.0001, 24.9999, High},

		// high threshold, green side
		{30.0001, 25, Medium},
		{35, 25, Medium},
		{35, 24.9999, High},

		{-5, 0, Low},
		{0, 0, Low},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%v", tt.temp, tt.green), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.temp, tt.green))
		})
	}
}

func TestCityProfileFor_Authored(t *testing.T) {
	p, ok := CityProfileFor("Mumbai")
	assert.True(t, ok)
	assert.Equal(t, 30.5, p.AvgTemperature)
	assert.Equal(t, 18.0, p.GreenCoverPercent)
	assert.Equal(t, High, p.Tier())
	assert.Len(t, p.Monthly, 12)
	assert.Equal(t, MonthlyTemperature{Month: "May", Temperature: 32}, p.Monthly[4])

	p, ok = CityProfileFor("Bengaluru")
	assert.True(t, ok)
	assert.Equal(t, Medium, p.Tier())
}

func TestCityProfileFor_UnknownCityUsesDefault(t *testing.T) {
	for _, city := range []string{"", "Pune", "Atlantis"} {
		p, ok := CityProfileFor(city)
		assert.False(t, ok)
		assert.Equal(t, 29.0, p.AvgTemperature)
		assert.Equal(t, 25.0, p.GreenCoverPercent)
		assert.Equal(t, Medium, p.Tier())
	}
}

func TestCityProfileFor_ReturnsCopy(t *testing.T) {
	p, _ := CityProfileFor("Bengaluru")
	p.Monthly[0].Temperature = 99

	again, _ := CityProfileFor("Bengaluru")
	assert.Equal(t, 22.0, again.Monthly[0].Temperature)
}
