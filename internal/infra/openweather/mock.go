package openweather

import (
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

const (
	mockCity      = "Demo City"
	mockCountry   = "US"
	mockLatitude  = 40.7128
	mockLongitude = -74.006
	mockEntries   = 40
	mockStep      = 3 * time.Hour
)

var mockConditions = []conditionResponse{
	{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
	{ID: 803, Main: "Clouds", Description: "broken clouds", Icon: "02d"},
	{ID: 500, Main: "Rain", Description: "light rain", Icon: "10d"},
}

// MockSource produces synthetic provider data for keyless and degraded operation.
type MockSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewMockSource builds a mock source. Nil arguments select a time-seeded
// generator and the wall clock.
func NewMockSource(rnd *rand.Rand, now func() time.Time) *MockSource {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &MockSource{rnd: rnd, now: now}
}

// Current returns a clear, mild afternoon with the sun six hours either side.
func (m *MockSource) Current() weather.Current {
	now := m.now().Unix()
	return weather.Current{
		Temperature: 22,
		FeelsLike:   24,
		Humidity:    65,
		WindSpeed:   3.5,
		Conditions:  parseConditions(mockConditions[:1]),
		Visibility:  10000,
		Pressure:    1013,
		Sunrise:     now - 6*3600,
		Sunset:      now + 6*3600,
		Timezone:    0,
		CityName:    mockCity,
		Country:     mockCountry,
		IsMock:      true,
	}
}

// Forecast returns five days of randomised three-hour steps.
func (m *MockSource) Forecast() weather.Forecast {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := m.now().Unix()
	raw := forecastResponse{List: make([]forecastEntry, 0, mockEntries)}
	raw.City.Name = mockCity
	raw.City.Country = mockCountry
	for i := 0; i < mockEntries; i++ {
		cond := mockConditions[m.rnd.Intn(len(mockConditions))]
		raw.List = append(raw.List, forecastEntry{
			Dt: start + int64(i)*int64(mockStep/time.Second),
			Main: mainResponse{
				Temp:     float64(18 + m.rnd.Intn(13)),
				Pressure: float64(1010 + m.rnd.Intn(21)),
				Humidity: float64(40 + m.rnd.Intn(41)),
			},
			Weather: []conditionResponse{cond},
			Wind:    windResponse{Speed: math.Round((2+m.rnd.Float64()*8)*10) / 10},
			Pop:     math.Round(m.rnd.Float64()*50) / 100,
		})
	}
	fc := parseForecast(raw)
	fc.IsMock = true
	return fc
}

// AirQuality returns a fixed "Fair" reading.
func (m *MockSource) AirQuality() weather.AirQuality {
	return weather.AirQuality{
		AQI:            2,
		Label:          weather.AQILabel(2),
		Recommendation: weather.AQIRecommendation(2),
		PM25:           8.5,
		PM10:           12.46,
		O3:             68.66,
		NO2:            8.79,
		SO2:            0.64,
		CO:             230.31,
		Timestamp:      m.now().Unix(),
		IsMock:         true,
	}
}

// Geocode echoes query as a place in New York; an empty query names the demo city.
func (m *MockSource) Geocode(query string) []weather.Place {
	name, state := strings.TrimSpace(query), "Demo State"
	if name == "" {
		name, state = mockCity, "New York"
	}
	return []weather.Place{{
		Name:      name,
		Latitude:  mockLatitude,
		Longitude: mockLongitude,
		Country:   mockCountry,
		State:     state,
		IsMock:    true,
	}}
}
