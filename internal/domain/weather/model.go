package weather

// Coordinates is a WGS84 position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Condition is one provider observation; index 0 of a list is authoritative.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Current is the present observation at a location.
type Current struct {
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feelsLike"`
	Humidity    float64     `json:"humidity"`
	WindSpeed   float64     `json:"windSpeed"`
	Conditions  []Condition `json:"conditions"`
	Visibility  int         `json:"visibility"`
	Pressure    float64     `json:"pressure"`
	Sunrise     int64       `json:"sunrise"`
	Sunset      int64       `json:"sunset"`
	Timezone    int         `json:"timezone"`
	CityName    string      `json:"cityName"`
	Country     string      `json:"country"`
	IsMock      bool        `json:"isMock,omitempty"`
}

// HourlyForecast is one forecast step.
type HourlyForecast struct {
	Time        int64       `json:"time"`
	Temperature float64     `json:"temperature"`
	Conditions  []Condition `json:"conditions"`
	Pop         float64     `json:"pop"`
}

// DailyForecast summarizes one calendar day. Temperatures share the unit system
// of the call that produced them; wind speed is in m/s.
type DailyForecast struct {
	Date       int64       `json:"date"`
	TempMin    float64     `json:"tempMin"`
	TempMax    float64     `json:"tempMax"`
	Conditions []Condition `json:"conditions"`
	Pop        float64     `json:"pop"`
	Humidity   float64     `json:"humidity"`
	WindSpeed  float64     `json:"windSpeed"`
}

// Forecast bundles the hourly and daily series returned by a provider.
type Forecast struct {
	Hourly   []HourlyForecast `json:"hourly"`
	Daily    []DailyForecast  `json:"daily"`
	CityName string           `json:"cityName,omitempty"`
	Country  string           `json:"country,omitempty"`
	Timezone int              `json:"timezone"`
	IsMock   bool             `json:"isMock,omitempty"`
}

// AirQuality is the provider air pollution reading on the 1-5 AQI scale.
type AirQuality struct {
	AQI            int     `json:"aqi"`
	Label          string  `json:"aqiLabel"`
	Recommendation string  `json:"recommendation"`
	PM25           float64 `json:"pm2_5"`
	PM10           float64 `json:"pm10"`
	O3             float64 `json:"o3"`
	NO2            float64 `json:"no2"`
	SO2            float64 `json:"so2"`
	CO             float64 `json:"co"`
	Timestamp      int64   `json:"timestamp"`
	IsMock         bool    `json:"isMock,omitempty"`
}

// Place is a geocoding match.
type Place struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"localNames,omitempty"`
	Latitude   float64           `json:"lat"`
	Longitude  float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
	IsMock     bool              `json:"isMock,omitempty"`
}

// Mock reports whether c is synthetic data rather than a provider reading.
func (c Current) Mock() bool { return c.IsMock }

func (f Forecast) Mock() bool { return f.IsMock }

func (a AirQuality) Mock() bool { return a.IsMock }

// AnyMock reports whether any of places came from the mock source.
func AnyMock(places []Place) bool {
	for _, p := range places {
		if p.IsMock {
			return true
		}
	}
	return false
}
