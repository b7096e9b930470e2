package openweather

import (
	"math"

	"github.com/yanqian/weather-planner/internal/domain/weather"
	"github.com/yanqian/weather-planner/pkg/util"
)

const (
	hourlySteps  = 8
	forecastDays = 5
)

type conditionResponse struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainResponse struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type windResponse struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type currentResponse struct {
	Weather    []conditionResponse `json:"weather"`
	Main       mainResponse        `json:"main"`
	Visibility int                 `json:"visibility"`
	Wind       windResponse        `json:"wind"`
	Dt         int64               `json:"dt"`
	Sys        struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

type forecastEntry struct {
	Dt      int64               `json:"dt"`
	Main    mainResponse        `json:"main"`
	Weather []conditionResponse `json:"weather"`
	Wind    windResponse        `json:"wind"`
	Pop     float64             `json:"pop"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

type airQualityResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			NO2  float64 `json:"no2"`
			O3   float64 `json:"o3"`
			SO2  float64 `json:"so2"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
		Dt int64 `json:"dt"`
	} `json:"list"`
}

type placeResponse struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state"`
}

func parseConditions(raw []conditionResponse) []weather.Condition {
	out := make([]weather.Condition, 0, len(raw))
	for _, c := range raw {
		out = append(out, weather.Condition{ID: c.ID, Main: c.Main, Description: c.Description, Icon: c.Icon})
	}
	return out
}

func parseCurrent(raw currentResponse) weather.Current {
	return weather.Current{
		Temperature: math.Round(raw.Main.Temp),
		FeelsLike:   math.Round(raw.Main.FeelsLike),
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Conditions:  parseConditions(raw.Weather),
		Visibility:  raw.Visibility,
		Pressure:    raw.Main.Pressure,
		Sunrise:     raw.Sys.Sunrise,
		Sunset:      raw.Sys.Sunset,
		Timezone:    raw.Timezone,
		CityName:    raw.Name,
		Country:     raw.Sys.Country,
	}
}

// parseForecast keeps the first 8 steps as the hourly series and condenses the
// list into at most 5 calendar days in the location's own UTC offset. A day
// takes its conditions, humidity and wind from its middle entry.
func parseForecast(raw forecastResponse) weather.Forecast {
	hourly := make([]weather.HourlyForecast, 0, hourlySteps)
	for i, entry := range raw.List {
		if i == hourlySteps {
			break
		}
		hourly = append(hourly, weather.HourlyForecast{
			Time:        entry.Dt,
			Temperature: math.Round(entry.Main.Temp),
			Conditions:  parseConditions(entry.Weather),
			Pop:         entry.Pop,
		})
	}

	var (
		order  []string
		groups = make(map[string][]forecastEntry)
	)
	offset := int64(raw.City.Timezone)
	for _, entry := range raw.List {
		key := util.DayKey(entry.Dt + offset)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], entry)
	}
	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	daily := make([]weather.DailyForecast, 0, len(order))
	for _, key := range order {
		daily = append(daily, condenseDay(groups[key]))
	}

	return weather.Forecast{
		Hourly:   hourly,
		Daily:    daily,
		CityName: raw.City.Name,
		Country:  raw.City.Country,
		Timezone: raw.City.Timezone,
	}
}

func condenseDay(entries []forecastEntry) weather.DailyForecast {
	lo, hi := math.Inf(1), math.Inf(-1)
	pop := 0.0
	for _, e := range entries {
		lo = math.Min(lo, e.Main.Temp)
		hi = math.Max(hi, e.Main.Temp)
		pop = math.Max(pop, e.Pop)
	}
	middle := entries[len(entries)/2]
	return weather.DailyForecast{
		Date:       entries[0].Dt,
		TempMin:    math.Round(lo),
		TempMax:    math.Round(hi),
		Conditions: parseConditions(middle.Weather),
		Pop:        pop,
		Humidity:   middle.Main.Humidity,
		WindSpeed:  middle.Wind.Speed,
	}
}

func parseAirQuality(raw airQualityResponse) (weather.AirQuality, bool) {
	if len(raw.List) == 0 {
		return weather.AirQuality{}, false
	}
	first := raw.List[0]
	return weather.AirQuality{
		AQI:            first.Main.AQI,
		Label:          weather.AQILabel(first.Main.AQI),
		Recommendation: weather.AQIRecommendation(first.Main.AQI),
		PM25:           first.Components.PM25,
		PM10:           first.Components.PM10,
		O3:             first.Components.O3,
		NO2:            first.Components.NO2,
		SO2:            first.Components.SO2,
		CO:             first.Components.CO,
		Timestamp:      first.Dt,
	}, true
}

func parsePlaces(raw []placeResponse) []weather.Place {
	out := make([]weather.Place, 0, len(raw))
	for _, p := range raw {
		out = append(out, weather.Place{
			Name:       p.Name,
			LocalNames: p.LocalNames,
			Latitude:   p.Lat,
			Longitude:  p.Lon,
			Country:    p.Country,
			State:      p.State,
		})
	}
	return out
}
