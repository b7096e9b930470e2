package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-planner/internal/domain/planner"
	"github.com/yanqian/weather-planner/internal/domain/weather"
)

func optionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &v, nil
}

func optionalInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

func optionalBool(c *gin.Context, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", key)
	}
	return &v, nil
}

func coordinates(c *gin.Context) (*float64, *float64, error) {
	lat, err := optionalFloat(c, "lat")
	if err != nil {
		return nil, nil, err
	}
	lon, err := optionalFloat(c, "lon")
	if err != nil {
		return nil, nil, err
	}
	return lat, lon, nil
}

func locationRequest(c *gin.Context) (planner.LocationRequest, error) {
	lat, lon, err := coordinates(c)
	if err != nil {
		return planner.LocationRequest{}, err
	}
	return planner.LocationRequest{Latitude: lat, Longitude: lon, Units: c.Query("units")}, nil
}

// nearPoint returns the caller position when both coordinates were given.
func nearPoint(c *gin.Context) (*weather.Coordinates, error) {
	lat, lon, err := coordinates(c)
	if err != nil {
		return nil, err
	}
	if lat == nil || lon == nil {
		if lat != nil || lon != nil {
			return nil, fmt.Errorf("lat and lon must be provided together")
		}
		return nil, nil
	}
	return &weather.Coordinates{Latitude: *lat, Longitude: *lon}, nil
}
