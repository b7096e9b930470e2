package events

import (
	"time"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// Category classifies an event.
type Category string

const (
	CategoryMusic     Category = "music"
	CategoryArts      Category = "arts"
	CategorySports    Category = "sports"
	CategoryFood      Category = "food"
	CategoryCommunity Category = "community"
	CategoryEducation Category = "education"
	CategoryFamily    Category = "family"
	CategoryNightlife Category = "nightlife"
	CategoryFilm      Category = "film"
	CategoryTheater   Category = "theater"
	CategoryOutdoor   Category = "outdoor"
	CategoryWellness  Category = "wellness"
	CategoryBusiness  Category = "business"
	CategoryOther     Category = "other"
)

// CategoryInfo is the display metadata of a category.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}

var categoryInfo = []CategoryInfo{
	{ID: CategoryMusic, Label: "Music", Icon: "🎵"},
	{ID: CategoryArts, Label: "Arts", Icon: "🎨"},
	{ID: CategorySports, Label: "Sports", Icon: "⚽"},
	{ID: CategoryFood, Label: "Food", Icon: "🍽️"},
	{ID: CategoryCommunity, Label: "Community", Icon: "👥"},
	{ID: CategoryEducation, Label: "Education", Icon: "📚"},
	{ID: CategoryFamily, Label: "Family", Icon: "👨‍👩‍👧"},
	{ID: CategoryNightlife, Label: "Nightlife", Icon: "🌙"},
	{ID: CategoryFilm, Label: "Film", Icon: "🎬"},
	{ID: CategoryTheater, Label: "Theater", Icon: "🎭"},
	{ID: CategoryOutdoor, Label: "Outdoor", Icon: "🌳"},
	{ID: CategoryWellness, Label: "Wellness", Icon: "🧘"},
	{ID: CategoryBusiness, Label: "Business", Icon: "💼"},
	{ID: CategoryOther, Label: "Other", Icon: "✨"},
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool {
	for _, info := range categoryInfo {
		if info.ID == c {
			return true
		}
	}
	return false
}

// Venue is where an event takes place. Distance is set when the caller supplied a position.
type Venue struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	DistanceKm *float64 `json:"distance,omitempty"`
}

// Event is a local happening.
type Event struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Venue       Venue      `json:"venue"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Category    Category   `json:"category"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	TicketURL   string     `json:"ticketUrl,omitempty"`
	Price       string     `json:"price,omitempty"`
	IsFree      bool       `json:"isFree"`
	IsVirtual   bool       `json:"isVirtual"`
	Tags        []string   `json:"tags"`
}

// Outdoor reports whether the event is tagged as happening outside.
func (e Event) Outdoor() bool {
	for _, tag := range e.Tags {
		if tag == outdoorTag {
			return true
		}
	}
	return false
}

const outdoorTag = "outdoor"

// Filter narrows List results. Nil pointers leave a dimension unfiltered.
type Filter struct {
	Near     *weather.Coordinates
	Category string
	IsFree   *bool
	IsIndoor *bool
	RadiusKm float64
	Page     int
}

// Page is one page of List results.
type Page struct {
	Events  []Event `json:"events"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	HasMore bool    `json:"hasMore"`
}

// Config holds runtime knobs for the events service.
type Config struct {
	PageSize int
}
