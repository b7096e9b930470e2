package events

import "time"

type seedEvent struct {
	event Event
	start time.Duration
	end   time.Duration
}

// Start and end are offsets from service construction; a zero end means open ended.
var seedEvents = []seedEvent{
	{
		event: Event{
			Name:        "Jazz Night at Blue Note",
			Description: "Enjoy live jazz performances from local and international artists in an intimate setting.",
			Venue:       Venue{Name: "Blue Note Jazz Club", Address: "131 W 3rd St", City: "New York", Latitude: 40.7306, Longitude: -74.0001},
			Category:    CategoryMusic,
			ImageURL:    "https://images.unsplash.com/photo-1511192336575-5a79af67a629?w=400",
			Price:       "$25-45",
			Tags:        []string{"jazz", "live music", "nightlife"},
		},
		start: 4 * time.Hour,
		end:   7 * time.Hour,
	},
	{
		event: Event{
			Name:        "Modern Art Exhibition",
			Description: "Explore contemporary artworks from emerging artists around the world.",
			Venue:       Venue{Name: "City Art Gallery", Address: "450 Park Ave", City: "New York", Latitude: 40.7614, Longitude: -73.9776},
			Category:    CategoryArts,
			ImageURL:    "https://images.unsplash.com/photo-1536924940846-227afb31e2a5?w=400",
			IsFree:      true,
			Tags:        []string{"art", "exhibition", "contemporary"},
		},
		start: time.Hour,
		end:   8 * time.Hour,
	},
	{
		event: Event{
			Name:        "Food Truck Festival",
			Description: "Sample delicious cuisines from over 30 food trucks featuring international flavors.",
			Venue:       Venue{Name: "Central Park South", Address: "Central Park", City: "New York", Latitude: 40.7649, Longitude: -73.9731},
			Category:    CategoryFood,
			ImageURL:    "https://images.unsplash.com/photo-1565123409695-7b5ef63a2efb?w=400",
			Price:       "$5-15 per item",
			Tags:        []string{"food", "festival", "outdoor"},
		},
		start: 2 * time.Hour,
		end:   10 * time.Hour,
	},
	{
		event: Event{
			Name:        "Community Yoga in the Park",
			Description: "Join our free outdoor yoga session suitable for all skill levels.",
			Venue:       Venue{Name: "Riverside Park", Address: "Riverside Dr", City: "New York", Latitude: 40.8010, Longitude: -73.9702},
			Category:    CategoryWellness,
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400",
			IsFree:      true,
			Tags:        []string{"yoga", "fitness", "free", "outdoor"},
		},
		start: 24 * time.Hour,
	},
	{
		event: Event{
			Name:        "Indie Film Screening",
			Description: "Watch award-winning independent films followed by Q&A with directors.",
			Venue:       Venue{Name: "Angelika Film Center", Address: "18 W Houston St", City: "New York", Latitude: 40.7265, Longitude: -73.9959},
			Category:    CategoryFilm,
			ImageURL:    "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=400",
			Price:       "$15",
			Tags:        []string{"film", "indie", "cinema"},
		},
		start: 5 * time.Hour,
		end:   8 * time.Hour,
	},
	{
		event: Event{
			Name:        "Science Museum Open Day",
			Description: "Free entry to all exhibitions plus special interactive demonstrations.",
			Venue:       Venue{Name: "Natural History Museum", Address: "79th St", City: "New York", Latitude: 40.7813, Longitude: -73.9740},
			Category:    CategoryEducation,
			ImageURL:    "https://images.unsplash.com/photo-1576085898323-218337e3e43c?w=400",
			IsFree:      true,
			Tags:        []string{"science", "museum", "family", "education"},
		},
		start: 3 * time.Hour,
		end:   11 * time.Hour,
	},
	{
		event: Event{
			Name:        "Local Basketball Tournament",
			Description: "3v3 basketball tournament open to all skill levels with prizes.",
			Venue:       Venue{Name: "West 4th Street Courts", Address: "W 4th St & 6th Ave", City: "New York", Latitude: 40.7308, Longitude: -74.0007},
			Category:    CategorySports,
			ImageURL:    "https://images.unsplash.com/photo-1546519638-68e109498ffc?w=400",
			IsFree:      true,
			Tags:        []string{"sports", "basketball", "tournament", "outdoor"},
		},
		start: 6 * time.Hour,
	},
	{
		event: Event{
			Name:        "Broadway Musical Workshop",
			Description: "Learn songs and choreography from hit Broadway musicals.",
			Venue:       Venue{Name: "Theater District Studio", Address: "234 W 42nd St", City: "New York", Latitude: 40.7566, Longitude: -73.9889},
			Category:    CategoryTheater,
			ImageURL:    "https://images.unsplash.com/photo-1503095396549-807759245b35?w=400",
			Price:       "$50",
			Tags:        []string{"theater", "workshop", "broadway", "dance"},
		},
		start: 48 * time.Hour,
		end:   51 * time.Hour,
	},
	{
		event: Event{
			Name:        "Farmers Market Weekend",
			Description: "Fresh local produce, artisan goods, and live acoustic music.",
			Venue:       Venue{Name: "Union Square", Address: "Union Square", City: "New York", Latitude: 40.7359, Longitude: -73.9911},
			Category:    CategoryCommunity,
			ImageURL:    "https://images.unsplash.com/photo-1488459716781-31db52582fe9?w=400",
			IsFree:      true,
			Tags:        []string{"market", "food", "local", "outdoor"},
		},
		start: 8 * time.Hour,
		end:   14 * time.Hour,
	},
	{
		event: Event{
			Name:        "Tech Startup Meetup",
			Description: "Network with entrepreneurs and hear pitches from innovative startups.",
			Venue:       Venue{Name: "WeWork Soho", Address: "115 Broadway", City: "New York", Latitude: 40.7081, Longitude: -74.0103},
			Category:    CategoryBusiness,
			ImageURL:    "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=400",
			IsFree:      true,
			Tags:        []string{"tech", "networking", "startups", "business"},
		},
		start: 28 * time.Hour,
		end:   31 * time.Hour,
	},
	{
		event: Event{
			Name:        "Kids Adventure Day",
			Description: "Fun activities, games, and crafts for children ages 5-12.",
			Venue:       Venue{Name: "Brooklyn Children's Museum", Address: "145 Brooklyn Ave", City: "Brooklyn", Latitude: 40.6743, Longitude: -73.9439},
			Category:    CategoryFamily,
			ImageURL:    "https://images.unsplash.com/photo-1566554273541-37a9ca77b91f?w=400",
			Price:       "$12",
			Tags:        []string{"kids", "family", "activities", "museum"},
		},
		start: 10 * time.Hour,
		end:   16 * time.Hour,
	},
	{
		event: Event{
			Name:        "Rooftop DJ Night",
			Description: "Dance under the stars with top DJs spinning house and techno.",
			Venue:       Venue{Name: "Skybar Rooftop", Address: "230 5th Ave", City: "New York", Latitude: 40.7440, Longitude: -73.9877},
			Category:    CategoryNightlife,
			ImageURL:    "https://images.unsplash.com/photo-1545128485-c400e7702796?w=400",
			Price:       "$20",
			Tags:        []string{"nightlife", "dj", "dance", "rooftop"},
		},
		start: 30 * time.Hour,
	},
}
