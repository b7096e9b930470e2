package activity

import w "github.com/yanqian/weather-planner/internal/domain/weather"

var (
	fairWeather   = []w.Category{w.Clear, w.Clouds}
	wetWeather    = []w.Category{w.Rain, w.Drizzle, w.Thunderstorm, w.Snow}
	lowVisibility = []w.Category{w.Mist, w.Fog, w.Haze}
	badAir        = []w.Category{w.Dust, w.Sand, w.Ash, w.Squall}
)

func weatherSet(groups ...[]w.Category) []w.Category {
	var out []w.Category
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var defaultActivities = []Activity{
	{
		ID:              "park-picnic",
		Name:            "Picnic in the Park",
		Description:     "Pack a basket and enjoy lunch on the grass at a nearby park.",
		Icon:            "🧺",
		Category:        CategoryOutdoor,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: fairWeather,
		Tags:            []string{"picnic", "park", "lunch", "family"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "nature-hike",
		Name:            "Nature Hike",
		Description:     "Explore a local trail and take in the scenery.",
		Icon:            "🥾",
		Category:        CategoryNature,
		Intensity:       IntensityHigh,
		Duration:        "3-5 hours",
		SuitableWeather: fairWeather,
		Tags:            []string{"hiking", "trail", "mountains", "exercise"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "bike-ride",
		Name:            "Bike Ride",
		Description:     "Cycle along the waterfront or through quiet neighborhood streets.",
		Icon:            "🚴",
		Category:        CategorySports,
		Intensity:       IntensityMedium,
		Duration:        "1-3 hours",
		SuitableWeather: fairWeather,
		Tags:            []string{"cycling", "bike", "exercise", "outdoor"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "beach-day",
		Name:            "Beach Day",
		Description:     "Soak up the sun, swim and build sandcastles.",
		Icon:            "🏖️",
		Category:        CategoryRelaxation,
		Intensity:       IntensityLow,
		Duration:        "3-6 hours",
		SuitableWeather: []w.Category{w.Clear},
		Tags:            []string{"beach", "swimming", "sun", "summer"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "outdoor-dining",
		Name:            "Outdoor Dining",
		Description:     "Grab a table on a patio or rooftop terrace.",
		Icon:            "🍽️",
		Category:        CategoryFood,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: fairWeather,
		Tags:            []string{"restaurant", "patio", "dinner", "brunch"},
		FamilyFriendly:  true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "farmers-market",
		Name:            "Farmers Market",
		Description:     "Browse fresh produce, artisan goods and street food stalls.",
		Icon:            "🥕",
		Category:        CategoryShopping,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: weatherSet(fairWeather, []w.Category{w.Haze}),
		Tags:            []string{"market", "local", "produce", "food"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "botanical-garden",
		Name:            "Botanical Garden",
		Description:     "Stroll through themed gardens and greenhouses.",
		Icon:            "🌷",
		Category:        CategoryNature,
		Intensity:       IntensityLow,
		Duration:        "1-3 hours",
		SuitableWeather: weatherSet(fairWeather, []w.Category{w.Haze}),
		Tags:            []string{"garden", "flowers", "plants", "walk"},
		FamilyFriendly:  true,
		PriceRange:      PriceLow,
	},
	{
		ID:              "outdoor-yoga",
		Name:            "Outdoor Yoga",
		Description:     "Roll out a mat in the park for a calming session.",
		Icon:            "🧘",
		Category:        CategoryFitness,
		Intensity:       IntensityLow,
		Duration:        "1 hour",
		SuitableWeather: fairWeather,
		Tags:            []string{"yoga", "wellness", "stretching", "mindfulness"},
		PriceRange:      PriceFree,
	},
	{
		ID:              "kayaking",
		Name:            "Kayaking",
		Description:     "Paddle across a lake or along a calm river.",
		Icon:            "🛶",
		Category:        CategorySports,
		Intensity:       IntensityHigh,
		Duration:        "2-4 hours",
		SuitableWeather: []w.Category{w.Clear},
		Tags:            []string{"water", "paddling", "adventure", "river"},
		PriceRange:      PriceMedium,
	},
	{
		ID:              "tennis",
		Name:            "Tennis Match",
		Description:     "Book a public court and rally with a friend.",
		Icon:            "🎾",
		Category:        CategorySports,
		Intensity:       IntensityHigh,
		Duration:        "1-2 hours",
		SuitableWeather: fairWeather,
		Tags:            []string{"tennis", "court", "racket", "exercise"},
		PriceRange:      PriceLow,
	},
	{
		ID:              "photography-walk",
		Name:            "Photography Walk",
		Description:     "Capture the city in soft light and moody skies.",
		Icon:            "📷",
		Category:        CategoryOutdoor,
		Intensity:       IntensityLow,
		Duration:        "1-3 hours",
		SuitableWeather: []w.Category{w.Clear, w.Clouds, w.Mist, w.Fog},
		Tags:            []string{"photography", "camera", "city", "walk"},
		PriceRange:      PriceFree,
	},
	{
		ID:              "stargazing",
		Name:            "Stargazing",
		Description:     "Head away from city lights and spot constellations.",
		Icon:            "🔭",
		Category:        CategoryNature,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: []w.Category{w.Clear},
		Tags:            []string{"stars", "night", "astronomy", "sky"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "puddle-walk",
		Name:            "Puddle Splashing Walk",
		Description:     "Pull on rain boots and enjoy a walk in the rain.",
		Icon:            "☔",
		Category:        CategoryOutdoor,
		Intensity:       IntensityLow,
		Duration:        "30-60 minutes",
		SuitableWeather: []w.Category{w.Rain, w.Drizzle},
		Tags:            []string{"rain", "walk", "kids", "boots"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "sledding",
		Name:            "Sledding",
		Description:     "Find a snowy hill and race down on a sled.",
		Icon:            "🛷",
		Category:        CategoryOutdoor,
		Intensity:       IntensityMedium,
		Duration:        "1-3 hours",
		SuitableWeather: []w.Category{w.Snow},
		Tags:            []string{"snow", "winter", "sled", "kids"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "winter-walk",
		Name:            "Winter Wonderland Walk",
		Description:     "Wander through snow-covered streets and parks.",
		Icon:            "❄️",
		Category:        CategoryNature,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: []w.Category{w.Snow},
		Tags:            []string{"snow", "winter", "walk", "scenery"},
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "museum-visit",
		Name:            "Museum Visit",
		Description:     "Discover history, science or art at a local museum.",
		Icon:            "🏛️",
		Category:        CategoryCultural,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: weatherSet(fairWeather, wetWeather, lowVisibility, badAir),
		Tags:            []string{"museum", "history", "science", "exhibits"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceLow,
	},
	{
		ID:              "art-gallery",
		Name:            "Art Gallery",
		Description:     "Browse contemporary and classic works at a gallery.",
		Icon:            "🎨",
		Category:        CategoryCultural,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: weatherSet([]w.Category{w.Clouds, w.Rain, w.Drizzle}, lowVisibility),
		Tags:            []string{"art", "gallery", "exhibition", "painting"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "library-visit",
		Name:            "Library Visit",
		Description:     "Pick up a new book and settle into a reading nook.",
		Icon:            "📚",
		Category:        CategoryCultural,
		Intensity:       IntensityLow,
		Duration:        "1-3 hours",
		SuitableWeather: weatherSet(wetWeather, lowVisibility, badAir),
		Tags:            []string{"books", "reading", "quiet", "library"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "movie-theater",
		Name:            "Movie Theater",
		Description:     "Catch the latest release on the big screen.",
		Icon:            "🎬",
		Category:        CategoryEntertainment,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: weatherSet(wetWeather, lowVisibility, badAir),
		Tags:            []string{"movies", "cinema", "film", "popcorn"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "bowling",
		Name:            "Bowling",
		Description:     "Knock down some pins with friends or family.",
		Icon:            "🎳",
		Category:        CategoryEntertainment,
		Intensity:       IntensityMedium,
		Duration:        "1-2 hours",
		SuitableWeather: weatherSet(wetWeather, []w.Category{w.Fog, w.Dust, w.Squall}),
		Tags:            []string{"bowling", "games", "friends", "fun"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "board-game-cafe",
		Name:            "Board Game Café",
		Description:     "Pick from hundreds of games over coffee and snacks.",
		Icon:            "🎲",
		Category:        CategoryEntertainment,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: weatherSet(wetWeather, lowVisibility, badAir),
		Tags:            []string{"games", "cafe", "friends", "strategy"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceLow,
	},
	{
		ID:              "cafe-hopping",
		Name:            "Cozy Café Hopping",
		Description:     "Try pastries and lattes at a few neighborhood cafés.",
		Icon:            "☕",
		Category:        CategoryFood,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: []w.Category{w.Clouds, w.Rain, w.Drizzle, w.Snow, w.Mist, w.Fog},
		Tags:            []string{"coffee", "pastries", "cafe", "cozy"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceLow,
	},
	{
		ID:              "cooking-class",
		Name:            "Cooking Class",
		Description:     "Learn a new cuisine from a professional chef.",
		Icon:            "👩‍🍳",
		Category:        CategoryFood,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: weatherSet([]w.Category{w.Rain, w.Drizzle, w.Snow}, lowVisibility),
		Tags:            []string{"cooking", "class", "cuisine", "learning"},
		Indoor:          true,
		PriceRange:      PriceHigh,
	},
	{
		ID:              "home-baking",
		Name:            "Bake at Home",
		Description:     "Whip up cookies or bread with what is in the pantry.",
		Icon:            "🧁",
		Category:        CategoryFood,
		Intensity:       IntensityLow,
		Duration:        "1-2 hours",
		SuitableWeather: weatherSet(wetWeather, badAir, []w.Category{w.Tornado}),
		Tags:            []string{"baking", "home", "cookies", "kids"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceLow,
	},
	{
		ID:              "shopping-mall",
		Name:            "Shopping Mall",
		Description:     "Browse shops, grab lunch at the food court and stay dry.",
		Icon:            "🛍️",
		Category:        CategoryShopping,
		Intensity:       IntensityLow,
		Duration:        "2-4 hours",
		SuitableWeather: weatherSet(wetWeather, []w.Category{w.Haze}, badAir),
		Tags:            []string{"shopping", "mall", "stores", "food court"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "aquarium",
		Name:            "Aquarium Visit",
		Description:     "Watch sharks, jellyfish and penguins up close.",
		Icon:            "🐠",
		Category:        CategoryEntertainment,
		Intensity:       IntensityLow,
		Duration:        "2-3 hours",
		SuitableWeather: weatherSet([]w.Category{w.Clouds, w.Rain, w.Drizzle}, lowVisibility),
		Tags:            []string{"aquarium", "fish", "marine", "kids"},
		Indoor:          true,
		FamilyFriendly:  true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "indoor-climbing",
		Name:            "Indoor Rock Climbing",
		Description:     "Tackle bouldering problems at a climbing gym.",
		Icon:            "🧗",
		Category:        CategoryFitness,
		Intensity:       IntensityHigh,
		Duration:        "1-2 hours",
		SuitableWeather: weatherSet(wetWeather, lowVisibility, badAir),
		Tags:            []string{"climbing", "bouldering", "gym", "strength"},
		Indoor:          true,
		PriceRange:      PriceMedium,
	},
	{
		ID:              "home-workout",
		Name:            "Home Workout",
		Description:     "Follow a bodyweight routine without leaving the house.",
		Icon:            "🏋️",
		Category:        CategoryFitness,
		Intensity:       IntensityMedium,
		Duration:        "30-60 minutes",
		SuitableWeather: w.AllCategories(),
		Tags:            []string{"workout", "home", "bodyweight", "exercise"},
		Indoor:          true,
		PriceRange:      PriceFree,
	},
	{
		ID:              "spa-day",
		Name:            "Spa Day",
		Description:     "Unwind with a massage, sauna and steam room.",
		Icon:            "💆",
		Category:        CategoryRelaxation,
		Intensity:       IntensityLow,
		Duration:        "2-4 hours",
		SuitableWeather: weatherSet([]w.Category{w.Clouds, w.Rain, w.Drizzle, w.Snow}, lowVisibility),
		Tags:            []string{"spa", "massage", "wellness", "relax"},
		Indoor:          true,
		PriceRange:      PriceHigh,
	},
}
