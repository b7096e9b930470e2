package weather

const (
	fallbackIcon    = "🌡️"
	fallbackMessage = "Check activities for today!"
)

var conditionIcons = map[string]string{
	"01d": "☀️",
	"01n": "🌙",
	"02d": "⛅",
	"02n": "☁️",
	"03d": "☁️",
	"03n": "☁️",
	"04d": "☁️",
	"04n": "☁️",
	"09d": "🌧️",
	"09n": "🌧️",
	"10d": "🌦️",
	"10n": "🌧️",
	"11d": "⛈️",
	"11n": "⛈️",
	"13d": "🌨️",
	"13n": "🌨️",
	"50d": "🌫️",
	"50n": "🌫️",
}

// ConditionIcon maps a provider icon code such as "10d" to an emoji.
func ConditionIcon(code string) string {
	if icon, ok := conditionIcons[code]; ok {
		return icon
	}
	return fallbackIcon
}

// Icon returns the emoji shown for a category.
func Icon(c Category) string {
	if icon, ok := categoryIcon(c); ok {
		return icon
	}
	return fallbackIcon
}

// Message returns the advisory sentence shown for a category.
func Message(c Category) string {
	if msg, ok := categoryMessage(c); ok {
		return msg
	}
	return fallbackMessage
}

// Background returns the gradient token the frontend paints behind a category.
func Background(c Category) string {
	if bg, ok := categoryBackground(c); ok {
		return bg
	}
	bg, _ := categoryBackground(Clear)
	return bg
}

// The lookups below switch over every Category constant; the fallbacks above
// only fire for values outside the enum.

func categoryIcon(c Category) (string, bool) {
	switch c {
	case Clear:
		return "☀️", true
	case Clouds:
		return "☁️", true
	case Rain:
		return "🌧️", true
	case Drizzle:
		return "🌦️", true
	case Thunderstorm:
		return "⛈️", true
	case Snow:
		return "🌨️", true
	case Mist, Fog:
		return "🌫️", true
	case Haze:
		return "😶‍🌫️", true
	case Dust, Sand:
		return "🏜️", true
	case Ash:
		return "🌋", true
	case Squall:
		return "💨", true
	case Tornado:
		return "🌪️", true
	}
	return "", false
}

func categoryMessage(c Category) (string, bool) {
	switch c {
	case Clear:
		return "Perfect weather for outdoor activities!", true
	case Clouds:
		return "Great weather for a walk or outdoor dining.", true
	case Rain:
		return "Time for cozy indoor activities!", true
	case Drizzle:
		return "Light rain - indoor activities recommended.", true
	case Thunderstorm:
		return "Stay safe indoors and enjoy some entertainment.", true
	case Snow:
		return "Beautiful snowy day - winter activities await!", true
	case Mist:
		return "Low visibility - consider indoor options.", true
	case Fog:
		return "Foggy conditions - indoor activities are safer.", true
	case Haze:
		return "Hazy weather - light outdoor activities okay.", true
	case Dust:
		return "Dusty conditions - stay indoors if possible.", true
	case Sand:
		return "Sandy conditions - indoor activities recommended.", true
	case Ash:
		return "Air quality concern - stay indoors.", true
	case Squall:
		return "Gusty winds - indoor activities safer.", true
	case Tornado:
		return "Severe weather - seek shelter immediately!", true
	}
	return "", false
}

func categoryBackground(c Category) (string, bool) {
	switch c {
	case Clear:
		return "from-blue-400 to-blue-600", true
	case Clouds:
		return "from-gray-400 to-gray-600", true
	case Rain:
		return "from-slate-500 to-slate-700", true
	case Drizzle:
		return "from-slate-400 to-slate-600", true
	case Thunderstorm:
		return "from-purple-700 to-slate-800", true
	case Snow:
		return "from-blue-100 to-blue-300", true
	case Mist, Fog:
		return "from-gray-300 to-gray-500", true
	case Haze:
		return "from-yellow-200 to-orange-300", true
	case Dust:
		return "from-orange-300 to-orange-500", true
	case Sand:
		return "from-yellow-400 to-orange-500", true
	case Ash:
		return "from-gray-500 to-gray-700", true
	case Squall:
		return "from-slate-600 to-slate-800", true
	case Tornado:
		return "from-slate-700 to-slate-900", true
	}
	return "", false
}
