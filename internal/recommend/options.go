package recommend

// Occasion option keys in form order. Labels live under "occasion_<key>".
var Occasions = []string{
	"eveningGala",
	"casualDaytime",
	"intimateDinner",
	"professionalSetting",
	"relaxingAtHome",
}

// Mood option keys in form order. Labels live under "mood_<key>".
var Moods = []string{
	"confidentPowerful",
	"romanticSophisticated",
	"vibrantEnergetic",
	"warmCozy",
	"mysteriousAlluring",
}

// ScentFamilies are the scent tags a visitor can toggle.
var ScentFamilies = []string{
	"Woody",
	"Floral",
	"Spicy",
	"Citrus",
	"Gourmand",
	"Leather",
	"Fresh",
}

// OccasionKey returns the translation key for an occasion option.
func OccasionKey(option string) string { return "occasion_" + option }

// MoodKey returns the translation key for a mood option.
func MoodKey(option string) string { return "mood_" + option }
