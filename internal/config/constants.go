package config

// Plan shape.
const (
	PlanWeeks   = 18
	DaysPerWeek = 7
	PlanDays    = PlanWeeks * DaysPerWeek
)

// Race distances in miles.
const (
	MarathonMiles     = 26.2
	HalfMarathonMiles = 13.1
)

// Run description tiers, in miles.
const (
	LongRunMiles       = 15
	MediumLongRunMiles = 10
)

// Unit conversion.
const KilometersPerMile = 1.609344

// Effort bounds for perceived effort ratings.
const (
	MinEffort = 1
	MaxEffort = 5
)

// User preference values.
const (
	UnitsMiles = "miles"
	UnitsKm    = "km"

	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Database/application settings.
const (
	AppName               = "marathon"
	DBFileName            = "marathon.db"
	LogFileName           = "marathon.log"
	ConfigFileName        = "config"
	EnvPrefix             = "MARATHON"
	MaxPassphraseAttempts = 3
)
