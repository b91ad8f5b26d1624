package schedule

import "github.com/akyairhashvil/marathon/internal/models"

// tables holds the weekly templates, 18 weeks of 7 day-codes per tier.
var tables = map[models.PlanTier][][]string{
	models.TierNovice1: {
		{"Rest", "3 m run", "3 m run", "3 m run", "Rest", "6 m run", "Cross"},
		{"Rest", "3 m run", "3 m run", "3 m run", "Rest", "9 m run", "Cross"},
		{"Rest", "3 m run", "4 m run", "3 m run", "Rest", "11 m run", "Cross"},
		{"Rest", "3 m run", "4 m run", "3 m run", "Rest", "8 m run", "Cross"},
		{"Rest", "3 m run", "5 m run", "3 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "3 m run", "5 m run", "3 m run", "Rest", "9 m run", "Cross"},
		{"Rest", "4 m run", "5 m run", "4 m run", "Rest", "14 m run", "Cross"},
		{"Rest", "4 m run", "5 m run", "4 m run", "Rest", "10 m run", "Cross"},
		{"Rest", "4 m run", "6 m run", "4 m run", "Rest", "16 m run", "Cross"},
		{"Rest", "4 m run", "6 m run", "4 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "5 m run", "6 m run", "5 m run", "Rest", "18 m run", "Cross"},
		{"Rest", "5 m run", "6 m run", "5 m run", "Rest", "14 m run", "Cross"},
		{"Rest", "5 m run", "7 m run", "5 m run", "Rest", "20 m run", "Cross"},
		{"Rest", "5 m run", "7 m run", "5 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "5 m run", "8 m run", "5 m run", "Rest", "20 m run", "Cross"},
		{"Rest", "5 m run", "8 m run", "5 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "4 m run", "6 m run", "4 m run", "Rest", "8 m run", "Cross"},
		{"Rest", "3 m run", "4 m run", "2 m run", "Rest", "Rest", "Marathon"},
	},
	models.TierNovice2: {
		{"Rest", "3 m run", "5 m pace", "3 m run", "Rest", "8 m run", "Cross"},
		{"Rest", "3 m run", "5 m run", "3 m run", "Rest", "9 m run", "Cross"},
		{"Rest", "3 m run", "5 m pace", "3 m run", "Rest", "6 m run", "Cross"},
		{"Rest", "3 m run", "6 m pace", "3 m run", "Rest", "11 m run", "Cross"},
		{"Rest", "3 m run", "6 m run", "3 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "3 m run", "6 m pace", "3 m run", "Rest", "9 m run", "Cross"},
		{"Rest", "4 m run", "7 m pace", "4 m run", "Rest", "14 m run", "Cross"},
		{"Rest", "4 m run", "7 m run", "4 m run", "Rest", "15 m run", "Cross"},
		{"Rest", "4 m run", "7 m pace", "4 m run", "Rest", "Rest", "Half Marathon"},
		{"Rest", "4 m run", "8 m pace", "4 m run", "Rest", "17 m run", "Cross"},
		{"Rest", "5 m run", "8 m run", "5 m run", "Rest", "18 m run", "Cross"},
		{"Rest", "5 m run", "8 m pace", "5 m run", "Rest", "13 m run", "Cross"},
		{"Rest", "5 m run", "5 m pace", "5 m run", "Rest", "19 m run", "Cross"},
		{"Rest", "5 m run", "8 m run", "5 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "5 m run", "5 m pace", "5 m run", "Rest", "20 m run", "Cross"},
		{"Rest", "5 m run", "4 m pace", "5 m run", "Rest", "12 m run", "Cross"},
		{"Rest", "4 m run", "3 m run", "4 m run", "Rest", "8 m run", "Cross"},
		{"Rest", "3 m run", "2 m run", "Rest", "Rest", "2 m run", "Marathon"},
	},
	models.TierIntermediate1: {
		{"Cross", "3 m run", "5 m run", "3 m run", "Rest", "5 m pace", "8 m run"},
		{"Cross", "3 m run", "5 m run", "3 m run", "Rest", "5 m run", "9 m run"},
		{"Cross", "3 m run", "5 m run", "3 m run", "Rest", "5 m pace", "6 m run"},
		{"Cross", "3 m run", "6 m run", "3 m run", "Rest", "6 m pace", "11 m run"},
		{"Cross", "3 m run", "6 m run", "3 m run", "Rest", "6 m run", "12 m run"},
		{"Cross", "3 m run", "5 m run", "3 m run", "Rest", "6 m pace", "9 m run"},
		{"Cross", "4 m run", "7 m run", "4 m run", "Rest", "7 m pace", "14 m run"},
		{"Cross", "4 m run", "7 m run", "4 m run", "Rest", "7 m run", "15 m run"},
		{"Cross", "4 m run", "5 m run", "4 m run", "Rest", "Rest", "Half Marathon"},
		{"Cross", "4 m run", "8 m run", "4 m run", "Rest", "8 m pace", "17 m run"},
		{"Cross", "5 m run", "8 m run", "5 m run", "Rest", "8 m run", "18 m run"},
		{"Cross", "5 m run", "5 m run", "5 m run", "Rest", "8 m pace", "13 m run"},
		{"Cross", "5 m run", "8 m run", "5 m run", "Rest", "5 m pace", "20 m run"},
		{"Cross", "5 m run", "5 m run", "5 m run", "Rest", "8 m run", "12 m run"},
		{"Cross", "5 m run", "8 m run", "5 m run", "Rest", "5 m pace", "20 m run"},
		{"Cross", "5 m run", "6 m run", "5 m run", "Rest", "4 m pace", "12 m run"},
		{"Cross", "4 m run", "5 m run", "4 m run", "Rest", "3 m run", "8 m run"},
		{"Cross", "3 m run", "4 m run", "Rest", "Rest", "2 m run", "Marathon"},
	},
	models.TierIntermediate2: {
		{"Cross", "3 mi run", "5 mi run", "3 mi run", "Rest", "5 mi pace", "10"},
		{"Cross", "3 mi run", "5 mi run", "3 mi run", "Rest", "5 mi run", "11"},
		{"Cross", "3 mi run", "6 mi run", "3 mi run", "Rest", "6 mi pace", "8"},
		{"Cross", "3 mi run", "6 mi run", "3 mi run", "Rest", "6 mi pace", "13"},
		{"Cross", "3 mi run", "7 mi run", "3 mi run", "Rest", "7 mi run", "14"},
		{"Cross", "3 mi run", "7 mi run", "3 mi run", "Rest", "7 mi pace", "10"},
		{"Cross", "4 mi run", "8 mi run", "4 mi run", "Rest", "8 mi pace", "16"},
		{"Cross", "4 mi run", "8 mi run", "4 mi run", "Rest", "8 mi run", "17"},
		{"Cross", "4 mi run", "9 mi run", "4 mi run", "Rest", "Rest", "Half Marathon"},
		{"Cross", "4 mi run", "9 mi run", "4 mi run", "Rest", "9 mi pace", "19"},
		{"Cross", "5 mi run", "10 mi run", "5 mi run", "Rest", "10 mi run", "20"},
		{"Cross", "5 mi run", "6 mi run", "5 mi run", "Rest", "6 mi pace", "12"},
		{"Cross", "5 mi run", "10 mi run", "5 mi run", "Rest", "10 mi pace", "20"},
		{"Cross", "5 mi run", "6 mi run", "5 mi run", "Rest", "6 mi run", "12"},
		{"Cross", "5 mi run", "10 mi run", "5 mi run", "Rest", "10 mi pace", "20"},
		{"Cross", "5 mi run", "8 mi run", "5 mi run", "Rest", "4 mi pace", "12"},
		{"Cross", "4 mi run", "6 mi run", "4 mi run", "Rest", "4 mi run", "8"},
		{"Cross", "3 mi run", "4 mi run", "Rest", "Rest", "2 mi run", "Marathon"},
	},
	models.TierAdvanced1: {
		{"3 mi run", "5 mi run", "3 mi run", "3 x hill", "Rest", "5 mi pace", "10"},
		{"3 mi run", "5 mi run", "3 mi run", "30 tempo", "Rest", "5 mi run", "11"},
		{"3 mi run", "6 mi run", "3 mi run", "4 x 800", "Rest", "6 mi pace", "8"},
		{"3 mi run", "6 mi run", "3 mi run", "4 x hill", "Rest", "6 mi pace", "13"},
		{"3 mi run", "7 mi run", "3 mi run", "35 tempo", "Rest", "7 mi run", "14"},
		{"3 mi run", "7 mi run", "3 mi run", "5 x 800", "Rest", "7 mi pace", "10"},
		{"3 mi run", "8 mi run", "4 mi run", "5 x hill", "Rest", "8 mi pace", "16"},
		{"3 mi run", "8 mi run", "4 mi run", "40 tempo", "Rest", "8 mi run", "17"},
		{"3 mi run", "9 mi run", "4 mi run", "6 x 800", "Rest", "Rest", "Half Marathon"},
		{"3 mi run", "9 mi run", "4 mi run", "6 x hill", "Rest", "9 mi pace", "19"},
		{"4 mi run", "10 mi run", "5 mi run", "45 tempo", "Rest", "10 mi run", "20"},
		{"4 mi run", "6 mi run", "5 mi run", "7 x 800", "Rest", "6 mi pace", "12"},
		{"4 mi run", "10 mi run", "5 mi run", "7 x hill", "Rest", "10 mi pace", "20"},
		{"5 mi run", "6 mi run", "5 mi run", "45 tempo", "Rest", "6 mi run", "12"},
		{"5 mi run", "10 mi run", "5 mi run", "8 x 800", "Rest", "10 mi pace", "20"},
		{"5 mi run", "8 mi run", "5 mi run", "6 x hill", "Rest", "4 mi pace", "12"},
		{"4 mi run", "6 mi run", "4 mi run", "30 tempo", "Rest", "4 mi run", "8"},
		{"3 mi run", "4 x 400", "2 mi run", "Rest", "Rest", "2 mi run", "Marathon"},
	},
	models.TierAdvanced2: {
		{"3 mi run", "5 mi run", "3 mi run", "3 x hill", "Rest", "5 m @ MP", "10"},
		{"3 mi run", "5 mi run", "3 mi run", "30 tempo", "Rest", "Rest", "10 mi w/4 @ MP"},
		{"3 mi run", "6 mi run", "3 mi run", "4 x 800", "Rest", "6 m @ MP", "8"},
		{"3 mi run", "6 mi run", "3 mi run", "4 x hill", "Rest", "Rest", "13 mi w/6 @ MP"},
		{"3 mi run", "7 mi run", "3 mi run", "35 tempo", "Rest", "7 m @ MP", "14"},
		{"3 mi run", "7 mi run", "3 mi run", "5 x 800", "Rest", "Rest", "10 mi w/7 @ MP"},
		{"3 mi run", "8 mi run", "4 mi run", "5 x hill", "Rest", "8 m @ MP", "16"},
		{"3 mi run", "8 mi run", "4 mi run", "40 tempo", "Rest", "Rest", "17 mi w/8 @ MP"},
		{"3 mi run", "9 mi run", "4 mi run", "6 x 800", "Rest", "Rest", "Half Marathon"},
		{"3 mi run", "9 mi run", "4 mi run", "6 x hill", "Rest", "9 m @ MP", "19"},
		{"4 mi run", "10 mi run", "5 mi run", "45 tempo", "Rest", "Rest", "20 mi w/10 @ MP"},
		{"4 mi run", "6 mi run", "5 mi run", "7 x 800", "Rest", "6 m @ MP", "12"},
		{"4 mi run", "10 mi run", "5 mi run", "7 x hill", "Rest", "Rest", "20 mi w/12 @ MP"},
		{"5 mi run", "6 mi run", "5 mi run", "45 tempo", "Rest", "6 m @ MP", "12"},
		{"5 mi run", "10 mi run", "5 mi run", "8 x 800", "Rest", "Rest", "20 mi w/15 @ MP"},
		{"5 mi run", "8 mi run", "5 mi run", "6 x hill", "Rest", "4 m @ MP", "12"},
		{"4 mi run", "6 mi run", "4 mi run", "30 tempo", "Rest", "4 m @ MP", "8"},
		{"3 mi run", "4 x 400", "2 mi run", "Rest", "Rest", "2 mi run", "Marathon"},
	},
}

