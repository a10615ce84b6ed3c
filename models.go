package main

import "strings"

// gender is the persisted biological-sex code: "M" or "F".
type gender string

const (
	genderMale   gender = "M"
	genderFemale gender = "F"
)

// parseGender maps a persisted code to a gender. Anything other than "F"
// (including "" and unknown codes) is treated as male.
func parseGender(s string) gender {
	if strings.TrimSpace(s) == string(genderFemale) {
		return genderFemale
	}
	return genderMale
}

// muscleMass is the persisted muscle-mass code: "NA", "M" or "VM".
type muscleMass string

const (
	muscleAverage      muscleMass = "NA"
	muscleMuscular     muscleMass = "M"
	muscleVeryMuscular muscleMass = "VM"
)

// parseMuscleMass maps a persisted code to a muscle-mass category,
// defaulting to average for unknown codes.
func parseMuscleMass(s string) muscleMass {
	switch muscleMass(strings.TrimSpace(s)) {
	case muscleMuscular:
		return muscleMuscular
	case muscleVeryMuscular:
		return muscleVeryMuscular
	default:
		return muscleAverage
	}
}

// unitSystem only affects how weight and height are displayed and entered.
// Stored values are always kilograms and centimeters.
type unitSystem int

const (
	unitsMetric unitSystem = iota
	unitsImperial
)

func (u unitSystem) String() string {
	if u == unitsImperial {
		return "imperial"
	}
	return "metric"
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// userProfile holds the raw, user-editable attributes. Weight is in kg and
// height in cm regardless of the unit system.
type userProfile struct {
	Name           string
	Gender         gender
	WeightKg       float64
	HeightCm       float64
	BodyFatPercent float64
	MuscleMass     muscleMass
	Age            int
	StepsPerDay    int
	Units          unitSystem
}

// macroPair is the persisted macro split for one day type. Carbs is the
// distance between the two handles of the range control, so the second
// handle sits at Protein+Carbs and fat is whatever remains of 100.
type macroPair struct {
	Protein float64
	Carbs   float64
}

// fat returns the implied fat percentage.
func (m macroPair) fat() float64 {
	return 100 - (m.Protein + m.Carbs)
}

// dayMultipliers is the caloric swing around maintenance for each day type.
type dayMultipliers struct {
	Rest     float64
	Training float64
}

// dayType selects the rest or training variant of a plan.
type dayType int

const (
	restDay dayType = iota
	trainingDay
)

func (d dayType) String() string {
	if d == trainingDay {
		return "training"
	}
	return "rest"
}

// Plan indices. Macro percents are indexed plan*2 + dayType.
const (
	planStandard = 0
	planFasting  = 1
	planCount    = 2
)

// planTitles are the display names of the two plans, indexed by plan.
var planTitles = [planCount]string{"Standard", "16:8 (Intermittent Fasting)"}

// appState is everything that gets persisted into a share link. Collections
// are fixed-size arrays so copying an appState never aliases the original.
type appState struct {
	userProfile
	MacroPercents   [planCount * 2]macroPair
	KcalAdjustments [planCount]float64
	Multipliers     [planCount]dayMultipliers
}

// macroTargets is one day's calorie and gram targets.
type macroTargets struct {
	Kcals        int `json:"kcals"`
	ProteinGrams int `json:"protein_g"`
	CarbsGrams   int `json:"carbs_g"`
	FatGrams     int `json:"fat_g"`
}

// planTargets pairs the rest and training targets of one plan.
type planTargets struct {
	Title    string       `json:"title"`
	Rest     macroTargets `json:"rest"`
	Training macroTargets `json:"training"`
}

// derivedProfile is recomputed from an appState on every change and is
// never persisted. Plans is empty while required inputs are missing.
type derivedProfile struct {
	Base       float64       `json:"base"`
	BMR        float64       `json:"bmr"`
	BMRRounded int           `json:"bmr_rounded"`
	Missing    []string      `json:"missing,omitempty"`
	Plans      []planTargets `json:"plans,omitempty"`
}
