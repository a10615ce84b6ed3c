package main

import (
	"math"
	"strconv"
	"strings"
)

// bodyFatBands holds the per-gender body-fat thresholds. At or below LowEnd
// earns a bonus; MidStart..MidEnd (inclusive) costs half a point; every 5
// points past MidEnd costs one more.
type bodyFatBands struct {
	LowEnd   float64
	MidStart float64
	MidEnd   float64
}

var bodyFatBandsByGender = map[gender]bodyFatBands{
	genderMale:   {LowEnd: 10, MidStart: 20, MidEnd: 24},
	genderFemale: {LowEnd: 18, MidStart: 25, MidEnd: 29},
}

// heightBands holds the per-gender short/tall cutoffs in centimeters.
type heightBands struct {
	Short float64
	Tall  float64
}

var heightBandsByGender = map[gender]heightBands{
	genderMale:   {Short: 167, Tall: 185},
	genderFemale: {Short: 153, Tall: 170},
}

// muscleMassBonus maps each muscle-mass category to its base contribution.
var muscleMassBonus = map[muscleMass]float64{
	muscleAverage:      0,
	muscleMuscular:     0.5,
	muscleVeryMuscular: 1,
}

/* ─── Base terms ─────────────────────────────────────────────────────── */

// genderBase is the starting point of the base: 26 for women, 28 otherwise.
func genderBase(g gender) float64 {
	if g == genderFemale {
		return 26
	}
	return 28
}

// bodyFatBase rewards lean trainees and penalises each 5% step above the
// mid band. Values between the low end and the mid band contribute nothing.
func bodyFatBase(g gender, bodyFat float64) float64 {
	b := bodyFatBandsByGender[parseGender(string(g))]
	switch {
	case bodyFat <= b.LowEnd:
		return 0.5
	case bodyFat >= b.MidStart && bodyFat <= b.MidEnd:
		return -0.5
	case bodyFat > b.MidEnd:
		return -(0.5 + math.Ceil((bodyFat-b.MidEnd)/5))
	}
	return 0
}

// heightBase is +1 for tall, -1 for short, 0 in between (canonical cm).
func heightBase(g gender, heightCm float64) float64 {
	b := heightBandsByGender[parseGender(string(g))]
	if heightCm > b.Tall {
		return 1
	}
	if heightCm < b.Short {
		return -1
	}
	return 0
}

func muscleMassBase(m muscleMass) float64 {
	return muscleMassBonus[m]
}

// ageBase favours under-25s and penalises over-45s.
func ageBase(age int) float64 {
	if age > 45 {
		return -0.5
	}
	if age < 25 {
		return 0.5
	}
	return 0
}

// stepsBase gives half a point for 6000-7499 steps, then another half for
// every started block of 1250 steps past 7499.
func stepsBase(steps int) float64 {
	if steps >= 6000 && steps <= 7499 {
		return 0.5
	}
	if steps >= 7500 {
		return 0.5 + math.Ceil(float64(steps-7499)/1250)*0.5
	}
	return 0
}

/* ─── Base and BMR ───────────────────────────────────────────────────── */

// computeBase sums the six independent terms into the per-kilogram
// maintenance coefficient.
func computeBase(p userProfile) float64 {
	terms := [...]float64{
		genderBase(p.Gender),
		bodyFatBase(p.Gender, p.BodyFatPercent),
		heightBase(p.Gender, p.HeightCm),
		muscleMassBase(p.MuscleMass),
		ageBase(p.Age),
		stepsBase(p.StepsPerDay),
	}
	var base float64
	for _, t := range terms {
		base += t
	}
	return base
}

// computeBMR returns base * weight both raw and rounded for display.
// Use math.Round to match the display rounding of the calculator UI.
func computeBMR(p userProfile) (float64, int) {
	bmr := computeBase(p) * p.WeightKg
	return bmr, int(math.Round(bmr))
}

/* ─── Numeric coercion ───────────────────────────────────────────────── */

// parseNumber coerces user text to a number. Blank, non-numeric, NaN and
// infinite input all become 0 so NaN never reaches the formula.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// parseWhole coerces user text to an integer, truncating any fraction.
func parseWhole(s string) int {
	return wholeOrZero(parseNumber(s))
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// wholeOrZero truncates v toward zero, returning 0 for values an int can't hold.
func wholeOrZero(v float64) int {
	v = math.Trunc(finiteOrZero(v))
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(v)
}
