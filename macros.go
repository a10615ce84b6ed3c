package main

import "math"

// Macro edit bounds. Protein is the first handle of the range control and
// carbsTotal the second, so carbs bounds apply to protein+carbs.
const (
	minProteinPercent    = 50
	maxProteinPercent    = 60
	minCarbsTotalPercent = 51
	maxCarbsTotalPercent = 99
)

// kcalPerGram is the Atwater factor per macro.
const (
	proteinKcalPerGram = 4
	carbsKcalPerGram   = 4
	fatKcalPerGram     = 9
)

// defaultMacroPair is the split every day type starts with.
var defaultMacroPair = macroPair{Protein: 60, Carbs: 25}

// defaultMultipliers: the standard plan eats maintenance every day, the
// 16:8 plan swings 7.5% either side of it.
var defaultMultipliers = [planCount]dayMultipliers{
	{Rest: 0, Training: 0},
	{Rest: -0.075, Training: 0.075},
}

// defaultKcalAdjustments returns the per-plan flat offset from maintenance
// for a gender: none on the standard plan, a deficit on the 16:8 plan.
func defaultKcalAdjustments(g gender) [planCount]float64 {
	if g == genderFemale {
		return [planCount]float64{0, -400}
	}
	return [planCount]float64{0, -500}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// clampMacroPair applies the range-control rule to a raw (protein,
// carbsTotal) edit and returns the persisted pair. The stored carbs value
// is carbsTotal-protein and is not clamped again, so it can go negative
// when the handles cross.
func clampMacroPair(proteinRaw, carbsTotalRaw float64) macroPair {
	protein := clamp(finiteOrZero(proteinRaw), minProteinPercent, maxProteinPercent)
	carbsTotal := clamp(finiteOrZero(carbsTotalRaw), minCarbsTotalPercent, maxCarbsTotalPercent)
	return macroPair{Protein: protein, Carbs: carbsTotal - protein}
}

// computeMacroTargets converts a maintenance BMR into one day's targets.
// The kcal adjustment is applied first, then the day multiplier, and the
// result is rounded before grams are floored.
func computeMacroTargets(bmr, kcalAdjustment, dayMultiplier float64, m macroPair) macroTargets {
	target := bmr + kcalAdjustment
	dayKcals := math.Round(target * (1 + dayMultiplier))

	grams := func(percent, kcalPerGram float64) int {
		return wholeOrZero(math.Floor(dayKcals * (percent / 100) / kcalPerGram))
	}
	return macroTargets{
		Kcals:        wholeOrZero(dayKcals),
		ProteinGrams: grams(m.Protein, proteinKcalPerGram),
		CarbsGrams:   grams(m.Carbs, carbsKcalPerGram),
		FatGrams:     grams(m.fat(), fatKcalPerGram),
	}
}

// computePlanTargets returns the rest and training targets for one plan.
func computePlanTargets(s appState, bmr float64, plan int) planTargets {
	adj := s.KcalAdjustments[plan]
	mult := s.Multipliers[plan]
	return planTargets{
		Title:    planTitles[plan],
		Rest:     computeMacroTargets(bmr, adj, mult.Rest, s.MacroPercents[plan*2+int(restDay)]),
		Training: computeMacroTargets(bmr, adj, mult.Training, s.MacroPercents[plan*2+int(trainingDay)]),
	}
}

/* ─── Derivation ─────────────────────────────────────────────────────── */

// requiredFields lists the inputs the BMR needs, in display order.
var requiredFields = []struct {
	label string
	value func(userProfile) float64
}{
	{"Weight", func(p userProfile) float64 { return p.WeightKg }},
	{"Age", func(p userProfile) float64 { return float64(p.Age) }},
	{"Height", func(p userProfile) float64 { return p.HeightCm }},
	{"Body Fat Percentage", func(p userProfile) float64 { return p.BodyFatPercent }},
}

// missingFields returns the labels of required inputs that are unset
// (zero) or negative.
func missingFields(p userProfile) []string {
	var missing []string
	for _, f := range requiredFields {
		if v := finiteOrZero(f.value(p)); v <= 0 {
			missing = append(missing, f.label)
		}
	}
	return missing
}

// derive computes everything the calculator displays from a state. Macro
// plans are only filled once every required input is present.
func derive(s appState) derivedProfile {
	bmr, rounded := computeBMR(s.userProfile)
	d := derivedProfile{
		Base:       computeBase(s.userProfile),
		BMR:        bmr,
		BMRRounded: rounded,
		Missing:    missingFields(s.userProfile),
	}
	if len(d.Missing) > 0 {
		return d
	}
	for plan := 0; plan < planCount; plan++ {
		d.Plans = append(d.Plans, computePlanTargets(s, bmr, plan))
	}
	return d
}
