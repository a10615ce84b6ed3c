package main

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// maxNameLength is the longest name kept, in characters.
const maxNameLength = 45

// Imperial conversion factors used by the calculator for entry and display.
const (
	cmPerInch = 2.54
	lbsPerKg  = 2.2
)

// edit is a single-field change. Every edit returns a new state and leaves
// its argument untouched.
type edit func(appState) appState

// applyEdits runs edits in order, starting from s.
func applyEdits(s appState, edits ...edit) appState {
	for _, e := range edits {
		s = e(s)
	}
	return s
}

/* ─── Profile edits ──────────────────────────────────────────────────── */

// setName normalises the name to NFC before truncating so a combining mark
// is never split from its base letter.
func setName(name string) edit {
	return func(s appState) appState {
		runes := []rune(norm.NFC.String(name))
		if len(runes) > maxNameLength {
			runes = runes[:maxNameLength]
		}
		s.Name = string(runes)
		return s
	}
}

func setGender(g gender) edit {
	return func(s appState) appState {
		s.Gender = parseGender(string(g))
		return s
	}
}

func setMuscleMass(m muscleMass) edit {
	return func(s appState) appState {
		s.MuscleMass = parseMuscleMass(string(m))
		return s
	}
}

// setUnits switches the display system. Stored kg and cm are unchanged.
func setUnits(u unitSystem) edit {
	return func(s appState) appState {
		s.Units = u
		return s
	}
}

// setWeight takes a weight in the state's current display unit.
func setWeight(display float64) edit {
	return func(s appState) appState {
		s.WeightKg = weightToKg(s.Units, display)
		return s
	}
}

// setHeight takes a height in the state's current display unit.
func setHeight(display float64) edit {
	return func(s appState) appState {
		s.HeightCm = heightToCm(s.Units, display)
		return s
	}
}

func setBodyFat(percent float64) edit {
	return func(s appState) appState {
		s.BodyFatPercent = finiteOrZero(percent)
		return s
	}
}

func setAge(age int) edit {
	return func(s appState) appState {
		s.Age = age
		return s
	}
}

func setSteps(steps int) edit {
	return func(s appState) appState {
		s.StepsPerDay = steps
		return s
	}
}

/* ─── Macro edits ────────────────────────────────────────────────────── */

// setMacroPercents stores a raw (protein, carbsTotal) range-control edit
// for one of the four day slots after clamp-and-derive.
func setMacroPercents(index int, proteinRaw, carbsTotalRaw float64) edit {
	return func(s appState) appState {
		if index < 0 || index >= len(s.MacroPercents) {
			return s
		}
		s.MacroPercents[index] = clampMacroPair(proteinRaw, carbsTotalRaw)
		return s
	}
}

func setKcalAdjustment(plan int, kcal float64) edit {
	return func(s appState) appState {
		if plan < 0 || plan >= len(s.KcalAdjustments) {
			return s
		}
		s.KcalAdjustments[plan] = finiteOrZero(kcal)
		return s
	}
}

func setMultiplier(plan int, day dayType, multiplier float64) edit {
	return func(s appState) appState {
		if plan < 0 || plan >= len(s.Multipliers) {
			return s
		}
		v := finiteOrZero(multiplier)
		if day == restDay {
			s.Multipliers[plan].Rest = v
		} else {
			s.Multipliers[plan].Training = v
		}
		return s
	}
}

/* ─── Unit conversion ────────────────────────────────────────────────── */

func weightToKg(u unitSystem, display float64) float64 {
	display = finiteOrZero(display)
	if u == unitsImperial {
		return display / lbsPerKg
	}
	return display
}

func heightToCm(u unitSystem, display float64) float64 {
	display = finiteOrZero(display)
	if u == unitsImperial {
		return display * cmPerInch
	}
	return display
}

// nearest rounds to two decimals for display.
func nearest(v float64) float64 {
	return math.Round(v*100) / 100
}

func displayWeight(u unitSystem, kg float64) float64 {
	if u == unitsImperial {
		return nearest(kg * lbsPerKg)
	}
	return nearest(kg)
}

func displayHeight(u unitSystem, cm float64) float64 {
	if u == unitsImperial {
		return nearest(cm / cmPerInch)
	}
	return nearest(cm)
}
