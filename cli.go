package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// cliFlags collects the edit flags. Numeric values stay as text so they
// get the same coercion as form input (non-numeric becomes 0).
type cliFlags struct {
	link            string
	units           string
	name            string
	gender          string
	weight          string
	height          string
	bodyFat         string
	muscle          string
	age             string
	steps           string
	macros          []string
	kcalAdjustments []string
	multipliers     []string
}

func newFlagSet(f *cliFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("leangains", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("data", "", "encoded state token (blob or legacy comma list)")
	fs.StringVar(&f.link, "link", "", "share link containing #data=<token>")
	fs.String("share-url", defaultShareURL, "base URL for the emitted share link")
	fs.String("format", formatBlob, "link encoding: blob or legacy")
	fs.Bool("json", false, "print the result as JSON")

	fs.StringVar(&f.units, "units", "", "unit system for display and entry: metric or imperial")
	fs.StringVar(&f.name, "name", "", "display name")
	fs.StringVar(&f.gender, "gender", "", "biological sex: M or F")
	fs.StringVar(&f.weight, "weight", "", "weight in kg (lbs when imperial)")
	fs.StringVar(&f.height, "height", "", "height in cm (inches when imperial)")
	fs.StringVar(&f.bodyFat, "body-fat", "", "body fat percentage")
	fs.StringVar(&f.muscle, "muscle", "", "muscle mass: NA, M or VM")
	fs.StringVar(&f.age, "age", "", "age in years")
	fs.StringVar(&f.steps, "steps", "", "average steps per day")
	fs.StringArrayVar(&f.macros, "macros", nil, "macro split as slot=protein:carbsTotal, slot 0-3 (repeatable)")
	fs.StringArrayVar(&f.kcalAdjustments, "kcal-adjustment", nil, "flat kcal offset as plan=kcal, plan 0-1 (repeatable)")
	fs.StringArrayVar(&f.multipliers, "multiplier", nil, "day multiplier as plan:rest=x or plan:training=x (repeatable)")
	return fs
}

// edits turns the flags that were explicitly set into state edits. Units
// go first so weight and height are read in the new system.
func (f *cliFlags) edits(fs *pflag.FlagSet) ([]edit, error) {
	var edits []edit

	if fs.Changed("units") {
		u, err := parseUnitsFlag(f.units)
		if err != nil {
			return nil, err
		}
		edits = append(edits, setUnits(u))
	}
	if fs.Changed("name") {
		edits = append(edits, setName(f.name))
	}
	if fs.Changed("gender") {
		g, err := parseGenderFlag(f.gender)
		if err != nil {
			return nil, err
		}
		edits = append(edits, setGender(g))
	}
	if fs.Changed("weight") {
		edits = append(edits, setWeight(parseNumber(f.weight)))
	}
	if fs.Changed("height") {
		edits = append(edits, setHeight(parseNumber(f.height)))
	}
	if fs.Changed("body-fat") {
		edits = append(edits, setBodyFat(parseNumber(f.bodyFat)))
	}
	if fs.Changed("muscle") {
		m, err := parseMuscleFlag(f.muscle)
		if err != nil {
			return nil, err
		}
		edits = append(edits, setMuscleMass(m))
	}
	if fs.Changed("age") {
		edits = append(edits, setAge(parseWhole(f.age)))
	}
	if fs.Changed("steps") {
		edits = append(edits, setSteps(parseWhole(f.steps)))
	}

	for _, spec := range f.macros {
		e, err := parseMacroSpec(spec)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	for _, spec := range f.kcalAdjustments {
		e, err := parseKcalSpec(spec)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	for _, spec := range f.multipliers {
		e, err := parseMultiplierSpec(spec)
		if err != nil {
			return nil, err
		}
		edits = append(edits, e)
	}
	return edits, nil
}

/* ─── Flag value parsing ─────────────────────────────────────────────── */

func parseUnitsFlag(v string) (unitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "metric", "1":
		return unitsMetric, nil
	case "imperial", "0":
		return unitsImperial, nil
	}
	return 0, fmt.Errorf("units must be metric or imperial, got %q", v)
}

func parseGenderFlag(v string) (gender, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "m", "male":
		return genderMale, nil
	case "f", "female":
		return genderFemale, nil
	}
	return "", fmt.Errorf("gender must be M or F, got %q", v)
}

func parseMuscleFlag(v string) (muscleMass, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "na", "average":
		return muscleAverage, nil
	case "m", "muscular":
		return muscleMuscular, nil
	case "vm", "very-muscular":
		return muscleVeryMuscular, nil
	}
	return "", fmt.Errorf("muscle must be NA, M or VM, got %q", v)
}

// parseIndex reads a slot or plan index and checks it is below n.
func parseIndex(flag, v string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i < 0 || i >= n {
		return 0, fmt.Errorf("%s: index must be 0-%d, got %q", flag, n-1, v)
	}
	return i, nil
}

// parseMacroSpec parses "slot=protein:carbsTotal".
func parseMacroSpec(spec string) (edit, error) {
	idx, value, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, fmt.Errorf("macros: expected slot=protein:carbsTotal, got %q", spec)
	}
	slot, err := parseIndex("macros", idx, planCount*2)
	if err != nil {
		return nil, err
	}
	protein, carbs, ok := strings.Cut(value, ":")
	if !ok {
		return nil, fmt.Errorf("macros: expected slot=protein:carbsTotal, got %q", spec)
	}
	return setMacroPercents(slot, parseNumber(protein), parseNumber(carbs)), nil
}

// parseKcalSpec parses "plan=kcal".
func parseKcalSpec(spec string) (edit, error) {
	idx, value, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, fmt.Errorf("kcal-adjustment: expected plan=kcal, got %q", spec)
	}
	plan, err := parseIndex("kcal-adjustment", idx, planCount)
	if err != nil {
		return nil, err
	}
	return setKcalAdjustment(plan, parseNumber(value)), nil
}

// parseMultiplierSpec parses "plan:rest=x" or "plan:training=x".
func parseMultiplierSpec(spec string) (edit, error) {
	target, value, ok := strings.Cut(spec, "=")
	if !ok {
		return nil, fmt.Errorf("multiplier: expected plan:day=x, got %q", spec)
	}
	idx, day, ok := strings.Cut(target, ":")
	if !ok {
		return nil, fmt.Errorf("multiplier: expected plan:day=x, got %q", spec)
	}
	plan, err := parseIndex("multiplier", idx, planCount)
	if err != nil {
		return nil, err
	}
	var d dayType
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "rest":
		d = restDay
	case "training":
		d = trainingDay
	default:
		return nil, fmt.Errorf("multiplier: day must be rest or training, got %q", day)
	}
	return setMultiplier(plan, d, parseNumber(value)), nil
}
