package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeProfile constructs a userProfile for base/BMR tests. Units default to
// metric; individual tests override single fields.
func makeProfile(g gender, weightKg, heightCm, bodyFat float64, m muscleMass, age, steps int) userProfile {
	return userProfile{
		Gender:         g,
		WeightKg:       weightKg,
		HeightCm:       heightCm,
		BodyFatPercent: bodyFat,
		MuscleMass:     m,
		Age:            age,
		StepsPerDay:    steps,
	}
}

// baselineMale is the reference profile: 90kg, 6ft, 13% body fat, muscular,
// 38 years old, 6600 steps a day.
func baselineMale() userProfile {
	return makeProfile(genderMale, 90, 182.88, 13, muscleMuscular, 38, 6600)
}

/* ─── Scenario tests ─────────────────────────────────────────────────── */

// TestComputeBase_BaselineMale checks 28 + 0 + 0 + 0.5 + 0 + 0.5 = 29 and
// BMR 29 * 90 = 2610.
func TestComputeBase_BaselineMale(t *testing.T) {
	p := baselineMale()
	assert.Equal(t, 29.0, computeBase(p))

	bmr, rounded := computeBMR(p)
	assert.Equal(t, 2610.0, bmr)
	assert.Equal(t, 2610, rounded)
}

// TestComputeBase_Female: 26 + 0 (22% sits between 18 and 25) + 0 + 0 + 0
// + 1.0 (8000 steps is one block past 7499) = 27.
func TestComputeBase_Female(t *testing.T) {
	p := makeProfile(genderFemale, 60, 165, 22, muscleAverage, 30, 8000)
	assert.Equal(t, 27.0, computeBase(p))

	_, rounded := computeBMR(p)
	assert.Equal(t, 1620, rounded)
}

// TestComputeBMR_RoundsForDisplay verifies the raw value is kept and the
// display value rounds half away from zero.
func TestComputeBMR_RoundsForDisplay(t *testing.T) {
	p := baselineMale()
	p.WeightKg = 80.5
	bmr, rounded := computeBMR(p)
	assert.InDelta(t, 2334.5, bmr, 1e-9)
	assert.Equal(t, 2335, rounded)
}

// TestComputeBMR_NegativeWeightFlowsThrough: the engine doesn't validate.
func TestComputeBMR_NegativeWeightFlowsThrough(t *testing.T) {
	p := baselineMale()
	p.WeightKg = -10
	bmr, rounded := computeBMR(p)
	assert.Equal(t, -290.0, bmr)
	assert.Equal(t, -290, rounded)
}

// TestComputeBase_Deterministic verifies repeated calls agree and the
// input is not modified.
func TestComputeBase_Deterministic(t *testing.T) {
	p := baselineMale()
	before := p
	first := computeBase(p)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, computeBase(p))
	}
	assert.Equal(t, before, p)
}

/* ─── Per-term tests ─────────────────────────────────────────────────── */

func TestGenderBase(t *testing.T) {
	assert.Equal(t, 28.0, genderBase(genderMale))
	assert.Equal(t, 26.0, genderBase(genderFemale))
	assert.Equal(t, 28.0, genderBase(""), "unknown gender counts as male")
	assert.Equal(t, 28.0, genderBase("X"))
}

func TestBodyFatBase(t *testing.T) {
	cases := []struct {
		name    string
		g       gender
		bodyFat float64
		want    float64
	}{
		{"male lean", genderMale, 8, 0.5},
		{"male low end inclusive", genderMale, 10, 0.5},
		{"male between bands", genderMale, 13, 0},
		{"male just below mid band", genderMale, 19.9, 0},
		{"male mid band start", genderMale, 20, -0.5},
		{"male mid band end", genderMale, 24, -0.5},
		{"male just past mid band", genderMale, 24.1, -1.5},
		{"male one step", genderMale, 29, -1.5},
		{"male penalty", genderMale, 35, -3.5},
		{"female low end inclusive", genderFemale, 18, 0.5},
		{"female between bands", genderFemale, 20, 0},
		{"female mid band", genderFemale, 25, -0.5},
		{"female mid band end", genderFemale, 29, -0.5},
		{"female penalty", genderFemale, 30, -1.5},
		{"female 12 is lean", genderFemale, 12, 0.5},
		{"unknown gender uses male bands", "X", 12, 0},
		{"zero body fat", genderMale, 0, 0.5},
		{"negative body fat", genderMale, -5, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bodyFatBase(tc.g, tc.bodyFat))
		})
	}
}

func TestHeightBase(t *testing.T) {
	cases := []struct {
		name   string
		g      gender
		height float64
		want   float64
	}{
		{"male tall", genderMale, 186, 1},
		{"male tall cutoff exclusive", genderMale, 185, 0},
		{"male average", genderMale, 175, 0},
		{"male short cutoff exclusive", genderMale, 167, 0},
		{"male short", genderMale, 166.9, -1},
		{"female tall", genderFemale, 171, 1},
		{"female average", genderFemale, 160, 0},
		{"female short", genderFemale, 152, -1},
		{"missing height is short", genderMale, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, heightBase(tc.g, tc.height))
		})
	}
}

func TestMuscleMassBase(t *testing.T) {
	assert.Equal(t, 0.0, muscleMassBase(muscleAverage))
	assert.Equal(t, 0.5, muscleMassBase(muscleMuscular))
	assert.Equal(t, 1.0, muscleMassBase(muscleVeryMuscular))
	assert.Equal(t, 0.0, muscleMassBase("huge"))
}

func TestAgeBase(t *testing.T) {
	cases := map[int]float64{
		0:  0.5,
		24: 0.5,
		25: 0,
		38: 0,
		45: 0,
		46: -0.5,
		90: -0.5,
	}
	for age, want := range cases {
		assert.Equal(t, want, ageBase(age), "age %d", age)
	}
}

func TestStepsBase(t *testing.T) {
	cases := map[int]float64{
		0:     0,
		5999:  0,
		6000:  0.5,
		6600:  0.5,
		7499:  0.5,
		7500:  1.0,
		8749:  1.0,
		8750:  1.5,
		10000: 2.0,
		-100:  0,
	}
	for steps, want := range cases {
		assert.Equal(t, want, stepsBase(steps), "steps %d", steps)
	}
}

/* ─── Numeric coercion tests ─────────────────────────────────────────── */

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"":        0,
		"   ":     0,
		"abc":     0,
		"12kg":    0,
		"NaN":     0,
		"Inf":     0,
		"-Inf":    0,
		" 12.5 ":  12.5,
		"-3":      -3,
		"182.88":  182.88,
		"1e3":     1000,
		"1e400":   0,
		"0.00001": 0.00001,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseNumber(in), "input %q", in)
	}
}

func TestParseWhole(t *testing.T) {
	assert.Equal(t, 38, parseWhole("38"))
	assert.Equal(t, 38, parseWhole("38.9"))
	assert.Equal(t, -2, parseWhole("-2.5"))
	assert.Equal(t, 0, parseWhole("lots"))
	assert.Equal(t, 0, parseWhole("1e12"), "out of range values become 0")
}
