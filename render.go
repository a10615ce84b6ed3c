package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

var genderLabels = map[gender]string{
	genderMale:   "Male",
	genderFemale: "Female",
}

var muscleLabels = map[muscleMass]string{
	muscleAverage:      "Average",
	muscleMuscular:     "Muscular",
	muscleVeryMuscular: "Very Muscular",
}

// profileView is the profile as the user sees it, in display units.
type profileView struct {
	Name           string  `json:"name"`
	Gender         string  `json:"gender"`
	Units          string  `json:"units"`
	Weight         float64 `json:"weight"`
	Height         float64 `json:"height"`
	WeightKg       float64 `json:"weight_kg"`
	HeightCm       float64 `json:"height_cm"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	MuscleMass     string  `json:"muscle_mass"`
	Age            int     `json:"age"`
	StepsPerDay    int     `json:"steps_per_day"`
}

// report is the --json output shape.
type report struct {
	Profile profileView    `json:"profile"`
	Derived derivedProfile `json:"derived"`
	Token   string         `json:"token"`
	Link    string         `json:"link"`
}

func newProfileView(p userProfile) profileView {
	return profileView{
		Name:           p.Name,
		Gender:         string(parseGender(string(p.Gender))),
		Units:          p.Units.String(),
		Weight:         displayWeight(p.Units, p.WeightKg),
		Height:         displayHeight(p.Units, p.HeightCm),
		WeightKg:       p.WeightKg,
		HeightCm:       p.HeightCm,
		BodyFatPercent: p.BodyFatPercent,
		MuscleMass:     string(parseMuscleMass(string(p.MuscleMass))),
		Age:            p.Age,
		StepsPerDay:    p.StepsPerDay,
	}
}

func renderJSON(w io.Writer, r report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatDisplay(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// renderText prints the calculator view: inputs, maintenance intake, and
// either the list of missing inputs or both plans' macro tables.
func renderText(w io.Writer, s appState, d derivedProfile, link string) error {
	weightUnit, heightUnit := "kg", "cm"
	if s.Units == unitsImperial {
		weightUnit, heightUnit = "lbs", "in"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if s.Name != "" {
		fmt.Fprintf(tw, "Name\t%s\n", s.Name)
	}
	fmt.Fprintf(tw, "Sex\t%s\n", genderLabels[parseGender(string(s.Gender))])
	fmt.Fprintf(tw, "Weight\t%s %s\n", formatDisplay(displayWeight(s.Units, s.WeightKg)), weightUnit)
	fmt.Fprintf(tw, "Height\t%s %s\n", formatDisplay(displayHeight(s.Units, s.HeightCm)), heightUnit)
	fmt.Fprintf(tw, "Body fat\t%s%%\n", formatDisplay(s.BodyFatPercent))
	fmt.Fprintf(tw, "Muscle mass\t%s\n", muscleLabels[parseMuscleMass(string(s.MuscleMass))])
	fmt.Fprintf(tw, "Age\t%d\n", s.Age)
	fmt.Fprintf(tw, "Steps per day\t%d\n", s.StepsPerDay)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Maintenance Intake")
	if len(d.Missing) > 0 {
		for _, m := range d.Missing {
			fmt.Fprintf(w, "  [ ] Provide your %s\n", m)
		}
	} else {
		fmt.Fprintf(w, "  %d daily kcals (base %s)\n", d.BMRRounded, formatDisplay(d.Base))
	}

	for i, plan := range d.Plans {
		fmt.Fprintln(w)
		fmt.Fprintln(w, plan.Title)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "\tkcal\tprotein\tcarbs\tfat\t")
		for _, day := range []dayType{restDay, trainingDay} {
			t := plan.Rest
			if day == trainingDay {
				t = plan.Training
			}
			m := s.MacroPercents[i*2+int(day)]
			fmt.Fprintf(tw, "%s\t%d\t%dg (%s%%)\t%dg (%s%%)\t%dg (%s%%)\t\n",
				day, t.Kcals,
				t.ProteinGrams, formatDisplay(m.Protein),
				t.CarbsGrams, formatDisplay(m.Carbs),
				t.FatGrams, formatDisplay(m.fat()))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nShare link: %s\n", link)
	return err
}
