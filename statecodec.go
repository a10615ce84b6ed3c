package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Two persisted formats exist. Blob tokens (base64 of a JSON object) are
// canonical and carry macro settings. Legacy tokens are the comma list
// name,gender,weight,height,bodyFat,muscle,age,steps,metricBit from the
// first calculator release; they are still decoded so old links work.

// blobState is the JSON shape inside a blob token. Key names match the
// links the calculator has already handed out.
type blobState struct {
	Name              string       `json:"name"`
	Gender            string       `json:"gender"`
	Weight            float64      `json:"weight"`
	Height            float64      `json:"height"`
	BodyFatPercentage float64      `json:"bodyFatPercentage"`
	MuscleMassAttr    string       `json:"muscleMassAttr"`
	Age               int          `json:"age"`
	StepsPerDay       int          `json:"stepsPerDay"`
	Metric            bool         `json:"metric"`
	MacroPercents     [][2]float64 `json:"macroPercents"`
	KcalAdjustments   []float64    `json:"kcalAdjustments"`
	Multipliers       [][2]float64 `json:"multipliers"`
}

// defaultState is what an empty or unreadable token decodes to.
func defaultState() appState {
	s := appState{
		userProfile: userProfile{
			Gender:     genderMale,
			MuscleMass: muscleAverage,
			Units:      unitsMetric,
		},
		KcalAdjustments: defaultKcalAdjustments(genderMale),
		Multipliers:     defaultMultipliers,
	}
	for i := range s.MacroPercents {
		s.MacroPercents[i] = defaultMacroPair
	}
	return s
}

/* ─── Encoding ───────────────────────────────────────────────────────── */

// encodeState returns the canonical blob token for s. Non-finite numbers
// are written as 0 so the JSON is always valid.
func encodeState(s appState) string {
	b := blobState{
		Name:              s.Name,
		Gender:            string(parseGender(string(s.Gender))),
		Weight:            finiteOrZero(s.WeightKg),
		Height:            finiteOrZero(s.HeightCm),
		BodyFatPercentage: finiteOrZero(s.BodyFatPercent),
		MuscleMassAttr:    string(parseMuscleMass(string(s.MuscleMass))),
		Age:               s.Age,
		StepsPerDay:       s.StepsPerDay,
		Metric:            s.Units != unitsImperial,
	}
	for _, m := range s.MacroPercents {
		b.MacroPercents = append(b.MacroPercents, [2]float64{finiteOrZero(m.Protein), finiteOrZero(m.Carbs)})
	}
	for _, k := range s.KcalAdjustments {
		b.KcalAdjustments = append(b.KcalAdjustments, finiteOrZero(k))
	}
	for _, m := range s.Multipliers {
		b.Multipliers = append(b.Multipliers, [2]float64{finiteOrZero(m.Rest), finiteOrZero(m.Training)})
	}

	// Marshal only fails on unsupported values, which finiteOrZero rules out.
	raw, _ := json.Marshal(b)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// encodeLegacyState returns the comma-delimited token. Macro settings are
// not part of this format. Commas in the name are written as-is, so such
// names do not survive a round trip.
func encodeLegacyState(s appState) string {
	metricBit := "1"
	if s.Units == unitsImperial {
		metricBit = "0"
	}
	fields := []string{
		escapeLegacyName(s.Name),
		string(parseGender(string(s.Gender))),
		formatNumber(s.WeightKg),
		formatNumber(s.HeightCm),
		formatNumber(s.BodyFatPercent),
		string(parseMuscleMass(string(s.MuscleMass))),
		strconv.Itoa(s.Age),
		strconv.Itoa(s.StepsPerDay),
		metricBit,
	}
	return strings.Join(fields, ",")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(finiteOrZero(v), 'f', -1, 64)
}

// escapeLegacyName percent-encodes the name the way browsers' encodeURI
// does, except that '#' and '%' are always escaped. Commas stay literal.
func escapeLegacyName(name string) string {
	const keep = ";,/?:@&=+$-_.!~*'()"
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			sb.WriteByte(c)
		case strings.IndexByte(keep, c) >= 0:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, "%%%02X", c)
		}
	}
	return sb.String()
}

/* ─── Decoding ───────────────────────────────────────────────────────── */

// decodeState turns any token into a fully populated state. It never
// fails: unreadable input yields the defaults.
func decodeState(token string) appState {
	s, _ := parseState(token)
	return s
}

// parseState is decodeState that also reports what was wrong with the
// token. The returned state is valid even when err is non-nil.
func parseState(token string) (appState, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == "":
		return defaultState(), nil
	case strings.Contains(token, ","):
		return parseLegacyState(token), nil
	default:
		return parseBlobState(token)
	}
}

// parseLegacyState reads the comma list positionally. Absent trailing
// fields take their defaults; present-but-blank numeric fields are 0 and a
// blank metric flag means imperial.
func parseLegacyState(token string) appState {
	fields := strings.Split(token, ",")
	field := func(i int) (string, bool) {
		if i < len(fields) {
			return fields[i], true
		}
		return "", false
	}

	s := defaultState()
	name, _ := field(0)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	s.Name = strings.ToValidUTF8(name, "\uFFFD")
	if g, ok := field(1); ok {
		s.Gender = parseGender(g)
	}
	w, _ := field(2)
	s.WeightKg = parseNumber(w)
	h, _ := field(3)
	s.HeightCm = parseNumber(h)
	bf, _ := field(4)
	s.BodyFatPercent = parseNumber(bf)
	if m, ok := field(5); ok {
		s.MuscleMass = parseMuscleMass(m)
	}
	age, _ := field(6)
	s.Age = parseWhole(age)
	steps, _ := field(7)
	s.StepsPerDay = parseWhole(steps)
	if metric, ok := field(8); ok && parseNumber(metric) == 0 {
		s.Units = unitsImperial
	}
	s.KcalAdjustments = defaultKcalAdjustments(s.Gender)
	return s
}

// decodeBase64 accepts standard and URL alphabets, padded or not.
func decodeBase64(token string) ([]byte, error) {
	token = strings.TrimRight(token, "=")
	token = strings.NewReplacer("+", "-", "/", "_").Replace(token)
	return base64.RawURLEncoding.DecodeString(token)
}

// blobField is one row of the blob default table. decode returns false
// when the raw value has the wrong shape, leaving the default in place.
type blobField struct {
	key    string
	decode func(s *appState, raw json.RawMessage) bool
}

// blobFields is consulted in order. gender precedes kcalAdjustments
// because the kcal defaults depend on it.
var blobFields = []blobField{
	{"name", func(s *appState, raw json.RawMessage) bool {
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return false
		}
		s.Name = v
		return true
	}},
	{"gender", func(s *appState, raw json.RawMessage) bool {
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return false
		}
		s.Gender = parseGender(v)
		s.KcalAdjustments = defaultKcalAdjustments(s.Gender)
		return true
	}},
	{"weight", numberField(func(s *appState, v float64) { s.WeightKg = v })},
	{"height", numberField(func(s *appState, v float64) { s.HeightCm = v })},
	{"bodyFatPercentage", numberField(func(s *appState, v float64) { s.BodyFatPercent = v })},
	{"muscleMassAttr", func(s *appState, raw json.RawMessage) bool {
		var v string
		if json.Unmarshal(raw, &v) != nil {
			return false
		}
		s.MuscleMass = parseMuscleMass(v)
		return true
	}},
	{"age", numberField(func(s *appState, v float64) { s.Age = wholeOrZero(v) })},
	{"stepsPerDay", numberField(func(s *appState, v float64) { s.StepsPerDay = wholeOrZero(v) })},
	{"metric", func(s *appState, raw json.RawMessage) bool {
		metric, ok := rawBool(raw)
		if !ok {
			return false
		}
		if metric {
			s.Units = unitsMetric
		} else {
			s.Units = unitsImperial
		}
		return true
	}},
	{"macroPercents", func(s *appState, raw json.RawMessage) bool {
		return decodePairs(raw, len(s.MacroPercents), func(i int, a, b float64) {
			s.MacroPercents[i] = macroPair{Protein: a, Carbs: b}
		})
	}},
	{"kcalAdjustments", func(s *appState, raw json.RawMessage) bool {
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			return false
		}
		for i := 0; i < len(items) && i < len(s.KcalAdjustments); i++ {
			if v, ok := rawNumber(items[i]); ok {
				s.KcalAdjustments[i] = v
			}
		}
		return true
	}},
	{"multipliers", func(s *appState, raw json.RawMessage) bool {
		return decodePairs(raw, len(s.Multipliers), func(i int, a, b float64) {
			s.Multipliers[i] = dayMultipliers{Rest: a, Training: b}
		})
	}},
}

func numberField(set func(s *appState, v float64)) func(*appState, json.RawMessage) bool {
	return func(s *appState, raw json.RawMessage) bool {
		v, ok := rawNumber(raw)
		if ok {
			set(s, v)
		}
		return ok
	}
}

// parseBlobState decodes a blob token field by field. Missing keys and
// values of the wrong shape keep their defaults; the error lists them.
func parseBlobState(token string) (appState, error) {
	s := defaultState()

	raw, err := decodeBase64(token)
	if err != nil {
		return s, fmt.Errorf("decode base64: %w", err)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return s, fmt.Errorf("unmarshal state: %w", err)
	}

	var errs []error
	for _, f := range blobFields {
		v, found := obj[f.key]
		if !found || isNull(v) {
			continue
		}
		if !f.decode(&s, v) {
			errs = append(errs, fmt.Errorf("%s: unexpected value %s", f.key, v))
		}
	}
	return s, errors.Join(errs...)
}

/* ─── JSON value coercion ────────────────────────────────────────────── */

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// rawNumber accepts a JSON number or a numeric string (form fields were
// persisted as text by older releases).
func rawNumber(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return finiteOrZero(n), true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return parseNumber(str), true
	}
	return 0, false
}

// rawBool accepts a JSON bool, or a number/numeric string where non-zero
// means true.
func rawBool(raw json.RawMessage) (bool, bool) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	if n, ok := rawNumber(raw); ok {
		return n != 0, true
	}
	return false, false
}

// decodePairs reads up to n two-element arrays from raw. Elements that are
// not pairs of numbers keep their default.
func decodePairs(raw json.RawMessage, n int, set func(i int, a, b float64)) bool {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil {
		return false
	}
	for i := 0; i < len(items) && i < n; i++ {
		var pair []json.RawMessage
		if json.Unmarshal(items[i], &pair) != nil || len(pair) < 2 {
			continue
		}
		a, okA := rawNumber(pair[0])
		b, okB := rawNumber(pair[1])
		if okA && okB {
			set(i, a, b)
		}
	}
	return true
}
