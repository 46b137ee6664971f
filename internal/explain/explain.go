// Package explain renders human-readable, localized descriptions of
// solving steps.
package explain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/louisbranch/sudoku/internal/logic"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag parses value into an exactly supported language tag.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}
	return language.Tag{}, false
}

// MatchTag returns the closest supported tag for value. Empty or
// unparseable values fall back to the default tag.
func MatchTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, idx, _ := tagMatcher.Match(parsed)
	return supportedTags[idx]
}

// CellLabel formats a cell index 0..80 as a row/column coordinate such
// as "r1c1" for the top-left cell.
func CellLabel(index int) string {
	return "r" + strconv.Itoa(index/9+1) + "c" + strconv.Itoa(index%9+1)
}

var techniqueKeys = map[logic.Technique]string{
	logic.TechniqueNakedSingle:     "technique.naked_single",
	logic.TechniqueHiddenSingle:    "technique.hidden_single",
	logic.TechniqueNakedPair:       "technique.naked_pair",
	logic.TechniqueNakedTriple:     "technique.naked_triple",
	logic.TechniqueHiddenPair:      "technique.hidden_pair",
	logic.TechniqueHiddenTriple:    "technique.hidden_triple",
	logic.TechniquePointingPair:    "technique.pointing_pair",
	logic.TechniquePointingTriple:  "technique.pointing_triple",
	logic.TechniqueClaiming:        "technique.claiming",
	logic.TechniqueXWing:           "technique.x_wing",
	logic.TechniqueSwordfish:       "technique.swordfish",
	logic.TechniqueJellyfish:       "technique.jellyfish",
	logic.TechniqueXYWing:          "technique.xy_wing",
	logic.TechniqueXYZWing:         "technique.xyz_wing",
	logic.TechniqueSkyscraper:      "technique.skyscraper",
	logic.TechniqueTwoStringKite:   "technique.two_string_kite",
	logic.TechniqueUniqueRectangle: "technique.unique_rectangle",
	logic.TechniqueWWing:           "technique.w_wing",
}

// TechniqueName returns the localized display name for a technique.
// Unknown techniques fall back to their raw identifier.
func TechniqueName(p *message.Printer, t logic.Technique) string {
	if key, ok := techniqueKeys[t]; ok {
		return p.Sprintf(key)
	}
	return string(t)
}

// Describe renders one solving step as a localized sentence naming the
// technique, the placement or eliminations it makes, and the cells that
// justify it.
func Describe(p *message.Printer, step logic.Step) string {
	name := TechniqueName(p, step.Technique)

	var out string
	switch {
	case len(step.Placements) > 0:
		pl := step.Placements[0]
		out = p.Sprintf("explain.place", name, pl.Digit, CellLabel(pl.Index))
	case len(step.Eliminations) > 0:
		out = p.Sprintf("explain.eliminate", name, digitList(step.Eliminations), cellList(step.Eliminations))
	default:
		out = name
	}

	if len(step.Cause) > 0 {
		out += " " + p.Sprintf("explain.cause", causeList(step.Cause))
	}
	return out
}

func digitList(elims []logic.Elimination) string {
	var seen [10]bool
	digits := make([]int, 0, len(elims))
	for _, e := range elims {
		if e.Digit < 1 || e.Digit > 9 || seen[e.Digit] {
			continue
		}
		seen[e.Digit] = true
		digits = append(digits, e.Digit)
	}
	sort.Ints(digits)

	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

func cellList(elims []logic.Elimination) string {
	seen := make(map[int]bool, len(elims))
	parts := make([]string, 0, len(elims))
	for _, e := range elims {
		if seen[e.Index] {
			continue
		}
		seen[e.Index] = true
		parts = append(parts, CellLabel(e.Index))
	}
	return strings.Join(parts, ", ")
}

func causeList(cause []logic.CauseCell) string {
	parts := make([]string, 0, len(cause))
	for _, c := range cause {
		label := CellLabel(c.Index)
		if len(c.Digits) > 0 {
			ds := make([]string, len(c.Digits))
			for i, d := range c.Digits {
				ds[i] = strconv.Itoa(d)
			}
			label += " (" + strings.Join(ds, ",") + ")"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, ", ")
}
