package logic

// Level grades how hard a technique is for a human. Levels are ordered;
// a puzzle's difficulty is the highest level its solve required.
type Level int

const (
	// LevelNone means no technique applied (or an unknown one).
	LevelNone Level = iota
	// LevelBasic covers the singles.
	LevelBasic
	// LevelIntermediate covers subsets and box-line interactions.
	LevelIntermediate
	// LevelAdvanced covers small fish, wings and single-digit chains.
	LevelAdvanced
	// LevelMaster covers Jellyfish, uniqueness arguments and W-Wing.
	LevelMaster
)

func (l Level) String() string {
	switch l {
	case LevelBasic:
		return "Basic"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelMaster:
		return "Master"
	default:
		return "None"
	}
}

// techniqueLevels grades the closed technique vocabulary. Techniques
// outside the map count as LevelNone and are ignored by the stats.
var techniqueLevels = map[Technique]Level{
	TechniqueNakedSingle:     LevelBasic,
	TechniqueHiddenSingle:    LevelBasic,
	TechniqueNakedPair:       LevelIntermediate,
	TechniqueNakedTriple:     LevelIntermediate,
	TechniqueHiddenPair:      LevelIntermediate,
	TechniqueHiddenTriple:    LevelIntermediate,
	TechniquePointingPair:    LevelIntermediate,
	TechniquePointingTriple:  LevelIntermediate,
	TechniqueClaiming:        LevelIntermediate,
	TechniqueXWing:           LevelAdvanced,
	TechniqueSwordfish:       LevelAdvanced,
	TechniqueXYWing:          LevelAdvanced,
	TechniqueXYZWing:         LevelAdvanced,
	TechniqueSkyscraper:      LevelAdvanced,
	TechniqueTwoStringKite:   LevelAdvanced,
	TechniqueJellyfish:       LevelMaster,
	TechniqueUniqueRectangle: LevelMaster,
	TechniqueWWing:           LevelMaster,
}

// Stats summarizes the technique levels a solve used.
type Stats struct {
	// MaxLevel is the hardest level among the steps.
	MaxLevel Level
	// IntermediateCount, AdvancedCount and MasterCount tally the steps
	// per level. Basic steps are not counted.
	IntermediateCount int
	AdvancedCount     int
	MasterCount       int
}

// AnalyzeDifficulty grades a step sequence.
func AnalyzeDifficulty(steps []Step) Stats {
	var stats Stats
	for i := range steps {
		level := techniqueLevels[steps[i].Technique]
		if level > stats.MaxLevel {
			stats.MaxLevel = level
		}
		switch level {
		case LevelIntermediate:
			stats.IntermediateCount++
		case LevelAdvanced:
			stats.AdvancedCount++
		case LevelMaster:
			stats.MasterCount++
		}
	}
	return stats
}
