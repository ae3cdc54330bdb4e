// ABOUTME: Embedded YAML recipe/crafter fixtures for smoke tests and LoadPreset callers
// ABOUTME: Grounded on the reference solver's Synth construction, presets expressed as YAML records

package presets

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"xivcraft/internal/action"
	"xivcraft/internal/sim"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

var (
	parseOnce sync.Once
	parsed    fixturesFile
	parseErr  error
)

func parsedFixtures() (fixturesFile, error) {
	parseOnce.Do(func() {
		parseErr = yaml.Unmarshal(fixturesYAML, &parsed)
	})
	return parsed, parseErr
}

type crafterDoc struct {
	Level         int      `yaml:"level"`
	Craftsmanship int      `yaml:"craftsmanship"`
	Control       int      `yaml:"control"`
	CP            int      `yaml:"cp"`
	Specialist    bool     `yaml:"specialist"`
	Actions       []string `yaml:"actions"`
}

type recipeDoc struct {
	BaseLevel              int     `yaml:"base_level"`
	Level                  int     `yaml:"level"`
	Difficulty             int     `yaml:"difficulty"`
	Durability             int     `yaml:"durability"`
	StartQuality           int     `yaml:"start_quality"`
	MaxQuality             int     `yaml:"max_quality"`
	SuggestedCraftsmanship int     `yaml:"suggested_craftsmanship"`
	SuggestedControl       int     `yaml:"suggested_control"`
	ProgressDivider        float64 `yaml:"progress_divider"`
	QualityDivider         float64 `yaml:"quality_divider"`
	Stars                  bool    `yaml:"stars"`
	SafetyMarginPercent    float64 `yaml:"safety_margin_percent"`
}

type presetDoc struct {
	Name    string      `yaml:"name"`
	Crafter crafterDoc  `yaml:"crafter"`
	Recipe  recipeDoc   `yaml:"recipe"`
}

type fixturesFile struct {
	Presets []presetDoc `yaml:"presets"`
}

// Load resolves a named preset to a ready-to-replay Synth.
func Load(name string) (*sim.Synth, error) {
	file, err := parsedFixtures()
	if err != nil {
		return nil, fmt.Errorf("parsing embedded presets: %w", err)
	}

	for _, p := range file.Presets {
		if p.Name != name {
			continue
		}
		return presetToSynth(p)
	}
	return nil, fmt.Errorf("no preset named %q", name)
}

// Names lists every embedded preset's name.
func Names() ([]string, error) {
	file, err := parsedFixtures()
	if err != nil {
		return nil, fmt.Errorf("parsing embedded presets: %w", err)
	}
	names := make([]string, len(file.Presets))
	for i, p := range file.Presets {
		names[i] = p.Name
	}
	return names, nil
}

func presetToSynth(p presetDoc) (*sim.Synth, error) {
	actions := make([]action.Action, 0, len(p.Crafter.Actions))
	for _, shortName := range p.Crafter.Actions {
		a, ok := action.ByShortName(shortName)
		if !ok {
			return nil, fmt.Errorf("preset %q: unknown action %q", p.Name, shortName)
		}
		actions = append(actions, a)
	}

	return &sim.Synth{
		Crafter: sim.Crafter{
			Level:         p.Crafter.Level,
			Craftsmanship: p.Crafter.Craftsmanship,
			Control:       p.Crafter.Control,
			CP:            p.Crafter.CP,
			Specialist:    p.Crafter.Specialist,
			Actions:       actions,
		},
		Recipe: sim.Recipe{
			BaseLevel:              p.Recipe.BaseLevel,
			Level:                  p.Recipe.Level,
			Difficulty:             p.Recipe.Difficulty,
			Durability:             p.Recipe.Durability,
			StartQuality:           p.Recipe.StartQuality,
			MaxQuality:             p.Recipe.MaxQuality,
			SuggestedCraftsmanship: p.Recipe.SuggestedCraftsmanship,
			SuggestedControl:       p.Recipe.SuggestedControl,
			ProgressDivider:        p.Recipe.ProgressDivider,
			QualityDivider:         p.Recipe.QualityDivider,
			Stars:                  p.Recipe.Stars,
			SafetyMarginPercent:    p.Recipe.SafetyMarginPercent,
		},
	}, nil
}
