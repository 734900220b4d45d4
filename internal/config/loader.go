package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the engine property-list file name, loaded alongside (and
// independently of) the CLI's own configuration file.
const FileName = "gazetteer.yaml"

// FileNameAlt is the alternate engine property-list file name.
const FileNameAlt = "gazetteer.yml"

// LoadFromDir loads a Config from dir, layering a file found there (if
// any) over DefaultRaw. A missing file is not an error: the engine runs
// on defaults alone. A malformed file or an invalid field is a fatal
// configuration error (spec §7).
func LoadFromDir(dir string) (*Config, error) {
	k := koanf.New(".")

	defaults := DefaultRaw()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"typeWords":                 defaults.TypeWords,
		"abbreviations":             defaults.Abbreviations,
		"noiseWords":                defaults.NoiseWords,
		"largeCountries":            defaults.LargeCountries,
		"mediumCountries":           defaults.MediumCountries,
		"largeCountryLevelWeights":  defaults.LargeCountryLevelWeights,
		"mediumCountryLevelWeights": defaults.MediumCountryLevelWeights,
		"smallCountryLevelWeights":  defaults.SmallCountryLevelWeights,
		"primaryMatchWeight":        defaults.PrimaryMatchWeight,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path := findFile(dir); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	var raw Raw
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	return Parse(raw)
}

func findFile(dir string) string {
	for _, name := range []string{FileName, FileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
