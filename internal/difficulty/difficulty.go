package difficulty

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/mines"
)

var ErrUnknown = errors.New("unknown difficulty")

type Preset struct {
	Name      string `yaml:"name" json:"name"`
	Width     int    `yaml:"width" json:"width"`
	Height    int    `yaml:"height" json:"height"`
	MineCount int    `yaml:"mine_count" json:"mine_count"`
}

func (p Preset) Params() mines.Params {
	return mines.Params{Width: p.Width, Height: p.Height, MineCount: p.MineCount}
}

// Presets are ordered as they should be listed to the player. The first one
// is the default.
type Presets []Preset

var (
	Easy   = Preset{Name: "easy", Width: 9, Height: 9, MineCount: 10}
	Normal = Preset{Name: "normal", Width: 16, Height: 16, MineCount: 40}
	Hard   = Preset{Name: "hard", Width: 30, Height: 16, MineCount: 99}
)

func Defaults() Presets {
	return Presets{Easy, Normal, Hard}
}

func (ps Presets) Default() Preset {
	return ps[0]
}

func (ps Presets) Lookup(name string) (Preset, error) {
	for _, p := range ps {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

func (ps Presets) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

func (ps Presets) Validate() error {
	if len(ps) == 0 {
		return errors.New("no difficulty presets")
	}
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			return errors.New("difficulty preset without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate difficulty preset %q", p.Name)
		}
		seen[p.Name] = true
		if err := p.Params().Validate(); err != nil {
			return fmt.Errorf("difficulty preset %q: %w", p.Name, err)
		}
	}
	return nil
}

type file struct {
	Presets Presets `yaml:"presets"`
}

// Load reads presets from YAML:
//
//	presets:
//	  - name: easy
//	    width: 9
//	    height: 9
//	    mine_count: 10
func Load(r io.Reader) (Presets, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("unable to decode presets: %w", err)
	}
	if err := f.Presets.Validate(); err != nil {
		return nil, err
	}
	return f.Presets, nil
}

// LoadFile reads presets from path, or returns [Defaults] if path is empty.
func LoadFile(path string) (Presets, error) {
	if path == "" {
		return Defaults(), nil
	}
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open presets file: %w", err)
	}
	defer fd.Close()
	return Load(fd)
}
