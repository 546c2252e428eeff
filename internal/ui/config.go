package ui

import (
	"github.com/vancomm/minesweeper/internal/difficulty"
	"github.com/vancomm/minesweeper/internal/events"
)

// Config is the difficulty selector. Selecting a preset emits
// [events.ConfigChanged] with the preset name.
type Config struct {
	Base

	presets  difficulty.Presets
	selected difficulty.Preset
}

type ConfigView struct {
	List     difficulty.Presets `json:"list"`
	Selected string             `json:"selected"`
}

func NewConfig(presets difficulty.Presets, selected string) (*Config, error) {
	c := &Config{presets: presets, selected: presets.Default()}
	if selected != "" {
		p, err := presets.Lookup(selected)
		if err != nil {
			return nil, err
		}
		c.selected = p
	}
	return c, nil
}

func (c *Config) Select(name string) error {
	p, err := c.presets.Lookup(name)
	if err != nil {
		return err
	}
	c.selected = p
	c.Emit(events.ConfigChanged, p.Name)
	return nil
}

func (c *Config) Selected() difficulty.Preset {
	return c.selected
}

func (c *Config) View() any {
	return ConfigView{List: c.presets, Selected: c.selected.Name}
}
