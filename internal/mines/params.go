package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Width, Height, MineCount int
}

func (p Params) Unpack() (w int, h int, mc int) {
	return p.Width, p.Height, p.MineCount
}

func (p Params) Validate() error {
	w, h, mc := p.Unpack()
	if w <= 0 || h <= 0 || mc < 0 || mc >= w*h {
		return ConfigurationError{w, h, mc}
	}
	return nil
}

func (p Params) PointInBounds(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Height && 0 <= pt.Col && pt.Col < p.Width
}

func (p Params) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*Params, error) {
	p := &Params{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
