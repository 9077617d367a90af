package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name         string     `yaml:"name"`
	Lives        int        `yaml:"lives"`
	Background   *YAMLColor `yaml:"background"`
	TextColor    *YAMLColor `yaml:"text_color"`
	OutlineColor *YAMLColor `yaml:"outline_color"`
	TitleSize    float64    `yaml:"title_size"`
	BodySize     float64    `yaml:"body_size"`
	Companions   []string   `yaml:"companions"`
	Texts        TextsSpec  `yaml:"texts"`
}

type TextsSpec struct {
	StartTitle string `yaml:"start_title"`
	StartHint  string `yaml:"start_hint"`
	WinTitle   string `yaml:"win_title"`
	WinHint    string `yaml:"win_hint"`
	OverTitle  string `yaml:"over_title"`
	OverHint   string `yaml:"over_hint"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Lives <= 0 {
		return nil, fmt.Errorf("prefabs: game.yaml: lives must be positive, got %d", spec.Lives)
	}
	if len(spec.Companions) != 2 {
		return nil, fmt.Errorf("prefabs: game.yaml: want 2 companions, got %d", len(spec.Companions))
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name        string  `yaml:"name"`
	Sprite      string  `yaml:"sprite"`
	StartCol    int     `yaml:"start_col"`
	StartRow    int     `yaml:"start_row"`
	HitboxInset float64 `yaml:"hitbox_inset"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string  `yaml:"name"`
	Sprite      string  `yaml:"sprite"`
	HitboxInset float64 `yaml:"hitbox_inset"`
	SpeedScript string  `yaml:"speed_script"`
	Spread      float64 `yaml:"spread"`
	Step        float64 `yaml:"step"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CharacterSpec struct {
	Name   string `yaml:"name"`
	Sprite string `yaml:"sprite"`
}

type CharactersSpec struct {
	Characters []CharacterSpec `yaml:"characters"`
}

func LoadCharactersSpec() (*CharactersSpec, error) {
	spec, err := LoadSpec[CharactersSpec]("characters.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Characters) == 0 {
		return nil, fmt.Errorf("prefabs: characters.yaml: no characters")
	}
	return &spec, nil
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.Color
}

// Or returns the decoded color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		ch[i] = uint8(n)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}
