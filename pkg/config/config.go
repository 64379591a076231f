package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"mathplot/pkg/mathaxes"
)

type labels struct {
	X string `mapstructure:"x"`
	Y string `mapstructure:"y"`
}

type ticks struct {
	X       []float64 `mapstructure:"x"`
	XLabels []string  `mapstructure:"xlabels"`
	Y       []float64 `mapstructure:"y"`
	YLabels []string  `mapstructure:"ylabels"`
}

type output struct {
	File   string  `mapstructure:"file"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type style struct {
	Title   string           `mapstructure:"title"`
	Prolong []float64        `mapstructure:"prolong"`
	Margins mathaxes.Margins `mapstructure:"margins"`
	Labels  labels           `mapstructure:"labels"`
	Ticks   ticks            `mapstructure:"ticks"`
	Output  output           `mapstructure:"output"`
}

type Config struct {
	style *style
}

func setDefaults(v *viper.Viper) {
	def := mathaxes.DefaultOptions()
	v.SetDefault("prolong", def.Prolong[:])
	v.SetDefault("margins.left", def.Margins.Left)
	v.SetDefault("margins.right", def.Margins.Right)
	v.SetDefault("margins.bottom", def.Margins.Bottom)
	v.SetDefault("margins.top", def.Margins.Top)
	v.SetDefault("labels.x", def.XLabel)
	v.SetDefault("labels.y", def.YLabel)
	v.SetDefault("output.file", "plot.png")
	v.SetDefault("output.width", 6.0)
	v.SetDefault("output.height", 4.0)
	v.SetDefault("title", "")
}

// Load reads the style file at path, if any, on top of the defaults.
// MATHPLOT_* environment variables override both, e.g. MATHPLOT_LABELS_X.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("mathplot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	var s style
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if len(s.Prolong) != 2 {
		return nil, fmt.Errorf("prolong needs 2 values, got %d", len(s.Prolong))
	}

	return &Config{&s}, nil
}

func (c *Config) Options() mathaxes.Options {
	return mathaxes.Options{
		Prolong: [2]float64{c.style.Prolong[0], c.style.Prolong[1]},
		Margins: c.style.Margins,
		XLabel:  c.style.Labels.X,
		YLabel:  c.style.Labels.Y,
	}
}

func (c *Config) Ticks() mathaxes.Ticks {
	return mathaxes.Ticks{
		X:       c.style.Ticks.X,
		XLabels: c.style.Ticks.XLabels,
		Y:       c.style.Ticks.Y,
		YLabels: c.style.Ticks.YLabels,
	}
}

func (c *Config) Title() string { return c.style.Title }

func (c *Config) OutFile() string { return c.style.Output.File }

// Size returns the output width and height in inches.
func (c *Config) Size() (float64, float64) {
	return c.style.Output.Width, c.style.Output.Height
}
