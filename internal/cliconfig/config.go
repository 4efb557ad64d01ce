// Package cliconfig loads default TreeSettings for the phylo CLI from a
// config file, with the precedence env > config file > default. No
// command-line flags are bound to these settings.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kurosakiaduma/phylo-sub002/pkg/genealogy"
)

// Defaults holds the TreeSettings values used when a new tree is created
// by "phylo member add" against a --tree file that does not yet exist.
type Defaults struct {
	AllowSameSex             bool `mapstructure:"allow_same_sex"`
	Monogamy                 bool `mapstructure:"monogamy"`
	AllowPolygamy            bool `mapstructure:"allow_polygamy"`
	MaxSpousesPerMember      int  `mapstructure:"max_spouses_per_member"`
	AllowSingleParent        bool `mapstructure:"allow_single_parent"`
	AllowMultiParentChildren bool `mapstructure:"allow_multi_parent_children"`
	MaxParentsPerChild       int  `mapstructure:"max_parents_per_child"`
}

// Load reads defaults from cfgFile (if non-empty) and the environment,
// falling back to a permissive baseline when neither is set.
func Load(cfgFile string) (Defaults, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("PHYLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Defaults{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return d, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("allow_same_sex", true)
	v.SetDefault("monogamy", false)
	v.SetDefault("allow_polygamy", false)
	v.SetDefault("max_spouses_per_member", 0)
	v.SetDefault("allow_single_parent", true)
	v.SetDefault("allow_multi_parent_children", false)
	v.SetDefault("max_parents_per_child", 0)
}

// Settings converts Defaults into a genealogy.TreeSettings, translating
// the zero-means-unbounded convention of the flat config file into the
// engine's nil-means-unbounded optional int fields.
func (d Defaults) Settings() genealogy.TreeSettings {
	s := genealogy.TreeSettings{
		AllowSameSex:             d.AllowSameSex,
		Monogamy:                 d.Monogamy,
		AllowPolygamy:            d.AllowPolygamy,
		AllowSingleParent:        d.AllowSingleParent,
		AllowMultiParentChildren: d.AllowMultiParentChildren,
	}
	if d.MaxSpousesPerMember > 0 {
		v := d.MaxSpousesPerMember
		s.MaxSpousesPerMember = &v
	}
	if d.MaxParentsPerChild > 0 {
		v := d.MaxParentsPerChild
		s.MaxParentsPerChild = &v
	}
	return s
}
