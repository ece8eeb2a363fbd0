/*
Copyright © 2020 the Kilonova authors.
This file is part of Kilonova.

Kilonova is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Kilonova is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Kilonova.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package kilonovautil provides the command-line interface for
// evaluating kilonova model components.
package kilonovautil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/transientmodel/kilonova"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to the
	// kilonova models. Defaults approximate GW170817.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Mchirp",
			usage: `
              Mchirp is the chirp mass of the binary [Msun].`,
			defaultVal: 1.186,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "q",
			usage: `
              q is the binary mass ratio (lighter over heavier star),
              in (0, 1].`,
			defaultVal: 0.92,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "disk_frac",
			usage: `
              disk_frac is the fraction of the remnant disk that is
              ejected as a wind, in [0, 1].`,
			defaultVal: 0.15,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "Mtov",
			usage: `
              Mtov is the maximum mass of a non-rotating neutron
              star [Msun].`,
			defaultVal: 2.17,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "radius_ns",
			usage: `
              radius_ns is the neutron star radius [km].`,
			defaultVal: 11.5,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "alpha",
			usage: `
              alpha >= 1 is the neutron-star-driven wind enhancement
              of the blue dynamical ejecta; 1 turns winds off.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "cos_theta_open",
			usage: `
              cos_theta_open is the cosine of the half-opening angle
              of the lanthanide-poor polar ejecta.`,
			defaultVal: 0.7071067811865476,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "errMdyn",
			usage: `
              errMdyn is a multiplicative systematic scatter factor
              on the dynamical ejecta mass.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "errMdisk",
			usage: `
              errMdisk is a multiplicative systematic scatter factor
              on the disk mass.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{ejectaCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "cos_theta",
			usage: `
              cos_theta is the cosine of the viewing angle; 0.5 is
              the reference angle with no geometric scaling.`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{lightcurveCmd.Flags()},
		},
		{
			name: "kappa",
			usage: `
              kappa is the grey opacity of the shocked ejecta
              [cm2/g].`,
			defaultVal: 0.5,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "mejecta",
			usage: `
              mejecta is the shocked ejecta mass [Msun].`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags()},
		},
		{
			name: "vejecta",
			usage: `
              vejecta is the shocked ejecta velocity [km/s].`,
			defaultVal: 0.1 * kilonova.CKM,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags()},
		},
		{
			name: "cos_theta_cocoon",
			usage: `
              cos_theta_cocoon is the cosine of the cocoon opening
              angle; 1 turns shock heating off.`,
			defaultVal: 0.9,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "s",
			usage: `
              s is the power law index of the shocked ejecta density
              profile.`,
			defaultVal: 3.0,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "tshock",
			usage: `
              tshock is the shock breakout timescale [s].`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "resttexplosion",
			usage: `
              resttexplosion is the rest-frame explosion epoch
              [days].`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "times.begin",
			usage: `
              times.begin is the first epoch of the dense time grid
              [days].`,
			defaultVal: 0.01,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "times.end",
			usage: `
              times.end is the last epoch of the dense time grid
              [days].`,
			defaultVal: 30.0,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
		{
			name: "times.n",
			usage: `
              times.n is the number of epochs in the dense time
              grid.`,
			defaultVal: 100,
			flagsets:   []*pflag.FlagSet{shockCmd.Flags(), lightcurveCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("KILONOVA")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Root.AddCommand(versionCmd, ejectaCmd, shockCmd, lightcurveCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("kilonova: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "kilonova",
	Short: "Analytic models of binary neutron star merger transients.",
	Long: `kilonova evaluates closed-form models of the ejecta and light curves of
binary neutron star mergers. Use the subcommands specified below to access
the individual model components.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'KILONOVA_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Kilonova.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Kilonova v%s\n", kilonova.Version)
	},
	DisableAutoGenTag: true,
}

var ejectaCmd = &cobra.Command{
	Use:   "ejecta",
	Short: "Derive ejecta properties from binary parameters.",
	Long: `ejecta evaluates the binary neutron star ejecta model, printing the masses,
velocities and opacities of the dynamical and disk wind ejecta components.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunEjecta(Cfg, os.Stdout)
	},
	DisableAutoGenTag: true,
}

var shockCmd = &cobra.Command{
	Use:   "shock",
	Short: "Compute a shock cooling light curve.",
	Long: `shock evaluates the shock-heated cocoon cooling model on a uniform time
grid, printing one epoch and luminosity per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunShock(Cfg, os.Stdout)
	},
	DisableAutoGenTag: true,
}

var lightcurveCmd = &cobra.Command{
	Use:   "lightcurve",
	Short: "Chain the ejecta model into a shock cooling light curve.",
	Long: `lightcurve evaluates the binary neutron star ejecta model, scores the
result against the equation of state constraints, and feeds the blue
dynamical ejecta component into the shock cooling model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLightCurve(Cfg, os.Stdout)
	},
	DisableAutoGenTag: true,
}
