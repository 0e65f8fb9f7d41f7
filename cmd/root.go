/*
Copyright © 2024 Mars Galactic <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "symgen",
	Short: "Generate KiCad symbol libraries for passive components.",
	Long: `Generate KiCad symbol libraries for passive components.

		symgen renders .kicad_sym symbol library files from CSV component
		data, expands manufacturer part numbers from series specifications,
		and keeps the generated parts in a searchable database.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.symgen.yaml)")
	rootCmd.PersistentFlags().String("data", ".", "directory holding the part database")
	rootCmd.PersistentFlags().String("family", "resistor", "component family: resistor or capacitor")

	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("family", rootCmd.PersistentFlags().Lookup("family"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".symgen")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("SYMGEN")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func dataDir() string {
	return filepath.Clean(viper.GetString("data"))
}
