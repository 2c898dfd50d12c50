package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SetupStringConfiguration binds a string setting to a flag, an environment
// variable and a default in one go.
func SetupStringConfiguration(cmd *cobra.Command, key, flag, envVarName, defaultValue, description string) {
	viper.SetDefault(key, defaultValue)
	viper.BindEnv(key, envVarName)
	cmd.PersistentFlags().String(flag, defaultValue, description)
	viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
}

// SetupBoolConfiguration is SetupStringConfiguration for boolean settings.
func SetupBoolConfiguration(cmd *cobra.Command, key, flag, envVarName string, defaultValue bool, description string) {
	viper.SetDefault(key, defaultValue)
	viper.BindEnv(key, envVarName)
	cmd.PersistentFlags().Bool(flag, defaultValue, description)
	viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
}
