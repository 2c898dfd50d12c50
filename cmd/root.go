package cmd

import (
	"github.com/reform-tech/user-api/cmd/api"
	"github.com/reform-tech/user-api/cmd/tools"
	"github.com/spf13/cobra"

	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "user-api",
	Short: "UserApi",
	Long:  `Entry point to the user api server and its operator tools`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	viper.AutomaticEnv()
	rootCmd.AddCommand(api.RootCmd)
	rootCmd.AddCommand(tools.RootCmd)
}
