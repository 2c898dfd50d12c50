package api

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "api",
	Short: "api for managing users and groups in the directory",
	Long:  ``,
}

func init() {
	RootCmd.AddCommand(serverCMD)
}
