package tools

import (
	"github.com/reform-tech/user-api/cmd/tools/users"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "tools",
	Short: "UserApi tools",
	Long: `

Tools to interact with the directory directly`,
}

func init() {
	RootCmd.AddCommand(users.RootCMD)
}
