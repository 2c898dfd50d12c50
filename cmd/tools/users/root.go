package users

import (
	"github.com/spf13/cobra"
)

var RootCMD = &cobra.Command{
	Use:   "users",
	Short: "Work with users in the directory",
	Long: `

Interact with users and their group membership without going via the api`,
}

func init() {
	RootCMD.AddCommand(groupCMD)
}
