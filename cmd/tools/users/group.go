package users

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thoas/go-funk"

	configCMD "github.com/reform-tech/user-api/pkg/cmd"
	"github.com/reform-tech/user-api/pkg/graph"
)

var groupCMD = &cobra.Command{
	Use:   "group",
	Short: "Interact with a directory group",
	Long: `

	List members of a group

	go run main.go tools users group "Reform Judges" list

	Add a user (by object id) to a group

	go run main.go tools users group "Reform Judges" add 11b6cf47-5d9f-438f-8116-0d9828654657
	`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logContext := logrus.WithField("context", "tools-users-group")

		credential, err := graph.NewClientSecretCredential(
			viper.GetString("server.azure.tenantId"),
			viper.GetString("server.azure.clientId"),
			viper.GetString("server.azure.clientSecret"),
		)
		if err != nil {
			fmt.Println("Missing AZURE_XXX settings")
			os.Exit(1)
		}

		client := graph.NewClient(credential, logContext)
		ctx := context.Background()

		groupName := args[0]
		do := args[1]
		if !funk.Contains([]string{"add", "list"}, do) {
			fmt.Println("Only allowed to add or list")
			return
		}

		group, err := client.GetGroupByName(ctx, groupName)
		if err != nil {
			fmt.Println("Failed to look up group:", err)
			return
		}
		if group == nil {
			fmt.Println("Group not found")
			return
		}

		switch do {
		case "list":
			listGroupMembers(ctx, client, group.ID)
		case "add":
			if len(args) != 3 {
				fmt.Println("A user object id is required")
				return
			}
			addUserToGroup(ctx, client, args[2], group.ID)
		}
	},
}

func listGroupMembers(ctx context.Context, client graph.Client, groupID string) {
	members, err := client.GetUsersInGroup(ctx, groupID)
	if err != nil {
		fmt.Println("Failed to list members:", err)
		return
	}

	for _, member := range members {
		fmt.Printf("%s\t%s\t%s\n", member.ID, member.UserPrincipalName, member.DisplayName)
	}
}

func addUserToGroup(ctx context.Context, client graph.Client, userID string, groupID string) {
	groups, err := client.GetGroupsForUser(ctx, userID)
	if err != nil {
		fmt.Println("Failed to look up user's groups:", err)
		return
	}

	alreadyMember := funk.Contains(groups, func(group graph.Group) bool {
		return group.ID == groupID
	})
	if alreadyMember {
		fmt.Println("User is already a member")
		return
	}

	if err := client.AddUserToGroup(ctx, userID, groupID); err != nil {
		fmt.Println("Failed to add user to group:", err)
		return
	}
	fmt.Println("Added")
}

func init() {
	configCMD.SetupStringConfiguration(groupCMD, "server.azure.tenantId", "tenant-id", "AZURE_TENANT_ID", "", "Azure tenant the directory lives in")
	configCMD.SetupStringConfiguration(groupCMD, "server.azure.clientId", "client-id", "AZURE_CLIENT_ID", "", "Client id of the application registration")
	configCMD.SetupStringConfiguration(groupCMD, "server.azure.clientSecret", "client-secret", "AZURE_CLIENT_SECRET", "", "Client secret of the application registration")
}
