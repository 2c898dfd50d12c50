package users

import "github.com/reform-tech/user-api/pkg/graph"

// NewAccountResult is returned from user creation, the one time password is
// never persisted anywhere.
type NewAccountResult struct {
	Username        string `json:"username"`
	ID              string `json:"id"`
	OneTimePassword string `json:"one_time_password"`
}

type UpdatedAccount struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	ContactEmail string `json:"contact_email,omitempty"`
}

type UserInfo struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email,omitempty"`
	AccountEnabled bool   `json:"account_enabled"`
}

type GroupInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newUserInfo(user graph.User) UserInfo {
	enabled := false
	if user.AccountEnabled != nil {
		enabled = *user.AccountEnabled
	}

	return UserInfo{
		ID:             user.ID,
		Username:       user.UserPrincipalName,
		DisplayName:    user.DisplayName,
		FirstName:      user.GivenName,
		LastName:       user.Surname,
		Email:          user.Mail,
		AccountEnabled: enabled,
	}
}

func newGroupInfo(group graph.Group) GroupInfo {
	return GroupInfo{
		ID:   group.ID,
		Name: group.DisplayName,
	}
}
