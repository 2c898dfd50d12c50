package graph

// User is the directory representation of a user account.
type User struct {
	ID                string   `json:"id,omitempty"`
	UserPrincipalName string   `json:"userPrincipalName,omitempty"`
	DisplayName       string   `json:"displayName,omitempty"`
	GivenName         string   `json:"givenName,omitempty"`
	Surname           string   `json:"surname,omitempty"`
	Mail              string   `json:"mail,omitempty"`
	OtherMails        []string `json:"otherMails,omitempty"`
	AccountEnabled    *bool    `json:"accountEnabled,omitempty"`
	UserType          string   `json:"userType,omitempty"`
}

// NewUser is the payload for creating a user in the directory.
type NewUser struct {
	AccountEnabled    *bool            `json:"accountEnabled,omitempty"`
	DisplayName       string           `json:"displayName"`
	GivenName         string           `json:"givenName"`
	Surname           string           `json:"surname"`
	MailNickname      string           `json:"mailNickname"`
	UserPrincipalName string           `json:"userPrincipalName"`
	Mail              string           `json:"mail,omitempty"`
	OtherMails        []string         `json:"otherMails,omitempty"`
	UserType          string           `json:"userType,omitempty"`
	PasswordProfile   *PasswordProfile `json:"passwordProfile,omitempty"`
}

// UserUpdate carries the mutable attributes of a user, nil fields are left untouched.
type UserUpdate struct {
	DisplayName       *string  `json:"displayName,omitempty"`
	GivenName         *string  `json:"givenName,omitempty"`
	Surname           *string  `json:"surname,omitempty"`
	UserPrincipalName *string  `json:"userPrincipalName,omitempty"`
	Mail              *string  `json:"mail,omitempty"`
	OtherMails        []string `json:"otherMails,omitempty"`
}

type PasswordProfile struct {
	Password                      string `json:"password"`
	ForceChangePasswordNextSignIn bool   `json:"forceChangePasswordNextSignIn"`
}

type Group struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

type RoleAssignment struct {
	ID               string `json:"id"`
	PrincipalID      string `json:"principalId"`
	RoleDefinitionID string `json:"roleDefinitionId"`
}

type RoleDefinition struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}
