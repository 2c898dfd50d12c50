package users

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"

	"github.com/reform-tech/user-api/pkg/cache"
	"github.com/reform-tech/user-api/pkg/graph"
)

// Provisioner orchestrates validation, duplicate detection, username
// allocation and the directory calls for a single request. It holds no
// state across requests, the directory is the system of record.
type Provisioner interface {
	CreateUser(ctx context.Context, firstName string, lastName string, recoveryEmail string, isTestUser bool) (NewAccountResult, error)
	UpdateUserAccount(ctx context.Context, userID string, firstName string, lastName string, contactEmail string) (UpdatedAccount, error)
	DeleteUser(ctx context.Context, username string) error
	AddUserToGroup(ctx context.Context, userID string, groupName string) error
	GetJudges(ctx context.Context, usernameFilter string) ([]UserInfo, error)
	IsUserAdmin(ctx context.Context, principalID string) (bool, error)
	GetUserByID(ctx context.Context, userID string) (UserInfo, error)
	GetUserByUsername(ctx context.Context, username string) (UserInfo, error)
	GetUserByEmail(ctx context.Context, email string) (UserInfo, error)
	GetUserGroups(ctx context.Context, userID string) ([]GroupInfo, error)
	GetGroupByName(ctx context.Context, name string) (*GroupInfo, error)
	GetGroupByID(ctx context.Context, groupID string) (*GroupInfo, error)
}

type provisioner struct {
	directory  graph.Client
	groupCache *cache.Cache
	config     Config
	logContext logrus.FieldLogger
}

func NewProvisioner(
	directory graph.Client,
	groupCache *cache.Cache,
	config Config,
	logContext logrus.FieldLogger,
) Provisioner {
	return &provisioner{
		directory:  directory,
		groupCache: groupCache,
		config:     config,
		logContext: logContext,
	}
}

func (p *provisioner) CreateUser(ctx context.Context, firstName string, lastName string, recoveryEmail string, isTestUser bool) (NewAccountResult, error) {
	empty := NewAccountResult{}

	if !IsValidEmail(recoveryEmail) {
		return empty, ErrInvalidEmail
	}

	logContext := p.logContext.WithFields(logrus.Fields{
		"method": "CreateUser",
	})

	filter := fmt.Sprintf("otherMails/any(c:c eq '%s')", graph.EscapeFilter(recoveryEmail))
	colliding, err := p.directory.GetUsers(ctx, filter)
	if err != nil {
		return empty, p.wrapDirectoryError("Failed to check for existing users", err)
	}

	if len(colliding) > 0 {
		return empty, &AlreadyExistsError{Username: colliding[0].UserPrincipalName}
	}

	username, err := p.allocateUsername(ctx, firstName, lastName, recoveryEmail)
	if err != nil {
		return empty, err
	}

	password := p.config.TestUserPassword
	forceChange := false
	if !isTestUser {
		password = GenerateRandomPassword()
		forceChange = true
	}

	created, err := p.directory.CreateUser(ctx, graph.NewUser{
		AccountEnabled:    to.BoolPtr(true),
		DisplayName:       fmt.Sprintf("%s %s", firstName, lastName),
		GivenName:         firstName,
		Surname:           lastName,
		MailNickname:      UsernameBase(firstName, lastName),
		UserPrincipalName: username,
		Mail:              recoveryEmail,
		OtherMails:        []string{recoveryEmail},
		UserType:          "Guest",
		PasswordProfile: &graph.PasswordProfile{
			Password:                      password,
			ForceChangePasswordNextSignIn: forceChange,
		},
	})
	if err != nil {
		return empty, p.wrapDirectoryError("Failed to create user in the directory", err)
	}

	if created == nil || created.ID == "" {
		return empty, newServiceError("Directory returned an empty created user", nil)
	}

	logContext.WithFields(logrus.Fields{
		"username": username,
		"user_id":  created.ID,
	}).Info("created user")

	return NewAccountResult{
		Username:        username,
		ID:              created.ID,
		OneTimePassword: password,
	}, nil
}

// allocateUsername gathers every principal name that could collide with the
// sanitized base: active users whose principal name starts with the base,
// plus soft-deleted users matched on contact email and on the exact
// given-name/surname pair. The union feeds the allocator.
func (p *provisioner) allocateUsername(ctx context.Context, firstName string, lastName string, contactEmail string) (string, error) {
	base := UsernameBase(firstName, lastName)

	activeFilter := fmt.Sprintf("startswith(userPrincipalName,'%s')", graph.EscapeFilter(base))
	active, err := p.directory.GetUsers(ctx, activeFilter)
	if err != nil {
		return "", p.wrapDirectoryError("Failed to look up existing usernames", err)
	}

	collisions := make([]string, 0, len(active))
	for _, user := range active {
		collisions = append(collisions, user.UserPrincipalName)
	}

	if contactEmail != "" {
		deletedFilter := fmt.Sprintf("otherMails/any(c:c eq '%s')", graph.EscapeFilter(contactEmail))
		deleted, err := p.directory.GetDeletedUsernames(ctx, deletedFilter)
		if err != nil {
			return "", p.wrapDirectoryError("Failed to look up deleted usernames", err)
		}
		collisions = append(collisions, deleted...)
	}

	if firstName != "" && lastName != "" {
		nameFilter := fmt.Sprintf(
			"givenName eq '%s' and surname eq '%s'",
			graph.EscapeFilter(firstName),
			graph.EscapeFilter(lastName),
		)
		deleted, err := p.directory.GetDeletedUsernames(ctx, nameFilter)
		if err != nil {
			return "", p.wrapDirectoryError("Failed to look up deleted usernames", err)
		}
		collisions = append(collisions, deleted...)
	}

	username, err := AllocateUsername(base, p.config.EmailDomain, collisions)
	if err != nil {
		return "", newServiceError("Failed to allocate a username", err)
	}
	return username, nil
}

func (p *provisioner) UpdateUserAccount(ctx context.Context, userID string, firstName string, lastName string, contactEmail string) (UpdatedAccount, error) {
	empty := UpdatedAccount{}

	existing, err := p.getUser(ctx, fmt.Sprintf("id eq '%s'", graph.EscapeFilter(userID)))
	if err != nil {
		return empty, p.wrapDirectoryError("Failed to look up user", err)
	}
	if existing == nil {
		return empty, &NotFoundError{UserID: userID}
	}

	username := existing.UserPrincipalName
	if !strings.EqualFold(existing.GivenName, firstName) || !strings.EqualFold(existing.Surname, lastName) {
		username, err = p.allocateUsername(ctx, firstName, lastName, contactEmail)
		if err != nil {
			return empty, err
		}
	}

	update := graph.UserUpdate{
		DisplayName:       to.StringPtr(fmt.Sprintf("%s %s", firstName, lastName)),
		GivenName:         to.StringPtr(firstName),
		Surname:           to.StringPtr(lastName),
		UserPrincipalName: to.StringPtr(username),
	}
	if contactEmail != "" {
		update.Mail = to.StringPtr(contactEmail)
		update.OtherMails = []string{contactEmail}
	}

	if err := p.directory.UpdateUser(ctx, existing.ID, update); err != nil {
		if graph.IsNotFound(err) {
			return empty, &NotFoundError{UserID: userID}
		}
		return empty, p.wrapDirectoryError("Failed to update user in the directory", err)
	}

	return UpdatedAccount{
		ID:           existing.ID,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		ContactEmail: contactEmail,
	}, nil
}

// DeleteUser delegates straight to the directory. A directory not-found is
// deliberately not unwrapped here, it surfaces as a generic service error.
func (p *provisioner) DeleteUser(ctx context.Context, username string) error {
	if err := p.directory.DeleteUser(ctx, username); err != nil {
		return p.wrapDirectoryError("Failed to delete user in the directory", err)
	}
	return nil
}

// AddUserToGroup is idempotent, adding a user who is already a member does
// not hit the directory's add-member operation again.
func (p *provisioner) AddUserToGroup(ctx context.Context, userID string, groupName string) error {
	groupID, ok := p.config.GroupID(groupName)
	if !ok {
		return &UnknownGroupError{Name: groupName}
	}

	groups, err := p.directory.GetGroupsForUser(ctx, userID)
	if err != nil {
		return p.wrapDirectoryError("Failed to look up user's groups", err)
	}

	alreadyMember := funk.Contains(groups, func(group graph.Group) bool {
		return group.ID == groupID
	})
	if alreadyMember {
		return nil
	}

	if err := p.directory.AddUserToGroup(ctx, userID, groupID); err != nil {
		return p.wrapDirectoryError("Failed to add user to group", err)
	}
	return nil
}

func (p *provisioner) GetJudges(ctx context.Context, usernameFilter string) ([]UserInfo, error) {
	judgeGroupID, ok := p.config.GroupID(GroupJudge)
	if !ok {
		return nil, newServiceError("No judge group configured", nil)
	}

	judges, err := p.directory.GetUsersInGroup(ctx, judgeGroupID)
	if err != nil {
		return nil, p.wrapDirectoryError("Failed to get judges", err)
	}

	if p.config.IsLive {
		testGroupID, ok := p.config.GroupID(GroupTestAccount)
		if !ok {
			return nil, newServiceError("No test account group configured", nil)
		}

		testAccounts, err := p.directory.GetUsersInGroup(ctx, testGroupID)
		if err != nil {
			return nil, p.wrapDirectoryError("Failed to get test accounts", err)
		}

		testAccountIDs := funk.Map(testAccounts, func(user graph.User) string {
			return user.ID
		}).([]string)

		judges = funk.Filter(judges, func(user graph.User) bool {
			return !funk.ContainsString(testAccountIDs, user.ID)
		}).([]graph.User)
	}

	prefix := strings.ToLower(p.config.PerformanceTestPrefix)
	judges = funk.Filter(judges, func(user graph.User) bool {
		return !strings.HasPrefix(strings.ToLower(user.GivenName), prefix)
	}).([]graph.User)

	if usernameFilter != "" {
		needle := strings.ToLower(usernameFilter)
		judges = funk.Filter(judges, func(user graph.User) bool {
			return strings.Contains(strings.ToLower(user.UserPrincipalName), needle)
		}).([]graph.User)
	}

	sort.Slice(judges, func(i, j int) bool {
		return judges[i].DisplayName < judges[j].DisplayName
	})

	infos := make([]UserInfo, 0, len(judges))
	for _, judge := range judges {
		infos = append(infos, newUserInfo(judge))
	}
	return infos, nil
}

func (p *provisioner) IsUserAdmin(ctx context.Context, principalID string) (bool, error) {
	assignments, err := p.directory.GetRoleAssignments(ctx, principalID)
	if err != nil {
		return false, p.wrapDirectoryError("Failed to get role assignments", err)
	}

	var definition *graph.RoleDefinition
	cacheKey := fmt.Sprintf("role-definition:%s", p.config.AdminRoleName)
	err = p.groupCache.GetOrSet(ctx, cacheKey, cache.DefaultTTL, &definition, func() (interface{}, error) {
		return p.directory.GetRoleDefinition(ctx, p.config.AdminRoleName)
	})
	if err != nil {
		return false, p.wrapDirectoryError("Failed to get admin role definition", err)
	}
	if definition == nil {
		return false, newServiceError("Admin role definition not found in the directory", nil)
	}

	isAdmin := funk.Contains(assignments, func(assignment graph.RoleAssignment) bool {
		return assignment.RoleDefinitionID == definition.ID
	})
	return isAdmin, nil
}

func (p *provisioner) GetUserByID(ctx context.Context, userID string) (UserInfo, error) {
	return p.findUser(ctx, userID, fmt.Sprintf("id eq '%s'", graph.EscapeFilter(userID)))
}

func (p *provisioner) GetUserByUsername(ctx context.Context, username string) (UserInfo, error) {
	return p.findUser(ctx, username, fmt.Sprintf("userPrincipalName eq '%s'", graph.EscapeFilter(username)))
}

func (p *provisioner) GetUserByEmail(ctx context.Context, email string) (UserInfo, error) {
	return p.findUser(ctx, email, fmt.Sprintf("otherMails/any(c:c eq '%s')", graph.EscapeFilter(email)))
}

func (p *provisioner) GetUserGroups(ctx context.Context, userID string) ([]GroupInfo, error) {
	groups, err := p.directory.GetGroupsForUser(ctx, userID)
	if err != nil {
		return nil, p.wrapDirectoryError("Failed to get user's groups", err)
	}

	infos := make([]GroupInfo, 0, len(groups))
	for _, group := range groups {
		infos = append(infos, newGroupInfo(group))
	}
	return infos, nil
}

func (p *provisioner) GetGroupByName(ctx context.Context, name string) (*GroupInfo, error) {
	var group *graph.Group
	cacheKey := fmt.Sprintf("group:name:%s", name)
	err := p.groupCache.GetOrSet(ctx, cacheKey, cache.DefaultTTL, &group, func() (interface{}, error) {
		return p.directory.GetGroupByName(ctx, name)
	})
	if err != nil {
		return nil, p.wrapDirectoryError("Failed to look up group", err)
	}
	if group == nil {
		return nil, nil
	}

	info := newGroupInfo(*group)
	return &info, nil
}

func (p *provisioner) GetGroupByID(ctx context.Context, groupID string) (*GroupInfo, error) {
	group, err := p.directory.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, p.wrapDirectoryError("Failed to look up group", err)
	}
	if group == nil {
		return nil, nil
	}

	info := newGroupInfo(*group)
	return &info, nil
}

func (p *provisioner) findUser(ctx context.Context, lookup string, filter string) (UserInfo, error) {
	user, err := p.getUser(ctx, filter)
	if err != nil {
		return UserInfo{}, p.wrapDirectoryError("Failed to look up user", err)
	}
	if user == nil {
		return UserInfo{}, &NotFoundError{UserID: lookup}
	}
	return newUserInfo(*user), nil
}

func (p *provisioner) getUser(ctx context.Context, filter string) (*graph.User, error) {
	matches, err := p.directory.GetUsers(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (p *provisioner) wrapDirectoryError(message string, err error) error {
	var graphErr *graph.Error
	if errors.As(err, &graphErr) {
		return &ServiceError{
			Message: message,
			Reason:  graphErr.Message,
		}
	}
	return newServiceError(fmt.Sprintf("%s: unexpected error", message), err)
}
