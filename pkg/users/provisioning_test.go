package users_test

import (
	"context"
	"errors"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"

	mockGraph "github.com/reform-tech/user-api/mocks/pkg/graph"
	"github.com/reform-tech/user-api/pkg/graph"
	"github.com/reform-tech/user-api/pkg/users"
)

var _ = Describe("Provisioner", func() {
	var (
		ctx         context.Context
		directory   *mockGraph.Client
		config      users.Config
		provisioner users.Provisioner
	)

	newProvisioner := func() users.Provisioner {
		logger, _ := logrusTest.NewNullLogger()
		return users.NewProvisioner(directory, nil, config, logger.WithField("context", "user-provisioner"))
	}

	BeforeEach(func() {
		ctx = context.Background()
		directory = &mockGraph.Client{}
		config = users.Config{
			EmailDomain: "reform.example.com",
			GroupIDs: map[string]string{
				users.GroupJudge:       "judge-group-id",
				users.GroupTestAccount: "test-account-group-id",
			},
			IsLive:                true,
			TestUserPassword:      "Fixed.Test.Pw1",
			PerformanceTestPrefix: "TP",
			AdminRoleName:         "User Administrator",
		}
		provisioner = newProvisioner()
	})

	Describe("Creating a user", func() {
		It("rejects a malformed recovery email without touching the directory", func() {
			_, err := provisioner.CreateUser(ctx, "John", "Smith", "not-an-email", false)

			Expect(err).To(MatchError(users.ErrInvalidEmail))
			directory.AssertNotCalled(GinkgoT(), "GetUsers", mock.Anything, mock.Anything)
		})

		It("fails with the colliding username when the recovery email is already in use", func() {
			directory.On("GetUsers", mock.Anything, "otherMails/any(c:c eq 'john@example.com')").Return([]graph.User{
				{ID: "existing-id", UserPrincipalName: "john.smith@reform.example.com"},
			}, nil)

			_, err := provisioner.CreateUser(ctx, "John", "Smith", "john@example.com", false)

			var alreadyExists *users.AlreadyExistsError
			Expect(errors.As(err, &alreadyExists)).To(BeTrue())
			Expect(alreadyExists.Username).To(Equal("john.smith@reform.example.com"))
			Expect(alreadyExists.Error()).ToNot(ContainSubstring("john@example.com"))
			directory.AssertNotCalled(GinkgoT(), "CreateUser", mock.Anything, mock.Anything)
		})

		It("escapes embedded quotes in the duplicate email query", func() {
			directory.On("GetUsers", mock.Anything, "otherMails/any(c:c eq 'o''neil@example.com')").Return([]graph.User{}, nil)
			directory.On("GetUsers", mock.Anything, mock.MatchedBy(func(filter string) bool {
				return strings.HasPrefix(filter, "startswith")
			})).Return([]graph.User{}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, mock.Anything).Return([]string{}, nil)
			directory.On("CreateUser", mock.Anything, mock.Anything).Return(&graph.User{ID: "new-id"}, nil)

			_, err := provisioner.CreateUser(ctx, "John", "Smith", "o'neil@example.com", false)
			Expect(err).To(BeNil())
		})

		It("allocates the next free username across active and deleted users", func() {
			directory.On("GetUsers", mock.Anything, "otherMails/any(c:c eq 'john@example.com')").Return([]graph.User{}, nil)
			directory.On("GetUsers", mock.Anything, "startswith(userPrincipalName,'john.smith')").Return([]graph.User{
				{UserPrincipalName: "John.Smith@reform.example.com"},
				{UserPrincipalName: "john.smithson@reform.example.com"},
			}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, "otherMails/any(c:c eq 'john@example.com')").Return([]string{
				"john.smith1@reform.example.com",
			}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, "givenName eq 'John' and surname eq 'Smith'").Return([]string{}, nil)

			var created graph.NewUser
			directory.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				created = args.Get(1).(graph.NewUser)
			}).Return(&graph.User{ID: "new-id"}, nil)

			result, err := provisioner.CreateUser(ctx, "John", "Smith", "john@example.com", false)

			Expect(err).To(BeNil())
			Expect(result.Username).To(Equal("john.smith2@reform.example.com"))
			Expect(result.ID).To(Equal("new-id"))
			Expect(result.OneTimePassword).To(HaveLen(12))

			Expect(created.UserPrincipalName).To(Equal("john.smith2@reform.example.com"))
			Expect(created.MailNickname).To(Equal("john.smith"))
			Expect(created.DisplayName).To(Equal("John Smith"))
			Expect(created.Mail).To(Equal("john@example.com"))
			Expect(created.OtherMails).To(Equal([]string{"john@example.com"}))
			Expect(created.UserType).To(Equal("Guest"))
			Expect(*created.AccountEnabled).To(BeTrue())
			Expect(created.PasswordProfile.ForceChangePasswordNextSignIn).To(BeTrue())
		})

		It("uses the fixed test password for test users", func() {
			directory.On("GetUsers", mock.Anything, mock.Anything).Return([]graph.User{}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, mock.Anything).Return([]string{}, nil)

			var created graph.NewUser
			directory.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				created = args.Get(1).(graph.NewUser)
			}).Return(&graph.User{ID: "new-id"}, nil)

			result, err := provisioner.CreateUser(ctx, "Test", "User", "test@example.com", true)

			Expect(err).To(BeNil())
			Expect(result.OneTimePassword).To(Equal("Fixed.Test.Pw1"))
			Expect(created.PasswordProfile.Password).To(Equal("Fixed.Test.Pw1"))
			Expect(created.PasswordProfile.ForceChangePasswordNextSignIn).To(BeFalse())
		})

		It("wraps a directory reported failure with its message", func() {
			directory.On("GetUsers", mock.Anything, mock.Anything).Return([]graph.User{}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, mock.Anything).Return([]string{}, nil)
			directory.On("CreateUser", mock.Anything, mock.Anything).Return(nil, &graph.Error{
				StatusCode: http.StatusBadRequest,
				Code:       "Request_BadRequest",
				Message:    "Another object with the same value for property userPrincipalName already exists.",
			})

			_, err := provisioner.CreateUser(ctx, "John", "Smith", "john@example.com", false)

			var serviceErr *users.ServiceError
			Expect(errors.As(err, &serviceErr)).To(BeTrue())
			Expect(serviceErr.Reason).To(ContainSubstring("userPrincipalName already exists"))
		})

		It("treats an empty created user as a failure", func() {
			directory.On("GetUsers", mock.Anything, mock.Anything).Return([]graph.User{}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, mock.Anything).Return([]string{}, nil)
			directory.On("CreateUser", mock.Anything, mock.Anything).Return(nil, nil)

			_, err := provisioner.CreateUser(ctx, "John", "Smith", "john@example.com", false)

			var serviceErr *users.ServiceError
			Expect(errors.As(err, &serviceErr)).To(BeTrue())
		})
	})

	Describe("Updating a user account", func() {
		It("fails with not found when the user is absent", func() {
			directory.On("GetUsers", mock.Anything, "id eq 'user-123'").Return([]graph.User{}, nil)

			_, err := provisioner.UpdateUserAccount(ctx, "user-123", "John", "Smith", "")

			var notFound *users.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.UserID).To(Equal("user-123"))
		})

		It("keeps the principal name when only the casing of the name differs", func() {
			directory.On("GetUsers", mock.Anything, "id eq 'user-123'").Return([]graph.User{{
				ID:                "user-123",
				UserPrincipalName: "john.smith@reform.example.com",
				GivenName:         "john",
				Surname:           "SMITH",
			}}, nil)
			directory.On("UpdateUser", mock.Anything, "user-123", mock.Anything).Return(nil)

			updated, err := provisioner.UpdateUserAccount(ctx, "user-123", "John", "Smith", "")

			Expect(err).To(BeNil())
			Expect(updated.Username).To(Equal("john.smith@reform.example.com"))
			directory.AssertNotCalled(GinkgoT(), "GetDeletedUsernames", mock.Anything, mock.Anything)
		})

		It("reallocates the username when the name changes", func() {
			directory.On("GetUsers", mock.Anything, "id eq 'user-123'").Return([]graph.User{{
				ID:                "user-123",
				UserPrincipalName: "john.smith@reform.example.com",
				GivenName:         "John",
				Surname:           "Smith",
			}}, nil)
			directory.On("GetUsers", mock.Anything, "startswith(userPrincipalName,'john.smythe')").Return([]graph.User{
				{UserPrincipalName: "john.smythe@reform.example.com"},
			}, nil)
			directory.On("GetDeletedUsernames", mock.Anything, mock.Anything).Return([]string{}, nil)

			var update graph.UserUpdate
			directory.On("UpdateUser", mock.Anything, "user-123", mock.Anything).Run(func(args mock.Arguments) {
				update = args.Get(2).(graph.UserUpdate)
			}).Return(nil)

			updated, err := provisioner.UpdateUserAccount(ctx, "user-123", "John", "Smythe", "new@example.com")

			Expect(err).To(BeNil())
			Expect(updated.Username).To(Equal("john.smythe1@reform.example.com"))
			Expect(*update.UserPrincipalName).To(Equal("john.smythe1@reform.example.com"))
			Expect(*update.DisplayName).To(Equal("John Smythe"))
			Expect(*update.Mail).To(Equal("new@example.com"))
			Expect(update.OtherMails).To(Equal([]string{"new@example.com"}))
		})
	})

	Describe("Deleting a user", func() {
		It("delegates to the directory", func() {
			directory.On("DeleteUser", mock.Anything, "john.smith@reform.example.com").Return(nil)

			err := provisioner.DeleteUser(ctx, "john.smith@reform.example.com")
			Expect(err).To(BeNil())
		})

		It("wraps a directory not found as a generic service error", func() {
			directory.On("DeleteUser", mock.Anything, mock.Anything).Return(&graph.Error{
				StatusCode: http.StatusNotFound,
				Code:       "Request_ResourceNotFound",
				Message:    "Resource does not exist.",
			})

			err := provisioner.DeleteUser(ctx, "missing@reform.example.com")

			var serviceErr *users.ServiceError
			Expect(errors.As(err, &serviceErr)).To(BeTrue())
			var notFound *users.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeFalse())
		})
	})

	Describe("Adding a user to a group", func() {
		It("fails when the group role name is not configured", func() {
			err := provisioner.AddUserToGroup(ctx, "user-123", "nonsense")

			var unknownGroup *users.UnknownGroupError
			Expect(errors.As(err, &unknownGroup)).To(BeTrue())
		})

		It("only calls the directory add-member operation once for repeated adds", func() {
			directory.On("GetGroupsForUser", mock.Anything, "user-123").Return([]graph.Group{}, nil).Once()
			directory.On("AddUserToGroup", mock.Anything, "user-123", "judge-group-id").Return(nil).Once()
			directory.On("GetGroupsForUser", mock.Anything, "user-123").Return([]graph.Group{
				{ID: "judge-group-id", DisplayName: "Judges"},
			}, nil)

			Expect(provisioner.AddUserToGroup(ctx, "user-123", users.GroupJudge)).To(Succeed())
			Expect(provisioner.AddUserToGroup(ctx, "user-123", users.GroupJudge)).To(Succeed())

			directory.AssertNumberOfCalls(GinkgoT(), "AddUserToGroup", 1)
		})
	})

	Describe("Listing judges", func() {
		judge := func(id string, displayName string, givenName string, upn string) graph.User {
			return graph.User{
				ID:                id,
				DisplayName:       displayName,
				GivenName:         givenName,
				UserPrincipalName: upn,
			}
		}

		BeforeEach(func() {
			directory.On("GetUsersInGroup", mock.Anything, "judge-group-id").Return([]graph.User{
				judge("3", "Zoe Alder", "Zoe", "zoe.alder@reform.example.com"),
				judge("1", "Amy Pond", "Amy", "amy.pond@reform.example.com"),
				judge("2", "Rory Test", "Rory", "rory.test@reform.example.com"),
				judge("4", "TP Load", "tp load", "tp.load@reform.example.com"),
			}, nil)
			directory.On("GetUsersInGroup", mock.Anything, "test-account-group-id").Return([]graph.User{
				judge("2", "Rory Test", "Rory", "rory.test@reform.example.com"),
			}, nil)
		})

		It("excludes test accounts and performance test users in live mode, ordered by display name", func() {
			judges, err := provisioner.GetJudges(ctx, "")

			Expect(err).To(BeNil())
			Expect(judges).To(HaveLen(2))
			Expect(judges[0].DisplayName).To(Equal("Amy Pond"))
			Expect(judges[1].DisplayName).To(Equal("Zoe Alder"))
		})

		It("keeps test accounts when not in live mode", func() {
			config.IsLive = false
			provisioner = newProvisioner()

			judges, err := provisioner.GetJudges(ctx, "")

			Expect(err).To(BeNil())
			Expect(judges).To(HaveLen(3))
			directory.AssertNotCalled(GinkgoT(), "GetUsersInGroup", mock.Anything, "test-account-group-id")
		})

		It("filters on a case-insensitive username substring", func() {
			judges, err := provisioner.GetJudges(ctx, "AMY.P")

			Expect(err).To(BeNil())
			Expect(judges).To(HaveLen(1))
			Expect(judges[0].Username).To(Equal("amy.pond@reform.example.com"))
		})
	})

	Describe("Checking admin role", func() {
		It("is true when an assignment matches the admin role definition", func() {
			directory.On("GetRoleAssignments", mock.Anything, "user-123").Return([]graph.RoleAssignment{
				{ID: "a1", PrincipalID: "user-123", RoleDefinitionID: "role-def-1"},
				{ID: "a2", PrincipalID: "user-123", RoleDefinitionID: "role-def-admin"},
			}, nil)
			directory.On("GetRoleDefinition", mock.Anything, "User Administrator").Return(&graph.RoleDefinition{
				ID:          "role-def-admin",
				DisplayName: "User Administrator",
			}, nil)

			isAdmin, err := provisioner.IsUserAdmin(ctx, "user-123")
			Expect(err).To(BeNil())
			Expect(isAdmin).To(BeTrue())
		})

		It("is false without a matching assignment", func() {
			directory.On("GetRoleAssignments", mock.Anything, "user-123").Return([]graph.RoleAssignment{
				{ID: "a1", PrincipalID: "user-123", RoleDefinitionID: "role-def-1"},
			}, nil)
			directory.On("GetRoleDefinition", mock.Anything, "User Administrator").Return(&graph.RoleDefinition{
				ID: "role-def-admin",
			}, nil)

			isAdmin, err := provisioner.IsUserAdmin(ctx, "user-123")
			Expect(err).To(BeNil())
			Expect(isAdmin).To(BeFalse())
		})

		It("fails when the admin role definition is missing", func() {
			directory.On("GetRoleAssignments", mock.Anything, "user-123").Return([]graph.RoleAssignment{}, nil)
			directory.On("GetRoleDefinition", mock.Anything, "User Administrator").Return(nil, nil)

			_, err := provisioner.IsUserAdmin(ctx, "user-123")

			var serviceErr *users.ServiceError
			Expect(errors.As(err, &serviceErr)).To(BeTrue())
		})
	})

	Describe("Looking up users", func() {
		It("finds a user by id", func() {
			directory.On("GetUsers", mock.Anything, "id eq 'user-123'").Return([]graph.User{{
				ID:                "user-123",
				UserPrincipalName: "john.smith@reform.example.com",
			}}, nil)

			user, err := provisioner.GetUserByID(ctx, "user-123")
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("john.smith@reform.example.com"))
		})

		It("fails with not found for an unknown username", func() {
			directory.On("GetUsers", mock.Anything, "userPrincipalName eq 'missing@reform.example.com'").Return([]graph.User{}, nil)

			_, err := provisioner.GetUserByUsername(ctx, "missing@reform.example.com")

			var notFound *users.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Describe("Looking up groups", func() {
		It("returns nil for an absent group name", func() {
			directory.On("GetGroupByName", mock.Anything, "Missing").Return(nil, nil)

			group, err := provisioner.GetGroupByName(ctx, "Missing")
			Expect(err).To(BeNil())
			Expect(group).To(BeNil())
		})

		It("maps a found group", func() {
			directory.On("GetGroupByID", mock.Anything, "group-1").Return(&graph.Group{
				ID:          "group-1",
				DisplayName: "Judges",
			}, nil)

			group, err := provisioner.GetGroupByID(ctx, "group-1")
			Expect(err).To(BeNil())
			Expect(group.Name).To(Equal("Judges"))
		})
	})
})
