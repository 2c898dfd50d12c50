package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://graph.microsoft.com/v1.0"
	defaultTimeout = 30 * time.Second
)

var tokenScopes = []string{"https://graph.microsoft.com/.default"}

// Client is the directory surface consumed by the provisioning service.
// The directory is the system of record, nothing is cached here.
type Client interface {
	CreateUser(ctx context.Context, user NewUser) (*User, error)
	UpdateUser(ctx context.Context, objectID string, update UserUpdate) error
	DeleteUser(ctx context.Context, principalName string) error
	GetUsers(ctx context.Context, filter string) ([]User, error)
	GetDeletedUsernames(ctx context.Context, filter string) ([]string, error)
	GetUsersInGroup(ctx context.Context, groupID string) ([]User, error)
	GetGroupsForUser(ctx context.Context, userID string) ([]Group, error)
	GetGroupByName(ctx context.Context, name string) (*Group, error)
	GetGroupByID(ctx context.Context, groupID string) (*Group, error)
	GetRoleAssignments(ctx context.Context, principalID string) ([]RoleAssignment, error)
	GetRoleDefinition(ctx context.Context, displayName string) (*RoleDefinition, error)
	AddUserToGroup(ctx context.Context, userID string, groupID string) error
}

type client struct {
	credential TokenCredential
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logContext logrus.FieldLogger
}

func NewClient(credential TokenCredential, logContext logrus.FieldLogger) Client {
	return NewClientWithBaseURL(credential, defaultBaseURL, logContext)
}

// NewClientWithBaseURL is used by tests to point the client at a fake directory.
func NewClientWithBaseURL(credential TokenCredential, baseURL string, logContext logrus.FieldLogger) Client {
	return &client{
		credential: credential,
		httpClient: &http.Client{},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		timeout:    defaultTimeout,
		logContext: logContext,
	}
}

// EscapeFilter doubles embedded single quotes so a value is safe inside
// an OData $filter literal.
func EscapeFilter(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

func (c *client) CreateUser(ctx context.Context, user NewUser) (*User, error) {
	statusCode, body, err := c.do(ctx, http.MethodPost, c.baseURL+"/users", user)
	if err != nil {
		return nil, err
	}

	if statusCode != http.StatusCreated && statusCode != http.StatusOK {
		return nil, newError(statusCode, body)
	}

	var created User
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to decode created user: %w", err)
	}

	return &created, nil
}

func (c *client) UpdateUser(ctx context.Context, objectID string, update UserUpdate) error {
	requestURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(objectID))
	statusCode, body, err := c.do(ctx, http.MethodPatch, requestURL, update)
	if err != nil {
		return err
	}

	if statusCode != http.StatusNoContent {
		return newError(statusCode, body)
	}
	return nil
}

func (c *client) DeleteUser(ctx context.Context, principalName string) error {
	requestURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(principalName))
	statusCode, body, err := c.do(ctx, http.MethodDelete, requestURL, nil)
	if err != nil {
		return err
	}

	if statusCode != http.StatusNoContent {
		return newError(statusCode, body)
	}
	return nil
}

func (c *client) GetUsers(ctx context.Context, filter string) ([]User, error) {
	requestURL := fmt.Sprintf(
		"%s/users?$filter=%s&$select=id,userPrincipalName,displayName,givenName,surname,mail,otherMails,accountEnabled,userType",
		c.baseURL,
		url.QueryEscape(filter),
	)
	return list[User](ctx, c, requestURL)
}

func (c *client) GetDeletedUsernames(ctx context.Context, filter string) ([]string, error) {
	requestURL := fmt.Sprintf(
		"%s/directory/deletedItems/microsoft.graph.user?$filter=%s&$select=userPrincipalName",
		c.baseURL,
		url.QueryEscape(filter),
	)

	deleted, err := list[User](ctx, c, requestURL)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(deleted))
	for _, user := range deleted {
		if user.UserPrincipalName != "" {
			usernames = append(usernames, user.UserPrincipalName)
		}
	}
	return usernames, nil
}

func (c *client) GetUsersInGroup(ctx context.Context, groupID string) ([]User, error) {
	requestURL := fmt.Sprintf(
		"%s/groups/%s/members/microsoft.graph.user?$select=id,userPrincipalName,displayName,givenName,surname,mail,otherMails",
		c.baseURL,
		url.PathEscape(groupID),
	)
	return list[User](ctx, c, requestURL)
}

func (c *client) GetGroupsForUser(ctx context.Context, userID string) ([]Group, error) {
	requestURL := fmt.Sprintf(
		"%s/users/%s/memberOf/microsoft.graph.group?$select=id,displayName",
		c.baseURL,
		url.PathEscape(userID),
	)
	return list[Group](ctx, c, requestURL)
}

func (c *client) GetGroupByName(ctx context.Context, name string) (*Group, error) {
	filter := fmt.Sprintf("displayName eq '%s'", EscapeFilter(name))
	requestURL := fmt.Sprintf("%s/groups?$filter=%s", c.baseURL, url.QueryEscape(filter))

	groups, err := list[Group](ctx, c, requestURL)
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return nil, nil
	}
	if len(groups) > 1 {
		return nil, ErrTooManyResults
	}
	return &groups[0], nil
}

func (c *client) GetGroupByID(ctx context.Context, groupID string) (*Group, error) {
	requestURL := fmt.Sprintf("%s/groups/%s", c.baseURL, url.PathEscape(groupID))
	statusCode, body, err := c.do(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	if statusCode == http.StatusNotFound {
		return nil, nil
	}
	if statusCode != http.StatusOK {
		return nil, newError(statusCode, body)
	}

	var group Group
	if err := json.Unmarshal(body, &group); err != nil {
		return nil, fmt.Errorf("failed to decode group: %w", err)
	}
	return &group, nil
}

func (c *client) GetRoleAssignments(ctx context.Context, principalID string) ([]RoleAssignment, error) {
	filter := fmt.Sprintf("principalId eq '%s'", EscapeFilter(principalID))
	requestURL := fmt.Sprintf(
		"%s/roleManagement/directory/roleAssignments?$filter=%s",
		c.baseURL,
		url.QueryEscape(filter),
	)
	return list[RoleAssignment](ctx, c, requestURL)
}

func (c *client) GetRoleDefinition(ctx context.Context, displayName string) (*RoleDefinition, error) {
	filter := fmt.Sprintf("displayName eq '%s'", EscapeFilter(displayName))
	requestURL := fmt.Sprintf(
		"%s/roleManagement/directory/roleDefinitions?$filter=%s",
		c.baseURL,
		url.QueryEscape(filter),
	)

	definitions, err := list[RoleDefinition](ctx, c, requestURL)
	if err != nil {
		return nil, err
	}

	if len(definitions) == 0 {
		return nil, nil
	}
	return &definitions[0], nil
}

func (c *client) AddUserToGroup(ctx context.Context, userID string, groupID string) error {
	requestURL := fmt.Sprintf("%s/groups/%s/members/$ref", c.baseURL, url.PathEscape(groupID))
	payload := map[string]string{
		"@odata.id": fmt.Sprintf("%s/directoryObjects/%s", defaultBaseURL, url.PathEscape(userID)),
	}

	statusCode, body, err := c.do(ctx, http.MethodPost, requestURL, payload)
	if err != nil {
		return err
	}

	if statusCode != http.StatusNoContent {
		return newError(statusCode, body)
	}
	return nil
}

type listEnvelope struct {
	NextLink string          `json:"@odata.nextLink"`
	Value    json.RawMessage `json:"value"`
}

// list fetches every page of a collection, following @odata.nextLink.
func list[T any](ctx context.Context, c *client, requestURL string) ([]T, error) {
	results := make([]T, 0)

	for requestURL != "" {
		statusCode, body, err := c.do(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}

		if statusCode == http.StatusNotFound {
			return results, nil
		}
		if statusCode != http.StatusOK {
			return nil, newError(statusCode, body)
		}

		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode collection: %w", err)
		}

		var page []T
		if err := json.Unmarshal(envelope.Value, &page); err != nil {
			return nil, fmt.Errorf("failed to decode collection page: %w", err)
		}
		results = append(results, page...)

		requestURL = envelope.NextLink
	}

	return results, nil
}

func (c *client) do(ctx context.Context, method string, requestURL string, payload interface{}) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	token, err := c.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: tokenScopes,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to acquire token: %w", err)
	}

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode payload: %w", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Authorization", "Bearer "+token.Token)
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to reach directory: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read directory response: %w", err)
	}

	c.logContext.WithFields(logrus.Fields{
		"method": method,
		"url":    requestURL,
		"status": response.StatusCode,
	}).Debug("directory call")

	return response.StatusCode, body, nil
}
