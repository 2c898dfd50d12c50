package users

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/reform-tech/user-api/pkg/utils"
)

// Service is the HTTP layer, it parses requests, delegates to the
// provisioner and maps errors to responses.
type Service struct {
	provisioner Provisioner
	logContext  logrus.FieldLogger
}

func NewService(provisioner Provisioner, logContext logrus.FieldLogger) Service {
	return Service{
		provisioner: provisioner,
		logContext:  logContext,
	}
}

func (s *Service) Create(w http.ResponseWriter, r *http.Request) {
	logContext := s.logContext.WithFields(logrus.Fields{
		"method": "Create",
	})

	var input CreateUserRequest
	if !s.decode(w, r, &input) {
		return
	}

	if violations := input.Validate(); len(violations) > 0 {
		utils.RespondWithValidationErrors(w, violations)
		return
	}

	result, err := s.provisioner.CreateUser(r.Context(), input.FirstName, input.LastName, input.RecoveryEmail, input.IsTestUser)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, result)
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":  "Update",
		"user_id": userID,
	})

	var input UpdateUserAccountRequest
	if !s.decode(w, r, &input) {
		return
	}

	if violations := input.Validate(); len(violations) > 0 {
		utils.RespondWithValidationErrors(w, violations)
		return
	}

	updated, err := s.provisioner.UpdateUserAccount(r.Context(), userID, input.FirstName, input.LastName, input.ContactEmail)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":   "Delete",
		"username": username,
	})

	if err := s.provisioner.DeleteUser(r.Context(), username); err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondNoContent(w, http.StatusAccepted)
}

func (s *Service) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":  "GetByID",
		"user_id": userID,
	})

	user, err := s.provisioner.GetUserByID(r.Context(), userID)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// Lookup finds a user by username or email query parameter.
func (s *Service) Lookup(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	email := r.URL.Query().Get("email")

	logContext := s.logContext.WithFields(logrus.Fields{
		"method": "Lookup",
	})

	var user UserInfo
	var err error
	switch {
	case username != "":
		user, err = s.provisioner.GetUserByUsername(r.Context(), username)
	case email != "":
		user, err = s.provisioner.GetUserByEmail(r.Context(), email)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Either username or email query parameter is required")
		return
	}

	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (s *Service) GetGroups(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":  "GetGroups",
		"user_id": userID,
	})

	groups, err := s.provisioner.GetUserGroups(r.Context(), userID)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, groups)
}

func (s *Service) AddToGroup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":  "AddToGroup",
		"user_id": userID,
	})

	var input AddUserToGroupRequest
	if !s.decode(w, r, &input) {
		return
	}
	input.UserID = userID

	if violations := input.Validate(); len(violations) > 0 {
		utils.RespondWithValidationErrors(w, violations)
		return
	}

	if err := s.provisioner.AddUserToGroup(r.Context(), input.UserID, input.GroupName); err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondNoContent(w, http.StatusNoContent)
}

func (s *Service) IsAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":  "IsAdmin",
		"user_id": userID,
	})

	isAdmin, err := s.provisioner.IsUserAdmin(r.Context(), userID)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{
		"is_admin": isAdmin,
	})
}

func (s *Service) GetJudges(w http.ResponseWriter, r *http.Request) {
	usernameFilter := r.URL.Query().Get("username")

	logContext := s.logContext.WithFields(logrus.Fields{
		"method": "GetJudges",
	})

	judges, err := s.provisioner.GetJudges(r.Context(), usernameFilter)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, judges)
}

func (s *Service) GetGroupByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID := vars["groupID"]

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":   "GetGroupByID",
		"group_id": groupID,
	})

	group, err := s.provisioner.GetGroupByID(r.Context(), groupID)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}
	if group == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Group not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, group)
}

func (s *Service) GetGroupByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "The name query parameter is required")
		return
	}

	logContext := s.logContext.WithFields(logrus.Fields{
		"method":     "GetGroupByName",
		"group_name": name,
	})

	group, err := s.provisioner.GetGroupByName(r.Context(), name)
	if err != nil {
		s.respondWithServiceError(w, logContext, err)
		return
	}
	if group == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Group not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, group)
}

func (s *Service) decode(w http.ResponseWriter, r *http.Request, input interface{}) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read payload")
		return false
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func (s *Service) respondWithServiceError(w http.ResponseWriter, logContext logrus.FieldLogger, err error) {
	var alreadyExists *AlreadyExistsError
	var notFound *NotFoundError
	var unknownGroup *UnknownGroupError
	var serviceErr *ServiceError

	switch {
	case errors.Is(err, ErrInvalidEmail):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &alreadyExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &notFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unknownGroup):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &serviceErr):
		logContext.WithFields(logrus.Fields{
			"error":  serviceErr.Message,
			"reason": serviceErr.Reason,
		}).Error("directory operation failed")
		utils.RespondWithError(w, http.StatusInternalServerError, serviceErr.Message)
	default:
		logContext.WithFields(logrus.Fields{
			"error": err,
		}).Error("unexpected error")
		utils.RespondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
