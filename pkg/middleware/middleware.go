package middleware

import (
	"mime"
	"net/http"

	"github.com/google/uuid"
	"github.com/reform-tech/user-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

func RestrictHandlerWithHeaderName(secret string, name string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			xSecret := r.Header.Get(name)
			if xSecret != secret {
				utils.RespondWithError(w, http.StatusUnauthorized, "You are not authorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RestrictHandler(secret string) func(next http.Handler) http.Handler {
	return RestrictHandlerWithHeaderName(secret, "x-shared-secret")
}

func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")

		if contentType != "" {
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Malformed Content-Type header")
				return
			}

			if mt != "application/json" {
				utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Content-Type header must be application/json")
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// LogRequest tags every request with a request id and logs method + path.
func LogRequest(logContext logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("x-request-id")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set("x-request-id", requestID)

			logContext.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Info("handling request")

			next.ServeHTTP(w, r)
		})
	}
}
