package api

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reform-tech/user-api/pkg/cache"
	configCMD "github.com/reform-tech/user-api/pkg/cmd"
	"github.com/reform-tech/user-api/pkg/graph"
	"github.com/reform-tech/user-api/pkg/middleware"
	"github.com/reform-tech/user-api/pkg/users"
	"github.com/reform-tech/user-api/pkg/utils"
)

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Server for the user api",
	Run: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetOutput(os.Stdout)

		logContext := logrus.StandardLogger()

		listenOn := viper.GetString("server.listenOn")
		sharedSecret := viper.GetString("server.secret")
		isLive := viper.GetBool("server.isLive")

		tenantID := viper.GetString("server.azure.tenantId")
		clientID := viper.GetString("server.azure.clientId")
		clientSecret := viper.GetString("server.azure.clientSecret")

		config := users.Config{
			EmailDomain: viper.GetString("server.emailDomain"),
			GroupIDs: map[string]string{
				users.GroupJudge:       viper.GetString("server.groups.judge"),
				users.GroupTestAccount: viper.GetString("server.groups.testAccount"),
			},
			IsLive:                isLive,
			TestUserPassword:      viper.GetString("server.testUserPassword"),
			PerformanceTestPrefix: users.DefaultPerformanceTestPrefix,
			AdminRoleName:         users.DefaultAdminRoleName,
		}

		if config.EmailDomain == "" {
			logContext.Fatal("EMAIL_DOMAIN is required")
		}

		logContext.WithFields(logrus.Fields{
			"listen_on": listenOn,
			"is_live":   isLive,
			"domain":    config.EmailDomain,
		}).Info("start up")

		credential, err := graph.NewClientSecretCredential(tenantID, clientID, clientSecret)
		if err != nil {
			logContext.WithField("error", err).Fatal("Missing AZURE_XXX settings")
		}
		directory := graph.NewClient(credential, logContext.WithField("context", "graph-client"))

		var groupCache *cache.Cache
		if redisAddress := viper.GetString("server.redis.address"); redisAddress != "" {
			groupCache = cache.NewCache(
				redisAddress,
				viper.GetString("server.redis.password"),
				logContext.WithField("context", "group-cache"),
			)
		}

		provisioner := users.NewProvisioner(
			directory,
			groupCache,
			config,
			logContext.WithField("context", "user-provisioner"),
		)

		userService := users.NewService(
			provisioner,
			logContext.WithField("context", "user-service"),
		)

		c := cors.New(cors.Options{
			OptionsPassthrough: false,
			AllowedOrigins:     []string{"*"},
			AllowedMethods: []string{
				http.MethodOptions,
				http.MethodHead,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
			},
			// Not allowing "x-shared-secret" keeps it from coming from the browser
			AllowedHeaders:   []string{"*", "x-request-id"},
			AllowCredentials: true,
		})

		router := mux.NewRouter()

		stdChainBase := alice.New(
			c.Handler,
			middleware.LogRequest(logContext.WithField("context", "http")),
			middleware.RestrictHandler(sharedSecret),
		)
		stdChainWithJSON := stdChainBase.Append(middleware.EnforceJSONHandler)

		router.Handle(
			"/users",
			stdChainWithJSON.ThenFunc(userService.Create),
		).Methods(http.MethodPost, http.MethodOptions)

		router.Handle(
			"/users",
			stdChainWithJSON.ThenFunc(userService.Lookup),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/users/{userID}",
			stdChainWithJSON.ThenFunc(userService.GetByID),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/users/{userID}",
			stdChainWithJSON.ThenFunc(userService.Update),
		).Methods(http.MethodPut, http.MethodOptions)

		router.Handle(
			"/users/{username}",
			stdChainWithJSON.ThenFunc(userService.Delete),
		).Methods(http.MethodDelete, http.MethodOptions)

		router.Handle(
			"/users/{userID}/groups",
			stdChainWithJSON.ThenFunc(userService.GetGroups),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/users/{userID}/groups",
			stdChainWithJSON.ThenFunc(userService.AddToGroup),
		).Methods(http.MethodPost, http.MethodOptions)

		router.Handle(
			"/users/{userID}/admin",
			stdChainWithJSON.ThenFunc(userService.IsAdmin),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/judges",
			stdChainWithJSON.ThenFunc(userService.GetJudges),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/groups",
			stdChainWithJSON.ThenFunc(userService.GetGroupByName),
		).Methods(http.MethodGet, http.MethodOptions)

		router.Handle(
			"/groups/{groupID}",
			stdChainWithJSON.ThenFunc(userService.GetGroupByID),
		).Methods(http.MethodGet, http.MethodOptions)

		router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		}).Methods(http.MethodGet)

		srv := &http.Server{
			Handler:      router,
			Addr:         listenOn,
			WriteTimeout: 15 * time.Second,
			ReadTimeout:  15 * time.Second,
		}

		log.Fatal(srv.ListenAndServe())
	},
}

func init() {
	configCMD.SetupStringConfiguration(serverCMD, "server.secret", "secret", "HEADER_SECRET", "change", "Shared secret the caller has to present")
	configCMD.SetupStringConfiguration(serverCMD, "server.listenOn", "listen-on", "LISTEN_ON", "localhost:8080", "Address to listen on")
	configCMD.SetupBoolConfiguration(serverCMD, "server.isLive", "is-live", "IS_LIVE", false, "Exclude test accounts from judge listings")
	configCMD.SetupStringConfiguration(serverCMD, "server.emailDomain", "email-domain", "EMAIL_DOMAIN", "", "Domain new usernames are allocated under")
	configCMD.SetupStringConfiguration(serverCMD, "server.testUserPassword", "test-user-password", "TEST_USER_PASSWORD", "", "Fixed password for test accounts")
	configCMD.SetupStringConfiguration(serverCMD, "server.groups.judge", "judge-group-id", "JUDGE_GROUP_ID", "", "Object id of the judge group")
	configCMD.SetupStringConfiguration(serverCMD, "server.groups.testAccount", "test-account-group-id", "TEST_ACCOUNT_GROUP_ID", "", "Object id of the test account group")
	configCMD.SetupStringConfiguration(serverCMD, "server.redis.address", "redis-address", "REDIS_ADDRESS", "", "Redis address for the group cache, empty disables caching")
	configCMD.SetupStringConfiguration(serverCMD, "server.redis.password", "redis-password", "REDIS_PASSWORD", "", "Redis password for the group cache")

	viper.BindEnv("server.azure.tenantId", "AZURE_TENANT_ID")
	viper.BindEnv("server.azure.clientId", "AZURE_CLIENT_ID")
	viper.BindEnv("server.azure.clientSecret", "AZURE_CLIENT_SECRET")
}
