package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/Wheremykidsat/WMK-API/album"
	"github.com/Wheremykidsat/WMK-API/children"
	"github.com/Wheremykidsat/WMK-API/dailylogs"
	"github.com/Wheremykidsat/WMK-API/messages"
	"github.com/Wheremykidsat/WMK-API/notifications"
	"github.com/Wheremykidsat/WMK-API/pickupcodes"
	"github.com/Wheremykidsat/WMK-API/requests"
	. "github.com/Wheremykidsat/WMK-API/shared"
	. "github.com/Wheremykidsat/WMK-API/store"
	"github.com/Wheremykidsat/WMK-API/users"

	"github.com/facebookgo/inject"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ctx    = context.Background()
	logger = NewLogger("wheremykidsat")
	config *AppConfig
	db     *mongo.Database

	userService         = &users.UserService{}
	childService        = &children.ChildService{}
	messageService      = &messages.MessageService{}
	dailyLogService     = &dailylogs.DailyLogService{}
	requestService      = &requests.RequestService{}
	albumService        = &album.AlbumService{}
	notificationService = &notifications.NotificationService{}
	pickupCodeService   = &pickupcodes.PickupCodeService{}

	userHandlerFactory         = &users.HandlerFactory{}
	childrenHandlerFactory     = &children.HandlerFactory{}
	messageHandlerFactory      = &messages.HandlerFactory{}
	dailyLogHandlerFactory     = &dailylogs.HandlerFactory{}
	requestHandlerFactory      = &requests.HandlerFactory{}
	albumHandlerFactory        = &album.HandlerFactory{}
	notificationHandlerFactory = &notifications.HandlerFactory{}
	pickupCodeHandlerFactory   = &pickupcodes.HandlerFactory{}

	dbStore = &Store{}
)

func init() {
	checkErrAndExit(initAppConfiguration())
	checkErrAndExit(initMongoConnection())
	checkErrAndExit(initApplicationGraph())
}

func initAppConfiguration() (err error) {
	config, err = InitAppConfiguration()
	return
}

func initMongoConnection() (err error) {
	db, err = Connect(ctx, config.MongoUri, config.MongoDbName)
	return
}

func initApplicationGraph() error {
	g := inject.Graph{}
	g.Provide(
		&inject.Object{Value: config},
		&inject.Object{Value: userService},
		&inject.Object{Value: childService},
		&inject.Object{Value: messageService},
		&inject.Object{Value: dailyLogService},
		&inject.Object{Value: requestService},
		&inject.Object{Value: albumService},
		&inject.Object{Value: notificationService},
		&inject.Object{Value: pickupCodeService},
		&inject.Object{Value: userHandlerFactory},
		&inject.Object{Value: childrenHandlerFactory},
		&inject.Object{Value: messageHandlerFactory},
		&inject.Object{Value: dailyLogHandlerFactory},
		&inject.Object{Value: requestHandlerFactory},
		&inject.Object{Value: albumHandlerFactory},
		&inject.Object{Value: notificationHandlerFactory},
		&inject.Object{Value: pickupCodeHandlerFactory},
		&inject.Object{Value: db},
		&inject.Object{Value: dbStore},
		&inject.Object{Value: logger},
	)
	if err := g.Populate(); err != nil {
		return errors.Wrap(err, "failed to populate")
	}
	return nil
}

func main() {
	startHttpServer(ctx)
}

func startHttpServer(ctx context.Context) {
	userOpts := serverOptions(users.EncodeError)
	childrenOpts := serverOptions(children.EncodeError)
	messageOpts := serverOptions(messages.EncodeError)
	dailyLogOpts := serverOptions(dailylogs.EncodeError)
	requestOpts := serverOptions(requests.EncodeError)
	albumOpts := serverOptions(album.EncodeError)
	notificationOpts := serverOptions(notifications.EncodeError)
	pickupCodeOpts := serverOptions(pickupcodes.EncodeError)

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, map[string]string{"name": "Wheremykidsat API", "status": "ok"}, http.StatusOK)
	}).Methods(http.MethodGet)

	router.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, dbStore.Diagnose(r.Context()), http.StatusOK)
	}).Methods(http.MethodGet)

	router.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)

	router.Handle("/parents", userHandlerFactory.CreateParent(userOpts)).Methods(http.MethodPost)
	router.Handle("/parents", userHandlerFactory.ListParents(userOpts)).Methods(http.MethodGet)
	router.Handle("/teachers", userHandlerFactory.CreateTeacher(userOpts)).Methods(http.MethodPost)
	router.Handle("/teachers", userHandlerFactory.ListTeachers(userOpts)).Methods(http.MethodGet)

	router.Handle("/children", childrenHandlerFactory.Create(childrenOpts)).Methods(http.MethodPost)
	router.Handle("/children", childrenHandlerFactory.List(childrenOpts)).Methods(http.MethodGet)

	router.Handle("/messages", messageHandlerFactory.Send(messageOpts)).Methods(http.MethodPost)
	router.Handle("/messages", messageHandlerFactory.List(messageOpts)).Methods(http.MethodGet)

	router.Handle("/logs", dailyLogHandlerFactory.Create(dailyLogOpts)).Methods(http.MethodPost)
	router.Handle("/logs", dailyLogHandlerFactory.List(dailyLogOpts)).Methods(http.MethodGet)

	router.Handle("/leave-requests", requestHandlerFactory.CreateLeave(requestOpts)).Methods(http.MethodPost)
	router.Handle("/leave-requests", requestHandlerFactory.ListLeave(requestOpts)).Methods(http.MethodGet)
	router.Handle("/leave-requests/{requestId}/approve", requestHandlerFactory.ApproveLeave(requestOpts)).Methods(http.MethodPost)
	router.Handle("/leave-requests/{requestId}/reject", requestHandlerFactory.RejectLeave(requestOpts)).Methods(http.MethodPost)

	router.Handle("/medicine-requests", requestHandlerFactory.CreateMedicine(requestOpts)).Methods(http.MethodPost)
	router.Handle("/medicine-requests", requestHandlerFactory.ListMedicine(requestOpts)).Methods(http.MethodGet)
	router.Handle("/medicine-requests/{requestId}/confirm", requestHandlerFactory.ConfirmMedicine(requestOpts)).Methods(http.MethodPost)

	router.Handle("/album", albumHandlerFactory.Upload(albumOpts)).Methods(http.MethodPost)
	router.Handle("/album", albumHandlerFactory.List(albumOpts)).Methods(http.MethodGet)

	router.Handle("/notifications", notificationHandlerFactory.Create(notificationOpts)).Methods(http.MethodPost)
	router.Handle("/notifications", notificationHandlerFactory.List(notificationOpts)).Methods(http.MethodGet)

	router.Handle("/pickup-codes", pickupCodeHandlerFactory.Create(pickupCodeOpts)).Methods(http.MethodPost)
	router.Handle("/pickup-codes", pickupCodeHandlerFactory.List(pickupCodeOpts)).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins(config.CorsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	checkErrAndExit(http.ListenAndServe("0.0.0.0:"+config.ListenPort,
		logger.RequestLoggerMiddleware(
			MetricsMiddleware(
				cors(router),
			),
		),
	))
}

func serverOptions(encodeError kithttp.ErrorEncoder) []kithttp.ServerOption {
	return []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(encodeError),
	}
}

func checkErrAndExit(err error) {
	if err == nil {
		return
	}
	fmt.Println(err.Error())
	os.Exit(1)
}
