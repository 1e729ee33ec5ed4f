package dailylogs_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/Wheremykidsat/WMK-API/dailylogs"
	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"
	"github.com/Wheremykidsat/WMK-API/store/mocks"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ = Describe("Transport", func() {

	var (
		router    *mux.Router
		recorder  *httptest.ResponseRecorder
		mockStore *mocks.MockStore

		httpMethodToUse, httpEndpointToUse, httpBodyToUse string
	)

	var (
		assertHttpCode = func(code int) {
			It(fmt.Sprintf("should respond with status code %d", code), func() {
				Expect(recorder.Code).To(Equal(code))
			})
		}

		assertJsonResponse = func(response string) {
			It("should respond with json response", func() {
				Expect(recorder.Body.String()).To(MatchJSON(response))
			})
		}
	)

	BeforeEach(func() {
		mockStore = &mocks.MockStore{}
		logger := shared.NewLogger("wheremykidsat-test")

		dailyLogService := &DailyLogService{
			Store:  mockStore,
			Logger: logger,
		}

		opts := []kithttp.ServerOption{
			kithttp.ServerErrorLogger(logger),
			kithttp.ServerErrorEncoder(EncodeError),
		}
		handlerFactory := &HandlerFactory{Service: dailyLogService}

		router = mux.NewRouter()
		router.Handle("/logs", handlerFactory.Create(opts)).Methods(http.MethodPost)
		router.Handle("/logs", handlerFactory.List(opts)).Methods(http.MethodGet)

		recorder = httptest.NewRecorder()
		httpBodyToUse = ""
	})

	JustBeforeEach(func() {
		reqToUse, err := http.NewRequest(httpMethodToUse, httpEndpointToUse, strings.NewReader(httpBodyToUse))
		Expect(err).NotTo(HaveOccurred())
		router.ServeHTTP(recorder, reqToUse)
	})

	Describe("POST /logs", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/logs"
				httpBodyToUse = `{"child_id":"c1","date":"2024-01-01","activity":"nap"}`

				mockStore.On("AddDailyLog", mock.Anything, mock.MatchedBy(func(l store.DailyLog) bool {
					return l.Date == "2024-01-01" &&
						l.ChildId != nil && *l.ChildId == "c1" &&
						l.Activity != nil && *l.Activity == "nap"
				})).Return("64a000000000000000000001", nil)
			})

			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"id":"64a000000000000000000001"}`)
		})

		Context("when date is missing", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/logs"
				httpBodyToUse = `{"child_id":"c1"}`
			})

			assertHttpCode(http.StatusBadRequest)
			assertJsonResponse(`{"error":"invalid payload: date"}`)
		})
	})

	Describe("GET /logs", func() {

		Context("when filtering by child", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/logs?child_id=c1"

				id1, _ := primitive.ObjectIDFromHex("64a000000000000000000001")
				childId := "c1"
				activity := "nap"
				mockStore.On("ListDailyLogs", mock.Anything, store.Filter{"child_id": "c1"}, int64(30)).
					Return([]store.DailyLog{{
						ID:       id1,
						ChildId:  &childId,
						Date:     "2024-01-01",
						Activity: &activity,
					}}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[{
				"id":"64a000000000000000000001",
				"child_id":"c1",
				"date":"2024-01-01",
				"activity":"nap",
				"meals":null,
				"health":null,
				"notes":null
			}]`)
		})

		Context("when filtering by child and date", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/logs?child_id=c1&date=2024-01-01"

				mockStore.On("ListDailyLogs", mock.Anything,
					store.Filter{"child_id": "c1", "date": "2024-01-01"}, int64(30)).
					Return([]store.DailyLog{}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[]`)
		})
	})
})
