package users_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"
	"github.com/Wheremykidsat/WMK-API/store/mocks"
	. "github.com/Wheremykidsat/WMK-API/users"

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

		userService := &UserService{
			Store:  mockStore,
			Logger: logger,
		}

		opts := []kithttp.ServerOption{
			kithttp.ServerErrorLogger(logger),
			kithttp.ServerErrorEncoder(EncodeError),
		}
		handlerFactory := &HandlerFactory{Service: userService}

		router = mux.NewRouter()
		router.Handle("/parents", handlerFactory.CreateParent(opts)).Methods(http.MethodPost)
		router.Handle("/parents", handlerFactory.ListParents(opts)).Methods(http.MethodGet)
		router.Handle("/teachers", handlerFactory.CreateTeacher(opts)).Methods(http.MethodPost)
		router.Handle("/teachers", handlerFactory.ListTeachers(opts)).Methods(http.MethodGet)

		recorder = httptest.NewRecorder()
		httpBodyToUse = ""
	})

	JustBeforeEach(func() {
		reqToUse, err := http.NewRequest(httpMethodToUse, httpEndpointToUse, strings.NewReader(httpBodyToUse))
		Expect(err).NotTo(HaveOccurred())
		router.ServeHTTP(recorder, reqToUse)
	})

	Describe("POST /parents", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/parents"
				httpBodyToUse = `{"name":"Ana","email":"ana@example.com","phone":"123"}`

				mockStore.On("AddParent", mock.Anything, mock.MatchedBy(func(p store.Parent) bool {
					return p.Name == "Ana" && p.Email == "ana@example.com" &&
						p.Phone != nil && *p.Phone == "123" && p.AvatarUrl == nil
				})).Return("64a000000000000000000001", nil)
			})

			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"id":"64a000000000000000000001"}`)
		})

		Context("when email is missing", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/parents"
				httpBodyToUse = `{"name":"Ana"}`
			})

			assertHttpCode(http.StatusBadRequest)
			assertJsonResponse(`{"error":"invalid payload: email"}`)
		})

		Context("when the body is not json", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/parents"
				httpBodyToUse = `{not json`
			})

			assertHttpCode(http.StatusBadRequest)
		})
	})

	Describe("GET /parents", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/parents"

				id1, _ := primitive.ObjectIDFromHex("64a000000000000000000001")
				mockStore.On("ListParents", mock.Anything, store.Filter{}, int64(100)).
					Return([]store.Parent{{
						ID:    id1,
						Name:  "Ana",
						Email: "ana@example.com",
					}}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[{
				"id":"64a000000000000000000001",
				"name":"Ana",
				"email":"ana@example.com",
				"phone":null,
				"avatar_url":null
			}]`)
		})
	})

	Describe("POST /teachers", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/teachers"
				httpBodyToUse = `{"name":"Laura","email":"laura@example.com","class_id":"k1"}`

				mockStore.On("AddTeacher", mock.Anything, mock.MatchedBy(func(t store.Teacher) bool {
					return t.Name == "Laura" && t.ClassId != nil && *t.ClassId == "k1"
				})).Return("64a000000000000000000002", nil)
			})

			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"id":"64a000000000000000000002"}`)
		})
	})

	Describe("GET /teachers", func() {

		Context("with an explicit limit", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/teachers?limit=5"

				mockStore.On("ListTeachers", mock.Anything, store.Filter{}, int64(5)).
					Return([]store.Teacher{}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[]`)
		})
	})
})
