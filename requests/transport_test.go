package requests_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/Wheremykidsat/WMK-API/requests"
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

		assertStoreExpectations = func() {
			It("should call the store as expected", func() {
				mockStore.AssertExpectations(GinkgoT())
			})
		}
	)

	BeforeEach(func() {
		mockStore = &mocks.MockStore{}
		logger := shared.NewLogger("wheremykidsat-test")

		requestService := &RequestService{
			Store:  mockStore,
			Logger: logger,
		}

		opts := []kithttp.ServerOption{
			kithttp.ServerErrorLogger(logger),
			kithttp.ServerErrorEncoder(EncodeError),
		}
		handlerFactory := &HandlerFactory{Service: requestService}

		router = mux.NewRouter()
		router.Handle("/leave-requests", handlerFactory.CreateLeave(opts)).Methods(http.MethodPost)
		router.Handle("/leave-requests", handlerFactory.ListLeave(opts)).Methods(http.MethodGet)
		router.Handle("/leave-requests/{requestId}/approve", handlerFactory.ApproveLeave(opts)).Methods(http.MethodPost)
		router.Handle("/leave-requests/{requestId}/reject", handlerFactory.RejectLeave(opts)).Methods(http.MethodPost)
		router.Handle("/medicine-requests", handlerFactory.CreateMedicine(opts)).Methods(http.MethodPost)
		router.Handle("/medicine-requests", handlerFactory.ListMedicine(opts)).Methods(http.MethodGet)
		router.Handle("/medicine-requests/{requestId}/confirm", handlerFactory.ConfirmMedicine(opts)).Methods(http.MethodPost)

		recorder = httptest.NewRecorder()
		httpBodyToUse = ""
	})

	JustBeforeEach(func() {
		reqToUse, err := http.NewRequest(httpMethodToUse, httpEndpointToUse, strings.NewReader(httpBodyToUse))
		Expect(err).NotTo(HaveOccurred())
		router.ServeHTTP(recorder, reqToUse)
	})

	Describe("POST /leave-requests", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests"
				httpBodyToUse = `{"child_id":"c1","date":"2024-01-01","reason":"fever"}`

				mockStore.On("AddLeaveRequest", mock.Anything, mock.MatchedBy(func(r store.LeaveRequest) bool {
					return r.Date == "2024-01-01" && r.Status == store.STATUS_PENDING
				})).Return("64a000000000000000000001", nil)
			})

			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"id":"64a000000000000000000001"}`)
			assertStoreExpectations()
		})

		Context("when the payload keeps an explicit status", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests"
				httpBodyToUse = `{"date":"2024-01-01","status":"approved"}`

				mockStore.On("AddLeaveRequest", mock.Anything, mock.MatchedBy(func(r store.LeaveRequest) bool {
					return r.Status == store.STATUS_APPROVED
				})).Return("64a000000000000000000002", nil)
			})

			assertHttpCode(http.StatusCreated)
		})

		Context("when date is missing", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests"
				httpBodyToUse = `{"child_id":"c1"}`
			})

			assertHttpCode(http.StatusBadRequest)
			assertJsonResponse(`{"error":"invalid payload: date"}`)
		})
	})

	Describe("GET /leave-requests", func() {

		Context("when filtering by child and status", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/leave-requests?child_id=c1&status=approved&limit=2"

				id1, _ := primitive.ObjectIDFromHex("64a000000000000000000001")
				childId := "c1"
				note := "ok"
				mockStore.On("ListLeaveRequests", mock.Anything,
					store.Filter{"child_id": "c1", "status": "approved"},
					int64(2),
				).Return([]store.LeaveRequest{{
					ID:          id1,
					ChildId:     &childId,
					Date:        "2024-01-01",
					Status:      store.STATUS_APPROVED,
					TeacherNote: &note,
				}}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[{
				"id":"64a000000000000000000001",
				"child_id":"c1",
				"date":"2024-01-01",
				"reason":null,
				"status":"approved",
				"teacher_note":"ok"
			}]`)
			assertStoreExpectations()
		})

		Context("without filters, the default limit applies", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/leave-requests"

				mockStore.On("ListLeaveRequests", mock.Anything, store.Filter{}, int64(50)).
					Return([]store.LeaveRequest{}, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`[]`)
			assertStoreExpectations()
		})

		Context("when limit is not a number", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodGet
				httpEndpointToUse = "/leave-requests?limit=abc"
			})

			assertHttpCode(http.StatusBadRequest)
		})
	})

	Describe("POST /leave-requests/{requestId}/approve", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/64a000000000000000000001/approve?note=ok"

				mockStore.On("ApproveLeaveRequest", mock.Anything, "64a000000000000000000001",
					mock.MatchedBy(func(note *string) bool {
						return note != nil && *note == "ok"
					})).Return(nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{"status":"approved"}`)
			assertStoreExpectations()
		})

		Context("when the note is omitted", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/64a000000000000000000001/approve"

				mockStore.On("ApproveLeaveRequest", mock.Anything, "64a000000000000000000001",
					(*string)(nil)).Return(nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{"status":"approved"}`)
			assertStoreExpectations()
		})

		Context("when the request does not exist", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/64a000000000000000000009/approve"

				mockStore.On("ApproveLeaveRequest", mock.Anything, "64a000000000000000000009",
					(*string)(nil)).Return(store.ErrRequestNotFound)
			})

			assertHttpCode(http.StatusNotFound)
		})

		Context("when the identifier is malformed", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/not-an-id/approve"

				mockStore.On("ApproveLeaveRequest", mock.Anything, "not-an-id",
					(*string)(nil)).Return(store.ErrInvalidRequestId)
			})

			assertHttpCode(http.StatusBadRequest)
		})
	})

	Describe("POST /leave-requests/{requestId}/reject", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/64a000000000000000000001/reject?note=sorry"

				mockStore.On("RejectLeaveRequest", mock.Anything, "64a000000000000000000001",
					mock.MatchedBy(func(note *string) bool {
						return note != nil && *note == "sorry"
					})).Return(nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{"status":"rejected"}`)
			assertStoreExpectations()
		})

		Context("when the request does not exist", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/leave-requests/64a000000000000000000009/reject"

				mockStore.On("RejectLeaveRequest", mock.Anything, "64a000000000000000000009",
					(*string)(nil)).Return(store.ErrRequestNotFound)
			})

			assertHttpCode(http.StatusNotFound)
		})
	})

	Describe("POST /medicine-requests", func() {

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/medicine-requests"
				httpBodyToUse = `{"child_id":"c1","drug_name":"paracetamol","dosage":"5ml"}`

				mockStore.On("AddMedicineRequest", mock.Anything, mock.MatchedBy(func(r store.MedicineRequest) bool {
					return r.DrugName == "paracetamol" && r.Status == store.STATUS_PENDING
				})).Return("64a000000000000000000003", nil)
			})

			assertHttpCode(http.StatusCreated)
			assertJsonResponse(`{"id":"64a000000000000000000003"}`)
			assertStoreExpectations()
		})

		Context("when dosage is missing", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/medicine-requests"
				httpBodyToUse = `{"drug_name":"paracetamol"}`
			})

			assertHttpCode(http.StatusBadRequest)
			assertJsonResponse(`{"error":"invalid payload: dosage"}`)
		})
	})

	Describe("POST /medicine-requests/{requestId}/confirm", func() {

		confirmedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

		Context("default case", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/medicine-requests/64a000000000000000000003/confirm?teacher=Miss+Laura"

				mockStore.On("ConfirmMedicineRequest", mock.Anything, "64a000000000000000000003",
					mock.MatchedBy(func(teacher *string) bool {
						return teacher != nil && *teacher == "Miss Laura"
					})).Return(confirmedAt, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{"status":"confirmed","confirmed_at":"2024-01-02T03:04:05Z"}`)
			assertStoreExpectations()
		})

		Context("when the teacher is omitted", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/medicine-requests/64a000000000000000000003/confirm"

				mockStore.On("ConfirmMedicineRequest", mock.Anything, "64a000000000000000000003",
					(*string)(nil)).Return(confirmedAt, nil)
			})

			assertHttpCode(http.StatusOK)
			assertJsonResponse(`{"status":"confirmed","confirmed_at":"2024-01-02T03:04:05Z"}`)
		})

		Context("when the request does not exist", func() {
			BeforeEach(func() {
				httpMethodToUse = http.MethodPost
				httpEndpointToUse = "/medicine-requests/64a000000000000000000009/confirm"

				mockStore.On("ConfirmMedicineRequest", mock.Anything, "64a000000000000000000009",
					(*string)(nil)).Return(time.Time{}, store.ErrRequestNotFound)
			})

			assertHttpCode(http.StatusNotFound)
		})
	})
})
