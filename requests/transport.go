package requests

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const defaultListLimit = 50

var (
	ErrBadRouting = errors.New("inconsistent mapping between route and handler (programmer error)")
)

type createdResponse struct {
	Id string `json:"id"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type confirmedResponse struct {
	Status      string    `json:"status"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type listRequest struct {
	ChildId *string
	Status  *string
	Limit   int64
}

type updateRequest struct {
	Id   string
	Note *string
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) CreateLeave(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateLeaveEndpoint(h.Service),
		decodeLeaveRequestPayload,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListLeave(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListLeaveEndpoint(h.Service),
		decodeListRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) ApproveLeave(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeApproveLeaveEndpoint(h.Service),
		decodeNoteUpdateRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) RejectLeave(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeRejectLeaveEndpoint(h.Service),
		decodeNoteUpdateRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) CreateMedicine(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateMedicineEndpoint(h.Service),
		decodeMedicineRequestPayload,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListMedicine(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListMedicineEndpoint(h.Service),
		decodeListRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) ConfirmMedicine(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeConfirmMedicineEndpoint(h.Service),
		decodeTeacherUpdateRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeCreateLeaveEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(store.LeaveRequest)
		id, err := svc.AddLeaveRequest(ctx, req)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListLeaveEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListLeaveRequests(ctx, req.ChildId, req.Status, req.Limit)
	}
}

func makeApproveLeaveEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateRequest)
		if err := svc.ApproveLeaveRequest(ctx, req.Id, req.Note); err != nil {
			return nil, err
		}
		return statusResponse{Status: store.STATUS_APPROVED}, nil
	}
}

func makeRejectLeaveEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateRequest)
		if err := svc.RejectLeaveRequest(ctx, req.Id, req.Note); err != nil {
			return nil, err
		}
		return statusResponse{Status: store.STATUS_REJECTED}, nil
	}
}

func makeCreateMedicineEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(store.MedicineRequest)
		id, err := svc.AddMedicineRequest(ctx, req)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListMedicineEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListMedicineRequests(ctx, req.ChildId, req.Status, req.Limit)
	}
}

func makeConfirmMedicineEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateRequest)
		confirmedAt, err := svc.ConfirmMedicineRequest(ctx, req.Id, req.Note)
		if err != nil {
			return nil, err
		}
		return confirmedResponse{Status: store.STATUS_CONFIRMED, ConfirmedAt: confirmedAt}, nil
	}
}

func decodeLeaveRequestPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.LeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeMedicineRequestPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.MedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeListRequest(_ context.Context, r *http.Request) (interface{}, error) {
	limit, err := shared.ParseLimit(r, defaultListLimit)
	if err != nil {
		return nil, err
	}
	return listRequest{
		ChildId: shared.OptionalQueryParam(r, "child_id"),
		Status:  shared.OptionalQueryParam(r, "status"),
		Limit:   limit,
	}, nil
}

func decodeNoteUpdateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return decodeUpdateRequest(r, "note")
}

func decodeTeacherUpdateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	return decodeUpdateRequest(r, "teacher")
}

func decodeUpdateRequest(r *http.Request, param string) (interface{}, error) {
	vars := mux.Vars(r)
	requestId, ok := vars["requestId"]
	if !ok {
		return nil, ErrBadRouting
	}
	return updateRequest{
		Id:   requestId,
		Note: shared.OptionalQueryParam(r, param),
	}, nil
}

// encode errors from business-logic
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	cause := errors.Cause(err)
	switch cause.(type) {
	case *shared.ValidationError, *json.SyntaxError, *json.UnmarshalTypeError:
		w.WriteHeader(http.StatusBadRequest)
	default:
		switch cause {
		case shared.ErrInvalidLimit, store.ErrInvalidRequestId:
			w.WriteHeader(http.StatusBadRequest)
		case store.ErrRequestNotFound:
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
