package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
)

const defaultListLimit = 100

type createdResponse struct {
	Id string `json:"id"`
}

type listRequest struct {
	Limit int64
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) CreateParent(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateParentEndpoint(h.Service),
		decodeParentPayload,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListParents(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListParentsEndpoint(h.Service),
		decodeListRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func (h *HandlerFactory) CreateTeacher(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateTeacherEndpoint(h.Service),
		decodeTeacherPayload,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) ListTeachers(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListTeachersEndpoint(h.Service),
		decodeListRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeCreateParentEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		parent := request.(store.Parent)
		id, err := svc.AddParent(ctx, parent)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListParentsEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListParents(ctx, req.Limit)
	}
}

func makeCreateTeacherEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		teacher := request.(store.Teacher)
		id, err := svc.AddTeacher(ctx, teacher)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListTeachersEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListTeachers(ctx, req.Limit)
	}
}

func decodeParentPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.Parent
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return nil, err
	}
	return request, nil
}

func decodeTeacherPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.Teacher
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
	return listRequest{Limit: limit}, nil
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
		case shared.ErrInvalidLimit:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}
