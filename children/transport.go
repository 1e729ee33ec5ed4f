package children

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
	ParentId *string
	ClassId  *string
	Limit    int64
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Create(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateEndpoint(h.Service),
		decodeChildPayload,
		shared.EncodeResponse201,
		opts...,
	)
}

func (h *HandlerFactory) List(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeListEndpoint(h.Service),
		decodeListRequest,
		shared.EncodeResponse200,
		opts...,
	)
}

func makeCreateEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		child := request.(store.Child)
		id, err := svc.AddChild(ctx, child)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListChildren(ctx, req.ParentId, req.ClassId, req.Limit)
	}
}

func decodeChildPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.Child
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
		ParentId: shared.OptionalQueryParam(r, "parent_id"),
		ClassId:  shared.OptionalQueryParam(r, "class_id"),
		Limit:    limit,
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
