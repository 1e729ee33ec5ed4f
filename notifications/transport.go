package notifications

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
	ChildId *string
	Limit   int64
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Create(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeCreateEndpoint(h.Service),
		decodeNotificationPayload,
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
		notification := request.(store.Notification)
		id, err := svc.AddNotification(ctx, notification)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListNotifications(ctx, req.ChildId, req.Limit)
	}
}

func decodeNotificationPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.Notification
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
		Limit:   limit,
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
