package album

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
	ClassId *string
	Limit   int64
}

type HandlerFactory struct {
	Service Service `inject:""`
}

func (h *HandlerFactory) Upload(opts []kithttp.ServerOption) *kithttp.Server {
	return kithttp.NewServer(
		makeUploadEndpoint(h.Service),
		decodeAlbumItemPayload,
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

func makeUploadEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		item := request.(store.AlbumItem)
		id, err := svc.AddAlbumItem(ctx, item)
		if err != nil {
			return nil, err
		}
		return createdResponse{Id: id}, nil
	}
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listRequest)
		return svc.ListAlbumItems(ctx, req.ChildId, req.ClassId, req.Limit)
	}
}

func decodeAlbumItemPayload(_ context.Context, r *http.Request) (interface{}, error) {
	var request store.AlbumItem
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
		ClassId: shared.OptionalQueryParam(r, "class_id"),
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
