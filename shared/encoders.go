package shared

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

func EncodeResponse200(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response)
}

func EncodeResponse201(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	return json.NewEncoder(w).Encode(response)
}
