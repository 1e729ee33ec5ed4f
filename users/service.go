package users

import (
	"context"

	"github.com/Wheremykidsat/WMK-API/shared"
	"github.com/Wheremykidsat/WMK-API/store"

	"github.com/pkg/errors"
)

type Service interface {
	AddParent(ctx context.Context, parent store.Parent) (string, error)
	ListParents(ctx context.Context, limit int64) ([]store.Parent, error)
	AddTeacher(ctx context.Context, teacher store.Teacher) (string, error)
	ListTeachers(ctx context.Context, limit int64) ([]store.Teacher, error)
}

type UserService struct {
	Store interface {
		AddParent(ctx context.Context, parent store.Parent) (string, error)
		ListParents(ctx context.Context, filter store.Filter, limit int64) ([]store.Parent, error)
		AddTeacher(ctx context.Context, teacher store.Teacher) (string, error)
		ListTeachers(ctx context.Context, filter store.Filter, limit int64) ([]store.Teacher, error)
	} `inject:""`
	Logger *shared.Logger `inject:""`
}

func (c *UserService) AddParent(ctx context.Context, parent store.Parent) (string, error) {
	if err := shared.ValidatePayload(parent); err != nil {
		return "", err
	}
	id, err := c.Store.AddParent(ctx, parent)
	if err != nil {
		return "", errors.Wrap(err, "failed to add parent")
	}
	return id, nil
}

func (c *UserService) ListParents(ctx context.Context, limit int64) ([]store.Parent, error) {
	parents, err := c.Store.ListParents(ctx, store.Filter{}, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parents")
	}
	return parents, nil
}

func (c *UserService) AddTeacher(ctx context.Context, teacher store.Teacher) (string, error) {
	if err := shared.ValidatePayload(teacher); err != nil {
		return "", err
	}
	id, err := c.Store.AddTeacher(ctx, teacher)
	if err != nil {
		return "", errors.Wrap(err, "failed to add teacher")
	}
	return id, nil
}

func (c *UserService) ListTeachers(ctx context.Context, limit int64) ([]store.Teacher, error) {
	teachers, err := c.Store.ListTeachers(ctx, store.Filter{}, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}
	return teachers, nil
}
