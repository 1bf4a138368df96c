package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Task=MockTaskService

import (
	"context"
	"fmt"

	"todolist/infras/otel"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/repository"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
)

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) error
	GetAll(ctx context.Context) (dto.GetTasksResponse, error)
	ToggleCompleted(ctx context.Context, id int64) (dto.TaskResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.Task
	otel otel.Otel
}

func New(repo repository.Task, otel otel.Otel) Task {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.Failure(err, "failed to create task")

		return fmt.Errorf("failed to create task: %w", err)
	}

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)

	return nil
}

// GetAll lists every task, newest first. When the list cannot be read the
// response is empty and flagged ReadFailed, and also Unavailable if the
// database was unreachable.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Failure(err, "failed to get tasks")

		res.FromModels(nil)
		res.ReadFailed = true
		res.Unavailable = failure.IsUnavailable(err)

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) ToggleCompleted(ctx context.Context, id int64) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleCompleted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	task, err := s.repo.ToggleCompleted(ctx, id)
	if err != nil {
		logger.Failure(err, "failed to toggle task")

		return res, fmt.Errorf("failed to toggle task: %w", err)
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.Failure(err, "failed to delete task")

		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
