package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/internal/domains/task/model"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
)

const (
	queryInsert = `INSERT INTO tasks (description, completed) VALUES (:description, :completed) RETURNING id`
	// completed is nullable in the schema, a NULL reads as not completed.
	queryGetAll       = `SELECT id, description, COALESCE(completed, FALSE) AS completed FROM tasks ORDER BY id DESC`
	queryGetForUpdate = `SELECT id, description, COALESCE(completed, FALSE) AS completed FROM tasks WHERE id = $1 FOR UPDATE`
	queryUpdateStatus = `UPDATE tasks SET completed = $1 WHERE id = $2`
	queryDelete       = `DELETE FROM tasks WHERE id = $1`
)

type Task interface {
	Insert(ctx context.Context, task model.Task) (int64, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	ToggleCompleted(ctx context.Context, id int64) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, task model.Task) (id int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.Insert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryInsert)

	err = repo.db.Acquire(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		query, args, err := sqlx.Named(queryInsert, task)
		if err != nil {
			return fmt.Errorf("binding insert: %w", err)
		}

		return conn.GetContext(ctx, &id, conn.Rebind(query), args...)
	})
	if err != nil {
		return 0, repo.fail(scope, "insert data", err)
	}

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)

	return id, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) (tasks []model.Task, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.GetAll")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryGetAll)

	err = repo.db.Acquire(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &tasks, queryGetAll)
	})
	if err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return tasks, nil
}

// ToggleCompleted flips the completion flag of one task. The row is locked
// between the read and the write so concurrent toggles apply one after the
// other.
func (repo *repositoryImpl) ToggleCompleted(ctx context.Context, id int64) (task model.Task, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.ToggleCompleted")
	defer scope.End()

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)

	err = repo.db.Transact(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var current model.Task

		err := tx.GetContext(ctx, &current, queryGetForUpdate, id)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(id)
		}

		if err != nil {
			return err
		}

		task = current.Toggled()

		_, err = tx.ExecContext(ctx, queryUpdateStatus, task.Completed, id)

		return err
	})
	if err != nil {
		return model.Task{}, repo.fail(scope, "toggle data", err)
	}

	return task, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".task.Delete")
	defer scope.End()

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)
	scope.SetAttribute(constant.OtelQueryAttributeKey, queryDelete)

	err := repo.db.Acquire(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		result, err := conn.ExecContext(ctx, queryDelete, id)
		if err != nil {
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if affected == 0 {
			return notFound(id)
		}

		return nil
	})
	if err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

func (repo *repositoryImpl) fail(scope otel.Scope, op string, err error) error {
	err = postgres.Classify(err)

	scope.TraceError(err)

	// Expected outcomes are logged once, by kind, in the service.
	if !failure.IsNotFound(err) && !failure.IsUnavailable(err) {
		logger.ErrorWithStack(err)
	}

	return fmt.Errorf("failed to %s (%s): %w", op, model.EntityName, err)
}

func notFound(id int64) error {
	return failure.NotFound(fmt.Sprintf("%s %d not found", model.EntityName, id))
}
