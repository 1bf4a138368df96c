package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todolist/infras/otel/mocks"
	taskMocks "todolist/internal/domains/task/mocks"
	"todolist/internal/domains/task/model"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/service"
	"todolist/shared/failure"
)

func TestTaskService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := taskMocks.NewMockTask(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateTaskRequest
		setupMock func()
		check     func(t *testing.T, err error)
	}{
		{
			name: "successful creation",
			req:  dto.CreateTaskRequest{Description: "Buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Task{Description: "Buy milk", Completed: false}).
					Return(int64(1), nil)
			},
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "database unavailable",
			req:  dto.CreateTaskRequest{Description: "Buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), failure.ErrDatabaseUnavailable)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsUnavailable(err), "got %v", err)
			},
		},
		{
			name: "repository error",
			req:  dto.CreateTaskRequest{Description: "Buy milk"},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			check: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			tt.check(t, svc.Create(context.Background(), tt.req))
		})
	}
}

func TestTaskService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := taskMocks.NewMockTask(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name            string
		setupMock       func()
		wantErr         bool
		wantTasks       []dto.TaskResponse
		wantReadFailed  bool
		wantUnavailable bool
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Task{
						{ID: 2, Description: "Tarea completada", Completed: true},
						{ID: 1, Description: "Tarea de prueba"},
					}, nil)
			},
			wantTasks: []dto.TaskResponse{
				{ID: 2, Description: "Tarea completada", Completed: true},
				{ID: 1, Description: "Tarea de prueba"},
			},
		},
		{
			name: "no tasks",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
			},
			wantTasks: []dto.TaskResponse{},
		},
		{
			name: "database unavailable is flagged",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, failure.ErrDatabaseUnavailable)
			},
			wantErr:         true,
			wantTasks:       []dto.TaskResponse{},
			wantReadFailed:  true,
			wantUnavailable: true,
		},
		{
			name: "schema missing is not flagged unavailable",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any()).
					Return(nil, failure.SchemaMissing(errors.New(`relation "tasks" does not exist`)))
			},
			wantErr:        true,
			wantTasks:      []dto.TaskResponse{},
			wantReadFailed: true,
		},
		{
			name: "internal error is flagged as a failed read",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr:        true,
			wantTasks:      []dto.TaskResponse{},
			wantReadFailed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantTasks, result.Tasks)
			assert.Equal(t, tt.wantReadFailed, result.ReadFailed)
			assert.Equal(t, tt.wantUnavailable, result.Unavailable)
		})
	}
}

func TestTaskService_ToggleCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := taskMocks.NewMockTask(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful toggle", func(t *testing.T) {
		mockRepo.EXPECT().
			ToggleCompleted(gomock.Any(), int64(1)).
			Return(model.Task{ID: 1, Description: "Buy milk", Completed: true}, nil)

		res, err := svc.ToggleCompleted(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, dto.TaskResponse{ID: 1, Description: "Buy milk", Completed: true}, res)
	})

	t.Run("task not found", func(t *testing.T) {
		mockRepo.EXPECT().
			ToggleCompleted(gomock.Any(), int64(99)).
			Return(model.Task{}, failure.NotFound("task 99 not found"))

		_, err := svc.ToggleCompleted(context.Background(), 99)

		assert.True(t, failure.IsNotFound(err), "got %v", err)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := taskMocks.NewMockTask(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("successful delete", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 1))
	})

	t.Run("task not found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(failure.NotFound("task 2 not found"))

		err := svc.Delete(context.Background(), 2)

		assert.True(t, failure.IsNotFound(err), "got %v", err)
	})
}

// memoryRepository keeps tasks in a slice and follows the SQL semantics of
// the postgres repository.
type memoryRepository struct {
	mu     sync.Mutex
	nextID int64
	tasks  []model.Task
}

func (r *memoryRepository) Insert(_ context.Context, task model.Task) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	r.tasks = append(r.tasks, task)

	return task.ID, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := slices.Clone(r.tasks)
	slices.SortFunc(tasks, func(a, b model.Task) int {
		return int(b.ID - a.ID)
	})

	return tasks, nil
}

func (r *memoryRepository) ToggleCompleted(_ context.Context, id int64) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks[i] = r.tasks[i].Toggled()

			return r.tasks[i], nil
		}
	}

	return model.Task{}, failure.NotFound("task not found")
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = slices.Delete(r.tasks, i, i+1)

			return nil
		}
	}

	return failure.NotFound("task not found")
}

func TestTaskService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := service.New(&memoryRepository{}, mocks.NewOtel())

	require.NoError(t, svc.Create(ctx, dto.CreateTaskRequest{Description: "Buy milk"}))

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "Buy milk", list.Tasks[0].Description)
	assert.False(t, list.Tasks[0].Completed)

	id := list.Tasks[0].ID

	toggled, err := svc.ToggleCompleted(ctx, id)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = svc.ToggleCompleted(ctx, id)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	require.NoError(t, svc.Delete(ctx, id))

	list, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Tasks)

	assert.True(t, failure.IsNotFound(svc.Delete(ctx, id)))

	_, err = svc.ToggleCompleted(ctx, id)
	assert.True(t, failure.IsNotFound(err))
}

func TestTaskService_AddGrowsListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := service.New(&memoryRepository{}, mocks.NewOtel())

	descriptions := []string{"one", "two", "three", "  spaced  ", "ñandú"}

	for i, desc := range descriptions {
		require.NoError(t, svc.Create(ctx, dto.CreateTaskRequest{Description: desc}))

		list, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, list.Tasks, i+1)
		assert.Equal(t, desc, list.Tasks[0].Description)
	}
}

func TestTaskService_DeleteRemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	svc := service.New(&memoryRepository{}, mocks.NewOtel())

	for _, desc := range []string{"a", "b", "c"} {
		require.NoError(t, svc.Create(ctx, dto.CreateTaskRequest{Description: desc}))
	}

	require.NoError(t, svc.Delete(ctx, 2))

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)

	ids := make([]int64, 0, len(list.Tasks))
	for _, task := range list.Tasks {
		ids = append(ids, task.ID)
	}

	assert.Equal(t, []int64{3, 1}, ids)
}
