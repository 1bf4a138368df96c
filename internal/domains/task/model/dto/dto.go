package dto

import (
	"net/http"

	"todolist/internal/domains/task/model"
	"todolist/shared/constant"
)

type CreateTaskRequest struct {
	Description string `form:"description" validate:"required"`
}

// FromRequest reads the form field posted by the listing page.
func (c *CreateTaskRequest) FromRequest(r *http.Request) {
	c.Description = r.PostFormValue(constant.FormFieldDesc)
}

func (c *CreateTaskRequest) ToModel() model.Task {
	return model.Task{
		Description: c.Description,
		Completed:   false,
	}
}

type TaskResponse struct {
	ID          int64
	Description string
	Completed   bool
}

func (r *TaskResponse) FromModel(model model.Task) {
	r.ID = model.ID
	r.Description = model.Description
	r.Completed = model.Completed
}

type GetTasksResponse struct {
	Tasks []TaskResponse
	// ReadFailed is set when the list is empty because it could not be read
	// rather than because there are no tasks. Unavailable narrows it to a
	// database that could not be reached.
	ReadFailed  bool
	Unavailable bool
}

func (r *GetTasksResponse) FromModels(models []model.Task) {
	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
