package task

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todolist/infras/otel"
	"todolist/internal/domains/task/model/dto"
	"todolist/internal/domains/task/service"
	"todolist/internal/views"
	"todolist/shared/constant"
	"todolist/shared/failure"
	"todolist/shared/logger"
	"todolist/shared/validator"
	"todolist/transport/http/response"
)

type Handler struct {
	service  service.Task
	renderer views.Renderer
	otel     otel.Otel
}

func New(service service.Task, renderer views.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		renderer: renderer,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get(constant.RouteIndex, handler.ListTasks)
	router.Post(constant.RouteAdd, handler.AddTask)
	router.Post(constant.RouteComplete, handler.CompleteTask)
	router.Post(constant.RouteDelete, handler.DeleteTask)
}

// ListTasks renders every task, newest first. A failed read still renders
// the page with an empty list.
func (handler *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListTasks")
	defer scope.End()

	tasks, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Bool("readFailed", tasks.ReadFailed).Bool("unavailable", tasks.Unavailable).Msg("rendering empty task list")
	}

	var page bytes.Buffer
	if err := handler.renderer.Index(&page, tasks); err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)

		response.WithError(w, failure.InternalError(err))

		return
	}

	scope.SetAttribute("tasks.count", len(tasks.Tasks))

	response.WithHTML(w, http.StatusOK, page.Bytes())
}

// AddTask creates a task from the posted description. An empty description
// creates nothing. The browser is always sent back to the list.
func (handler *Handler) AddTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddTask")
	defer scope.End()
	defer response.WithRedirect(w, r, constant.RouteIndex)

	req := dto.CreateTaskRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		logger.Failure(err, "failed to validate task form")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)

		return
	}

	scope.AddEvent("Task created successfully")
}

// CompleteTask flips the completion flag of the task in the path.
func (handler *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteTask")
	defer scope.End()
	defer response.WithRedirect(w, r, constant.RouteIndex)

	id, err := taskID(r)
	if err != nil {
		scope.TraceError(err)
		logger.Failure(err, "invalid task id")

		return
	}

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)

	task, err := handler.service.ToggleCompleted(ctx, id)
	if err != nil {
		scope.TraceError(err)

		return
	}

	scope.AddEvent("Task toggled to completed=" + strconv.FormatBool(task.Completed))
}

// DeleteTask removes the task in the path if it exists.
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()
	defer response.WithRedirect(w, r, constant.RouteIndex)

	id, err := taskID(r)
	if err != nil {
		scope.TraceError(err)
		logger.Failure(err, "invalid task id")

		return
	}

	scope.SetAttribute(constant.OtelTaskIDAttribute, id)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)

		return
	}

	scope.AddEvent("Task deleted successfully")
}

// taskID parses the id path parameter. The route pattern only admits
// digits, so the remaining failure is an overflowing value.
func taskID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequest(err)
	}

	return id, nil
}
