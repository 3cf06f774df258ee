package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactapp/backend/internal/domain"
	"github.com/contactapp/backend/internal/pkg/dbctx"
	"github.com/contactapp/backend/internal/pkg/logger"
	"github.com/contactapp/backend/internal/platform/apierr"
	"github.com/contactapp/backend/internal/services"
)

type TaskHandler struct {
	log         *logger.Logger
	taskService services.TaskService
}

func NewTaskHandler(log *logger.Logger, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		log:         log.With("handler", "TaskHandler"),
		taskService: taskService,
	}
}

type taskRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type taskResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toTaskResponse(task *domain.Task) taskResponse {
	return taskResponse{
		ID:          task.ID(),
		Name:        task.Name(),
		Description: task.Description(),
	}
}

// POST /api/v1/tasks
func (th *TaskHandler) Create(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	task, err := domain.NewTask(req.ID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := th.taskService.Add(dbctx.Context{Ctx: c.Request.Context()}, task)
	if err != nil {
		respondError(c, err)
		return
	}
	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": apierr.CodeDuplicateID, "detail": "task with id '" + task.ID() + "' already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": toTaskResponse(task)})
}

// GET /api/v1/tasks
func (th *TaskHandler) List(c *gin.Context) {
	tasks, err := th.taskService.GetAll(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	c.JSON(http.StatusOK, gin.H{"tasks": responses})
}

// GET /api/v1/tasks/:id
func (th *TaskHandler) Get(c *gin.Context) {
	task, err := th.taskService.GetByID(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// PUT /api/v1/tasks/:id
func (th *TaskHandler) Update(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apierr.CodeInvalidRequest, "detail": err.Error()})
		return
	}

	dbc := dbctx.Context{Ctx: c.Request.Context()}
	updated, err := th.taskService.Update(dbc, c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}

	task, err := th.taskService.GetByID(dbc, c.Param("id"))
	if err != nil || task == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": toTaskResponse(task)})
}

// DELETE /api/v1/tasks/:id
func (th *TaskHandler) Delete(c *gin.Context) {
	deleted, err := th.taskService.Delete(dbctx.Context{Ctx: c.Request.Context()}, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": apierr.CodeNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}
