package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/devops-pm/project-manager/internal/httpresp"
	"github.com/devops-pm/project-manager/internal/models"
)

type taskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	State       string `json:"state" binding:"required"`
}

func (h *handlerImpl) bindTaskRequest(c *gin.Context) (*taskRequest, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		h.logger.Error().Msg("request body cannot be empty")
		h.respond(c, httpresp.BadRequest("Request body cannot be empty"))
		return nil, false
	}

	req := new(taskRequest)
	err = binding.JSON.BindBody(raw, req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind task body")
		h.respond(c, httpresp.BadRequest("Invalid request body"))
		return nil, false
	}

	return req, true
}

func (h *handlerImpl) taskPathIDs(c *gin.Context) (projectID, taskID string, ok bool) {
	projectID = c.Param("project_id")
	if projectID == "" {
		h.logger.Error().Msg("project id cannot be empty")
		h.respond(c, httpresp.BadRequest("Project id cannot be empty"))
		return "", "", false
	}

	taskID = c.Param("task_id")
	if taskID == "" {
		h.logger.Error().Msg("task id cannot be empty")
		h.respond(c, httpresp.BadRequest("Task id cannot be empty"))
		return "", "", false
	}

	return projectID, taskID, true
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	if !h.checkTasksEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	projectID := c.Param("project_id")
	if projectID == "" {
		h.logger.Error().Msg("project id cannot be empty")
		h.respond(c, httpresp.BadRequest("Project id cannot be empty"))
		return
	}

	req, ok := h.bindTaskRequest(c)
	if !ok {
		return
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
		DateTime:    time.Now().UTC().Format(time.RFC3339),
		CreatedBy:   adminID,
	}

	err := h.tasks.Create(c, task)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("task_id", task.ID).
		Str("project_id", projectID).
		Msg("created task")
	h.respond(c, httpresp.Created())
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	if !h.checkTasksEnv(c) {
		return
	}

	_, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	projectID := c.Param("project_id")
	if projectID == "" {
		h.logger.Error().Msg("project id cannot be empty")
		h.respond(c, httpresp.BadRequest("Project id cannot be empty"))
		return
	}

	tasks, err := h.tasks.ListByProjectID(c, projectID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Int("count", len(tasks)).
		Str("project_id", projectID).
		Msg("fetched tasks")
	h.respond(c, httpresp.OK(tasks))
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	if !h.checkTasksEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	_, taskID, ok := h.taskPathIDs(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c, taskID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	// Same information hiding as projects: not-owned reads look
	// exactly like absent records.
	if task == nil || task.AdminID != adminID {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		h.respond(c, httpresp.NotFound())
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Msg("fetched task")
	h.respond(c, httpresp.OK(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	if !h.checkTasksEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	projectID, taskID, ok := h.taskPathIDs(c)
	if !ok {
		return
	}

	req, ok := h.bindTaskRequest(c)
	if !ok {
		return
	}

	// Whole-record replace. Id, parent, owner, attribution and the
	// timestamp all come from server-side context; body values for
	// them are discarded.
	task := &models.Task{
		ID:          taskID,
		ProjectID:   projectID,
		AdminID:     adminID,
		Title:       req.Title,
		Description: req.Description,
		State:       req.State,
		DateTime:    time.Now().UTC().Format(time.RFC3339),
		CreatedBy:   adminID,
	}

	err := h.tasks.Update(c, task)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Str("project_id", projectID).
		Msg("updated task")
	h.respond(c, httpresp.Updated())
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	if !h.checkTasksEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	_, taskID, ok := h.taskPathIDs(c)
	if !ok {
		return
	}

	task, err := h.tasks.Get(c, taskID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	if task == nil || task.AdminID != adminID {
		h.logger.Warn().
			Str("task_id", taskID).
			Str("admin_id", adminID).
			Msg("caller does not own task")
		h.respond(c, httpresp.Unauthorized(
			"Unauthorized to remove this project as you do not belong to this project"))
		return
	}

	err = h.tasks.Delete(c, taskID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Msg("deleted task")
	h.respond(c, httpresp.Accepted())
}
