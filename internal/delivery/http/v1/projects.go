package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/devops-pm/project-manager/internal/httpresp"
	"github.com/devops-pm/project-manager/internal/models"
)

type projectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *handlerImpl) bindProjectRequest(c *gin.Context) (*projectRequest, bool) {
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		h.logger.Error().Msg("request body cannot be empty")
		h.respond(c, httpresp.BadRequest("Request body cannot be empty"))
		return nil, false
	}

	req := new(projectRequest)
	err = binding.JSON.BindBody(raw, req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind project body")
		h.respond(c, httpresp.BadRequest("Invalid request body"))
		return nil, false
	}

	return req, true
}

func (h *handlerImpl) HandleCreateProject(c *gin.Context) {
	if !h.checkProjectsEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	req, ok := h.bindProjectRequest(c)
	if !ok {
		return
	}

	project := &models.Project{
		ID:          uuid.NewString(),
		AdminID:     adminID,
		Name:        req.Name,
		Description: req.Description,
	}

	err := h.projects.Create(c, project)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("project_id", project.ID).
		Str("admin_id", adminID).
		Msg("created project")
	h.respond(c, httpresp.Created())
}

func (h *handlerImpl) HandleGetProjects(c *gin.Context) {
	if !h.checkProjectsEnv(c) {
		return
	}

	adminID, ok := h.checkAccountID(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByAdminID(c, adminID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Int("count", len(projects)).
		Str("admin_id", adminID).
		Msg("fetched projects")
	h.respond(c, httpresp.OK(projects))
}

func (h *handlerImpl) HandleGetProject(c *gin.Context) {
	if !h.checkProjectsEnv(c) {
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

	project, err := h.projects.Get(c, projectID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	// A project owned by someone else is reported exactly like an
	// absent one, so non-owners cannot probe for existence.
	if project == nil || project.AdminID != adminID {
		h.logger.Warn().
			Str("project_id", projectID).
			Msg("project not found")
		h.respond(c, httpresp.NotFound())
		return
	}

	h.logger.Info().
		Str("project_id", projectID).
		Msg("fetched project")
	h.respond(c, httpresp.OK(project))
}

func (h *handlerImpl) HandleUpdateProject(c *gin.Context) {
	if !h.checkProjectsEnv(c) {
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

	req, ok := h.bindProjectRequest(c)
	if !ok {
		return
	}

	// Whole-record replace. The id and owner come from the path and
	// the verified identity, never from the body.
	project := &models.Project{
		ID:          projectID,
		AdminID:     adminID,
		Name:        req.Name,
		Description: req.Description,
	}

	err := h.projects.Update(c, project)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("project_id", projectID).
		Msg("updated project")
	h.respond(c, httpresp.Updated())
}

func (h *handlerImpl) HandleDeleteProject(c *gin.Context) {
	if !h.checkProjectsEnv(c) {
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

	project, err := h.projects.Get(c, projectID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	if project == nil || project.AdminID != adminID {
		h.logger.Warn().
			Str("project_id", projectID).
			Str("admin_id", adminID).
			Msg("caller does not own project")
		h.respond(c, httpresp.Unauthorized(
			"Unauthorized to remove this project as you do not belong to this project"))
		return
	}

	err = h.projects.Delete(c, projectID)
	if err != nil {
		h.respond(c, httpresp.InternalServerError(err.Error()))
		return
	}

	h.logger.Info().
		Str("project_id", projectID).
		Msg("deleted project")
	h.respond(c, httpresp.Accepted())
}
