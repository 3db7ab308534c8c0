package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devops-pm/project-manager/internal/config"
	"github.com/devops-pm/project-manager/internal/httpresp"
	"github.com/devops-pm/project-manager/internal/repository"
)

type Handler interface {
	HandleIdentityMiddleware(c *gin.Context)

	HandleCreateProject(c *gin.Context)
	HandleGetProjects(c *gin.Context)
	HandleGetProject(c *gin.Context)
	HandleUpdateProject(c *gin.Context)
	HandleDeleteProject(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	store    config.StoreConfig
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
}

func New(
	logger zerolog.Logger,
	store config.StoreConfig,
	projects repository.ProjectRepository,
	tasks repository.TaskRepository,
) Handler {
	return &handlerImpl{
		logger:   logger,
		store:    store,
		projects: projects,
		tasks:    tasks,
	}
}

func (h *handlerImpl) respond(c *gin.Context, res httpresp.Response) {
	switch body := res.Body.(type) {
	case nil:
		c.Status(res.Status)
	case string:
		c.String(res.Status, body)
	default:
		c.JSON(res.Status, body)
	}
}

// checkStoreEnv runs before anything else in every handler. A missing
// store value is a deployment fault, reported as an internal error
// naming the variable, and no repository call is attempted after it.
func (h *handlerImpl) checkStoreEnv(c *gin.Context, tableName, tableEnvName string) bool {
	if h.store.Region == "" {
		h.logger.Error().Msg("AWS_REGION was not specified in the environment variables")
		h.respond(c, httpresp.InternalServerError(
			"AWS_REGION was not specified in the environment variables"))
		return false
	}

	if tableName == "" {
		h.logger.Error().
			Str("variable", tableEnvName).
			Msg("table name was not specified in the environment variables")
		h.respond(c, httpresp.InternalServerError(
			tableEnvName+" was not specified in the environment variables"))
		return false
	}

	return true
}

func (h *handlerImpl) checkProjectsEnv(c *gin.Context) bool {
	return h.checkStoreEnv(c, h.store.ProjectsTable, "DYNAMODB_PROJECTS_TABLE_NAME")
}

func (h *handlerImpl) checkTasksEnv(c *gin.Context) bool {
	return h.checkStoreEnv(c, h.store.TasksTable, "DYNAMODB_TASKS_TABLE_NAME")
}

// checkAccountID resolves the caller identity extracted by the
// middleware. An empty identity means the gateway let an
// unauthenticated request through, which is its contract violation,
// not the client's: the response is an internal error, deliberately
// not unauthorized.
func (h *handlerImpl) checkAccountID(c *gin.Context) (string, bool) {
	id := accountID(c)
	if id == "" {
		h.logger.Error().Msg("no provided sub")
		h.respond(c, httpresp.InternalServerError("Something went wrong"))
		return "", false
	}
	return id, true
}
