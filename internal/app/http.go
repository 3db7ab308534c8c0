package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/devops-pm/project-manager/internal/config"
	v1 "github.com/devops-pm/project-manager/internal/delivery/http/v1"
	"github.com/devops-pm/project-manager/internal/repository"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	// kill (no params) by default sends syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be caught, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	storeCfg := config.Global().Store
	projectRepository := repository.NewProjectRepository(
		globalLogger,
		globalDynamoDBClient,
		storeCfg.ProjectsTable,
	)
	taskRepository := repository.NewTaskRepository(
		globalLogger,
		globalDynamoDBClient,
		storeCfg.TasksTable,
	)

	v1Handler := v1.New(
		globalLogger,
		storeCfg,
		projectRepository,
		taskRepository,
	)

	projectsRouter := router.Group("/projects", v1Handler.HandleIdentityMiddleware)
	projectsRouter.POST("", v1Handler.HandleCreateProject)
	projectsRouter.GET("", v1Handler.HandleGetProjects)
	projectsRouter.GET("/:project_id", v1Handler.HandleGetProject)
	projectsRouter.PUT("/:project_id", v1Handler.HandleUpdateProject)
	projectsRouter.DELETE("/:project_id", v1Handler.HandleDeleteProject)

	tasksRouter := projectsRouter.Group("/:project_id/tasks")
	tasksRouter.POST("", v1Handler.HandleCreateTask)
	tasksRouter.GET("", v1Handler.HandleGetTasks)
	tasksRouter.GET("/:task_id", v1Handler.HandleGetTask)
	tasksRouter.PUT("/:task_id", v1Handler.HandleUpdateTask)
	tasksRouter.DELETE("/:task_id", v1Handler.HandleDeleteTask)
}
