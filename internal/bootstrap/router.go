package bootstrap

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/ig-assessment/assessment-api/internal/api/http"
	"github.com/ig-assessment/assessment-api/internal/api/http/middleware"
	projecthttp "github.com/ig-assessment/assessment-api/internal/projects/http"
	"github.com/ig-assessment/assessment-api/internal/projects/store"
)

type RouterDeps struct {
	ServiceName string
	Env         string
	Version     string
	Store       *store.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		body := gin.H{"error": "Internal Server Error"}
		// Panic detail is only exposed outside production-like envs.
		if dep.Env == "development" {
			body["detail"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Env, dep.Version)
	healthHandler.RegisterRoutes(r)

	projectHandler := projecthttp.New(dep.Store)

	api := r.Group("/api")
	projectHandler.Register(api.Group("/projects"))
	api.GET("/stats", projectHandler.Stats)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not Found",
			"path":  c.Request.URL.Path,
		})
	})

	return r
}
