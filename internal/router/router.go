package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/notely-dev/notely/internal/handlers"
	"github.com/notely-dev/notely/internal/metrics"
	"github.com/notely-dev/notely/internal/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(users store.UserStore, notes store.NoteStore) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Accept"},
	}))
	r.Use(metrics.Middleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userHandler := handlers.NewUserHandler(users)
	noteHandler := handlers.NewNoteHandler(notes)

	api := r.Group("/api")
	{
		u := api.Group("/users")
		{
			u.GET("", userHandler.List)
			u.GET("/health", handlers.HealthCheck)
			u.GET("/:id", userHandler.Get)
			u.POST("", userHandler.Create)
			u.PUT("/:id", userHandler.Update)
			u.DELETE("/:id", userHandler.Delete)
			u.POST("/login", userHandler.Login)
			u.POST("/admin", userHandler.CreateAdmin)
		}

		n := api.Group("/notes")
		{
			n.GET("", noteHandler.List)
			n.GET("/:id", noteHandler.Get)
			n.GET("/user/:email", noteHandler.ListByUser)
			n.GET("/user/:email/type/:type", noteHandler.ListByUserAndType)
			n.GET("/type/:type", noteHandler.ListByType)
			n.POST("", noteHandler.Create)
			n.PUT("/:id", noteHandler.Update)
			n.DELETE("/:id", noteHandler.Delete)
		}
	}

	return r
}
