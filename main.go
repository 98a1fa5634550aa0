package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"fixit-be/config"
	"fixit-be/controllers"
	"fixit-be/directory"
	"fixit-be/routes"
	"fixit-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var storage store.IssueStorage
	switch backend := config.StorageBackend(); backend {
	case config.BackendMongo:
		storage = store.NewMongoStorage(config.GetCollection("issues"))
		log.Println("Issue storage: MongoDB")
	case config.BackendMemory:
		storage = store.NewMemoryStorage()
		log.Println("Issue storage: in-memory (data is lost on restart)")
	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q", backend)
	}

	issues := store.NewIssueStore(storage)
	users := directory.New()
	controllers.Setup(issues, users)

	if config.RedisEnabled() {
		config.ConnectRedis()
	}

	if config.SeedDemo() {
		if err := config.SeedDemoUsers(users); err != nil {
			log.Fatalf("Failed to seed demo users: %v", err)
		}
		if err := config.SeedDemoIssues(context.Background(), issues); err != nil {
			log.Fatalf("Failed to seed demo issues: %v", err)
		}
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowMethods("PATCH")
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)
	routes.UserRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
