package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jvdeveloper/blog-api/internal/article/handler"
	"github.com/jvdeveloper/blog-api/internal/article/repository"
	"github.com/jvdeveloper/blog-api/internal/article/service"
	"github.com/jvdeveloper/blog-api/internal/database"
	"github.com/jvdeveloper/blog-api/internal/media"
)

// Lightweight standalone article server for local development: prefers Mongo
// when MONGODB_URI is set and otherwise falls back to the in-memory
// repository. Image uploads are disabled; the full server lives at the module
// root.
func main() {
	port := os.Getenv("ARTICLES_PORT")
	if port == "" {
		port = "3910"
	}

	r := gin.New()
	r.Use(gin.Recovery())

	var repo repository.Repository = repository.NewMemoryRepo()
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		client, err := database.ConnectMongo(context.Background(), uri, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v) — using memory-backed repo", err)
		} else {
			db := os.Getenv("MONGODB_DATABASE")
			if db == "" {
				db = "blog"
			}
			repo = repository.NewMongoRepo(client.Database(db).Collection("articles"))
		}
	}

	svc := service.New(repo, os.Getenv("MEDIA_PLACEHOLDER_URL"))
	handler.New(svc, media.Disabled{}).Register(r)

	log.Printf("article service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
