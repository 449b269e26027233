package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixelperfect/pixelperfect/backend/go-services/handlers"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/cache"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/config"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/content"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/database"
	"github.com/pixelperfect/pixelperfect/backend/go-services/internal/messages"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/logger"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/metrics"
	"github.com/pixelperfect/pixelperfect/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	// MongoDB is required. Retry with backoff to tolerate startup races,
	// then exit non-zero: no partial serving state is permitted.
	ctx := context.Background()
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if err != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
	}
	logger.Infof("Connected to MongoDB successfully")

	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureCollection(ctx, db, cfg.MongoDB.MessagesCollection); err != nil {
		logger.Fatalf("failed to ensure collection %s: %v", cfg.MongoDB.MessagesCollection, err)
	}

	// Optional Redis-backed content cache. Missing or unreachable Redis just
	// disables caching; reads go straight to MongoDB.
	var contentCache content.Cache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s), content cache disabled: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			contentCache = cache.New(rdb, "content:", cfg.Cache.TTL)
			logger.Infof("Connected to Redis, content cache enabled (ttl=%s)", cfg.Cache.TTL)
		}
	}

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(gin.Logger(), gin.Recovery())

	contentSvc := content.NewService(content.NewMongoRepository(db), content.Collections{
		Testimonials:   cfg.MongoDB.TestimonialsCollection,
		SuccessStories: cfg.MongoDB.SuccessStoriesCollection,
		FAQ:            cfg.MongoDB.FAQCollection,
	}, contentCache)
	messageSvc := messages.NewService(messages.NewMongoRepository(db.Collection(cfg.MongoDB.MessagesCollection)))

	handlers.NewContentHandler(contentSvc).Register(r)
	handlers.NewMessageHandler(messageSvc).Register(r)
	handlers.RegisterHealth(r, startTime, func(ctx context.Context) error {
		return client.Ping(ctx, nil)
	})
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Server running at http://%s", addr)
	logger.Infof("Connected to database: %s", cfg.MongoDB.Database)

	go func() {
		if err := r.Run(addr); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// In-flight requests may be abandoned; only the store session is closed.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Infof("Closing MongoDB connection...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Warnf("error closing MongoDB connection: %v", err)
	}
	logger.Infof("MongoDB connection closed")
}
