package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/saamcabins/cms-backend/handlers"
	"github.com/saamcabins/cms-backend/internal/config"
	contenthandler "github.com/saamcabins/cms-backend/internal/content/handler"
	contentrepo "github.com/saamcabins/cms-backend/internal/content/repository"
	contentservice "github.com/saamcabins/cms-backend/internal/content/service"
	"github.com/saamcabins/cms-backend/internal/database"
	slidehandler "github.com/saamcabins/cms-backend/internal/slides/handler"
	sliderepo "github.com/saamcabins/cms-backend/internal/slides/repository"
	slideservice "github.com/saamcabins/cms-backend/internal/slides/service"
	"github.com/saamcabins/cms-backend/internal/uploads"
	"github.com/saamcabins/cms-backend/pkg/logger"
	"github.com/saamcabins/cms-backend/pkg/metrics"
	"github.com/saamcabins/cms-backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: content=%s slides=%s mongo=%v redis=%v",
		cfg.Store.ContentFile, cfg.Store.SlidesFile, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// The admin panel runs on a separate origin in development.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Redis is optional and only drives the distributed rate limiter.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Content store: flat file by default, Mongo when configured.
	ctx := context.Background()
	var contentStore contentrepo.Store = contentrepo.NewFileStore(cfg.Store.ContentFile)
	mongoOK := true
	if cfg.MongoDB.URI != "" {
		mongoOK = false
		// Retry/backoff when connecting to MongoDB to tolerate startup races
		const maxAttempts = 5
		backoff := time.Second
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				defer func() { _ = client.Disconnect(ctx) }()
				col := client.Database(cfg.MongoDB.Database).Collection("content")
				contentStore = contentrepo.NewMongoStore(col)
				mongoOK = true
				logger.Infof("Using MongoDB for the content store")
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if !mongoOK {
			logger.Warnf("could not connect to MongoDB; falling back to the file store")
			contentStore = contentrepo.NewFileStore(cfg.Store.ContentFile)
		}
	}
	contentSvc := contentservice.New(contentStore)
	slideSvc := slideservice.New(sliderepo.NewFileStore(cfg.Store.SlidesFile))

	// Upload storage: local public dir by default, MinIO when configured.
	var store uploads.Storage
	backend := "local"
	if minioCfg := uploads.LoadMinIOConfig(); minioCfg.Endpoint != "" {
		ms, err := uploads.NewMinIOStorage(minioCfg)
		if err != nil {
			logger.Warnf("failed to initialize MinIO storage: %v; falling back to local disk", err)
		} else {
			store = ms
			backend = "minio"
		}
	}
	if store == nil {
		store = uploads.NewLocalStorage(cfg.Upload.Dir)
		// serve uploads directly when they live on local disk
		r.Static("/images", filepath.Join(cfg.Upload.Dir, "images"))
	}

	// Routes
	contenthandler.RegisterContentRoutes(r, contentSvc)
	slidehandler.RegisterSlideRoutes(r, slideSvc)
	admin := r.Group("/api/admin")
	handlers.NewAuthHandler(cfg).Register(admin)
	handlers.NewUploadHandler(store, backend, cfg.Upload.MaxSizeMB).Register(admin)
	handlers.RegisterSwagger(r)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339), "uptime": time.Since(startTime).String()})
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		// storage readiness: the data directory must be creatable/writable
		deps["store"] = dataDirWritable(cfg.Store.ContentFile)
		if !deps["store"] {
			ready = false
		}

		// Mongo readiness only matters when it was configured
		deps["mongo"] = mongoOK
		if !mongoOK {
			ready = false
		}

		// Redis readiness when used for the rate limiter
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting saamcabins-cms on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// dataDirWritable reports whether the directory holding the store file exists
// or can be created.
func dataDirWritable(path string) bool {
	dir := filepath.Dir(path)
	if dir == "." {
		return true
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
