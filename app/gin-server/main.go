package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/config"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/api/handlers"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/api/middleware"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/api/routes"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/cache"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/events"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/health"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/logger"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories/memory"
	mongorepo "github.com/Ruchin-Audichya/Student-Copilot/internal/repositories/mongo"
	pgrepo "github.com/Ruchin-Audichya/Student-Copilot/internal/repositories/postgres"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/scraper"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/services"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/workers"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.WithError(err).Fatal("config error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, checks := openStore(cfg, log)

	// Redis is optional: without it the cache is in-process, events stay
	// local and the live feed is disabled.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		if err := config.InitRedis(); err != nil {
			log.WithError(err).Warn("redis unavailable, continuing without it")
		} else {
			rdb = config.RedisClient
			checks = append(checks, health.Redis(rdb))
			log.Info("redis connected")
		}
	}

	var catalogCache cache.Cache = cache.NewMemoryCache()
	var pubs []events.Publisher
	if rdb != nil {
		catalogCache = cache.NewRedisCache(rdb, "copilot:")
		pubs = append(pubs, events.NewRedisPublisher(rdb))
	}
	if cfg.RabbitMQURL != "" {
		amqpPub, err := events.DialAMQP(cfg.RabbitMQURL)
		if err != nil {
			log.WithError(err).Warn("rabbitmq unavailable, events not forwarded")
		} else {
			defer amqpPub.Close()
			pubs = append(pubs, amqpPub)
			log.Info("rabbitmq connected")
		}
	}
	publisher := events.Fanout(pubs...)

	engine, err := newEngine(cfg)
	if err != nil {
		log.WithError(err).Fatal("matching engine init error")
	}

	students := services.NewStudentService(store.Students, publisher, log)
	catalog := services.NewCatalogService(services.CatalogDeps{
		Internships: store.Internships,
		Projects:    store.Projects,
		Cache:       catalogCache,
		CacheTTL:    cfg.CatalogCacheTTL,
		Events:      publisher,
		Logger:      log,
	})
	matcher := services.NewMatchingService(students, catalog, engine, log)

	if cfg.SeedCatalog {
		nIn, nPr, err := catalog.Seed(ctx)
		if err != nil {
			log.WithError(err).Error("catalog seeding failed")
		} else if nIn+nPr > 0 {
			log.WithFields(logrus.Fields{"internships": nIn, "projects": nPr}).Info("catalog seeded")
		}
	}

	if err := startScraper(ctx, cfg, rdb, catalog, log); err != nil {
		log.WithError(err).Fatal("scraper init error")
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), middleware.Recovery(log))

	deps := routes.Deps{
		Students: handlers.NewStudentHandler(students, matcher),
		Catalog:  handlers.NewCatalogHandler(catalog, matcher),
		Health:   handlers.NewHealthHandler(health.NewService(checks...)),
	}
	if rdb != nil {
		deps.WS = handlers.NewWSHandler(rdb, log)
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreDriver, "match_mode": engine.Mode()}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func openStore(cfg *config.AppConfig, log *logrus.Logger) (repositories.Store, []health.Checker) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		if err := config.InitPostgres(); err != nil {
			log.WithError(err).Fatal("PostgreSQL init error")
		}
		if err := pgrepo.Migrate(config.PostgresDB); err != nil {
			log.WithError(err).Fatal("PostgreSQL migration error")
		}
		log.Info("PostgreSQL connected")
		return pgrepo.NewStore(config.PostgresDB), []health.Checker{health.Postgres(config.PostgresDB)}

	case config.StoreMongo:
		if err := config.InitMongo(); err != nil {
			log.WithError(err).Fatal("MongoDB init error")
		}
		if err := config.EnsureMongoIndexes(); err != nil {
			log.WithError(err).Fatal("MongoDB index error")
		}
		log.Info("MongoDB connected")
		return mongorepo.NewStore(config.MongoDatabase()), []health.Checker{health.Mongo(config.MongoClient)}

	default:
		log.Info("using in-memory store")
		return memory.NewStore(), nil
	}
}

func newEngine(cfg *config.AppConfig) (*matching.Engine, error) {
	roles, err := matching.LoadRoles(cfg.RolesFile)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultRole != "" {
		if err := roles.SetDefault(cfg.DefaultRole); err != nil {
			return nil, err
		}
	}
	mode, err := matching.ParseMode(cfg.MatchMode)
	if err != nil {
		return nil, err
	}
	return matching.New(roles, matching.NewRandom(cfg.RandomSeed),
		matching.WithMode(mode),
		matching.WithMaxBonus(cfg.MatchMaxBonus),
	), nil
}

func startScraper(ctx context.Context, cfg *config.AppConfig, rdb *redis.Client, catalog services.CatalogService, log *logrus.Logger) error {
	if cfg.ScraperCron == "" {
		return nil
	}

	var feed scraper.Feed = scraper.MockFeed{}
	if cfg.ScraperFeedURL != "" {
		hf, err := scraper.NewHTTPFeed(cfg.ScraperFeedURL, 15*time.Second)
		if err != nil {
			return err
		}
		feed = hf
	}

	var ingest scraper.Ingestor = scraper.CatalogIngestor{Catalog: catalog, Logger: log}
	if rdb != nil {
		pool := &workers.IngestWorkerPool{
			Redis:      rdb,
			Catalog:    catalog,
			NumWorkers: cfg.IngestWorkers,
			Logger:     log,
		}
		if err := pool.Start(ctx); err != nil {
			return err
		}
		ingest = workers.StreamIngestor{Redis: rdb}
	}

	sched, err := scraper.NewScheduler(cfg.ScraperCron, feed, ingest, log)
	if err != nil {
		return err
	}
	sched.Start(ctx)
	log.WithFields(logrus.Fields{"schedule": cfg.ScraperCron, "source": feed.Source()}).Info("scraper scheduled")
	return nil
}
