package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"resume-coach/internal/ats"
	"resume-coach/internal/extract"
	"resume-coach/internal/interview"
	"resume-coach/internal/jobparse"
	"resume-coach/internal/nlp"
	"resume-coach/internal/scores"
	"resume-coach/internal/services/health"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/server"
	"resume-coach/internal/shared/storage/db"
	"resume-coach/internal/shared/telemetry"
)

// App holds the wired application.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Scores *scores.Service
}

// Build loads config, connects storage, and wires every handler into the
// router. Outside production a missing or unreachable database degrades to
// in-memory storage.
func Build(ctx context.Context) (*App, error) {
	cfg := config.Load()

	sqlDB, err := connectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var scoreRepo scores.Repo
	if sqlDB != nil {
		scoreRepo = &scores.PGRepo{DB: sqlDB}
	} else {
		scoreRepo = scores.NewMemoryRepo()
	}
	scoreSvc := scores.NewService(scoreRepo)

	dict, err := jobparse.DefaultDictionary()
	if err != nil {
		return nil, fmt.Errorf("load skills dictionary: %w", err)
	}
	parser := jobparse.NewParser(dict, nlp.RuleRecognizer{})
	evaluator := interview.NewEvaluator(nlp.LexiconClassifier{})
	generator := interview.NewGenerator(nil)

	router := server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Health:    health.NewHandler(health.NewService(sqlDB)),
		ATS:       ats.NewHandler(scoreSvc),
		JobParse:  jobparse.NewHandler(parser),
		Interview: interview.NewHandler(evaluator, generator, scoreSvc),
		Extract:   extract.NewHandler(),
		Scores:    scores.NewHandler(scoreSvc),
	})

	return &App{
		Config: cfg,
		Router: router,
		DB:     sqlDB,
		Scores: scoreSvc,
	}, nil
}

func connectDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Info("no DATABASE_URL, using in-memory storage", nil)
		return nil, nil
	}

	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		telemetry.Warn("database unavailable, using in-memory storage", map[string]any{"error": err.Error()})
		return nil, nil
	}

	if err := db.RunMigrations(ctx, conn); err != nil {
		conn.Close()
		if cfg.Env == "production" {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		telemetry.Warn("migrations failed, using in-memory storage", map[string]any{"error": err.Error()})
		return nil, nil
	}

	return conn, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
