package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"go.uber.org/zap"

	"crop-doctor/api/internal/blob"
	"crop-doctor/api/internal/classifier"
	"crop-doctor/api/internal/config"
	"crop-doctor/api/internal/diagnose"
	"crop-doctor/api/internal/handle"
	"crop-doctor/api/internal/llm/gemini"
	"crop-doctor/api/internal/store"
	"crop-doctor/api/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sugar := newLogger(cfg.AppEnv)
	defer func() { _ = sugar.Sync() }()

	// --- Postgres (optional: history + emergency records) ---
	var (
		predictions *store.PredictionRepo
		emergencies *store.EmergencyRepo
	)
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			sugar.Fatalw("sql.Open failed", "err", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			sugar.Fatalw("db ping failed", "err", err)
		}
		cancel()
		sugar.Infow("db connected")

		predictions = store.NewPredictionRepo(db)
		emergencies = store.NewEmergencyRepo(db)
	} else {
		sugar.Warnw("DATABASE_URL not set; history and emergency records disabled")
	}

	// --- Blob store (optional: emergency image uploads) ---
	var blobs blob.Store
	if cfg.StorageBucket != "" {
		gcs, err := blob.NewGCSStore(context.Background(), cfg.StorageBucket, sugar)
		if err != nil {
			sugar.Fatalw("blob store init failed", "bucket", cfg.StorageBucket, "err", err)
		}
		defer func() { _ = gcs.Close() }()
		blobs = gcs
	} else {
		sugar.Warnw("STORAGE_BUCKET not set; emergency image uploads disabled")
	}

	// --- Classifier labels ---
	var labels map[int]string
	if cfg.ClassifierURL != "" {
		labels, err = classifier.LoadLabels(cfg.ClassIndicesFile)
		if err != nil {
			sugar.Fatalw("class indices load failed", "file", cfg.ClassIndicesFile, "err", err)
		}
		sugar.Infow("class labels loaded", "count", len(labels))
	} else {
		sugar.Warnw("CLASSIFIER_URL not set; /predict disabled")
	}
	cls := classifier.New(cfg.ClassifierURL, labels)

	// --- Services ---
	engine := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !engine.Configured() {
		sugar.Warnw("GEMINI_API_KEY not set; diagnosis and translation will return configuration errors")
	}
	diagnosis := diagnose.NewService(engine, sugar)
	translation := translate.NewService(engine, sugar)

	h := handle.New(sugar, diagnosis, translation, cls, predictions, emergencies, blobs)
	r := h.Router(cfg.TemplateGlob, cfg.StaticDir)

	addr := ":" + strings.TrimPrefix(cfg.Port, ":")
	sugar.Infow("crop-doctor listening", "addr", addr, "model", engine.GetModel())
	if err := http.ListenAndServe(addr, r); err != nil {
		sugar.Fatalw("server exited", "err", err)
	}
}

func newLogger(appEnv string) *zap.SugaredLogger {
	var cfg zap.Config
	switch strings.ToLower(appEnv) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger.Sugar()
}
