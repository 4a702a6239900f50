package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hablaconmigo/habla-api/internal/config"
	"github.com/hablaconmigo/habla-api/internal/domain/srs"
	"github.com/hablaconmigo/habla-api/internal/events"
	"github.com/hablaconmigo/habla-api/internal/generation"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/platform/gemini"
	"github.com/hablaconmigo/habla-api/internal/platform/postgres"
	"github.com/hablaconmigo/habla-api/internal/service/comprehension"
	"github.com/hablaconmigo/habla-api/internal/service/content"
	"github.com/hablaconmigo/habla-api/internal/service/grammar"
	"github.com/hablaconmigo/habla-api/internal/service/review"
	"github.com/hablaconmigo/habla-api/internal/service/scoring"
	"github.com/hablaconmigo/habla-api/internal/service/vocabulary"
	"github.com/hablaconmigo/habla-api/internal/service/wordforms"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// ReviewLogHandler records every graded review in the application log.
// It is the only registered event handler for now; a statistics sink or
// an external analytics forwarder would register alongside it.
type ReviewLogHandler struct {
	logger *slog.Logger
}

// HandleReview implements events.ReviewHandler.
func (h *ReviewLogHandler) HandleReview(ctx context.Context, event *events.ReviewEvent) error {
	h.logger.Info("review recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("vocabulary_id", event.VocabularyID.String()),
		slog.String("lemma", event.Lemma),
		slog.Int("quality", event.Quality),
		slog.Bool("passed", event.Passed),
		slog.Int("session_items", event.Session.ItemsReviewed),
		slog.Float64("session_accuracy", event.Session.Accuracy))
	return nil
}

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	vocabStore    store.VocabularyStore
	progressStore store.ProgressStore
	wordFormStore store.WordFormStore
	grammarStore  store.GrammarStore
	contentStore  store.ContentPackageStore

	// Language tooling
	index      language.Index
	lemmatizer *language.Lemmatizer

	// Services
	srsService           srs.Service
	reviewService        review.Service
	vocabularyService    vocabulary.Service
	wordFormService      wordforms.Service
	comprehensionService comprehension.Service
	grammarService       grammar.Service
	contentService       content.Service
	scoringService       scoring.Service

	// Event system
	emitter events.ReviewEmitter
}

// newApplication creates a new application instance with all
// dependencies initialized. Core dependencies (config, logger, database
// connection) must be established before calling this.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Stores
	app.vocabStore = postgres.NewPostgresVocabularyStore(db, logger)
	app.progressStore = postgres.NewPostgresProgressStore(db, logger)
	app.wordFormStore = postgres.NewPostgresWordFormStore(db, logger)
	app.grammarStore = postgres.NewPostgresGrammarStore(db, logger)
	app.contentStore = postgres.NewPostgresContentPackageStore(db, logger)

	// Frequency index and lemmatizer
	index, err := language.NewEmbeddedIndex()
	if err != nil {
		return nil, fmt.Errorf("failed to load frequency index: %w", err)
	}
	app.index = index
	app.lemmatizer = language.NewLemmatizer(index)

	// LLM generator for morphology and translation
	generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", slog.String("model", cfg.LLM.ModelName))

	// Event emitter with the logging handler
	emitter := events.NewInMemoryReviewEmitter(logger)
	emitter.RegisterHandler(&ReviewLogHandler{
		logger: logger.With(slog.String("component", "review_log_handler")),
	})
	app.emitter = emitter

	// SRS scheduler
	app.srsService = srs.NewDefaultService()

	// Services
	app.reviewService = review.NewService(
		db,
		app.vocabStore,
		app.progressStore,
		app.srsService,
		app.emitter,
		cfg.Review.DefaultNextLimit,
		logger,
	)
	app.vocabularyService = vocabulary.NewService(
		db,
		app.vocabStore,
		app.progressStore,
		app.lemmatizer,
		app.index,
		generator,
		logger,
	)
	app.wordFormService = wordforms.NewService(
		db,
		app.vocabStore,
		app.progressStore,
		app.wordFormStore,
		app.grammarStore,
		generator,
		cfg.LLM.BatchSize,
		logger,
	)
	app.comprehensionService = comprehension.NewService(
		app.vocabStore,
		app.progressStore,
		app.wordFormStore,
		app.lemmatizer,
		app.index,
		logger,
	)
	app.grammarService = grammar.NewService(app.grammarStore, logger)
	app.contentService = content.NewService(app.contentStore, app.lemmatizer, logger)

	// Pronunciation scoring has no speech pipeline behind it yet, so the
	// speaking dimension reads a fixed zero until one exists.
	var pronunciation generation.PronunciationScorer = &generation.StaticPronunciationScorer{}
	app.scoringService = scoring.NewService(
		app.vocabStore,
		app.progressStore,
		app.grammarStore,
		app.contentStore,
		app.index,
		pronunciation,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
