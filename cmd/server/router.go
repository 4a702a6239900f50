package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hablaconmigo/habla-api/internal/api"
	apiMiddleware "github.com/hablaconmigo/habla-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	wordFormHandler := api.NewWordFormHandler(app.wordFormService, app.logger)
	analyzeHandler := api.NewAnalyzeHandler(app.comprehensionService, app.logger)
	grammarHandler := api.NewGrammarHandler(app.grammarService, app.logger)
	contentHandler := api.NewContentHandler(app.contentService, app.logger)
	scoreHandler := api.NewScoreHandler(app.scoringService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Vocabulary endpoints
		r.Post("/vocabulary", vocabularyHandler.Add)
		r.Get("/vocabulary", vocabularyHandler.List)
		r.Get("/vocabulary/{id}", vocabularyHandler.Get)
		r.Put("/vocabulary/{id}/translation", vocabularyHandler.UpdateTranslation)
		r.Delete("/vocabulary/{id}", vocabularyHandler.Delete)
		r.Get("/vocabulary/{id}/forms", wordFormHandler.FormsForWord)

		// Review loop endpoints
		r.Get("/review/next", reviewHandler.Next)
		r.Post("/review/{id}/answer", reviewHandler.SubmitAnswer)
		r.Get("/review/session", reviewHandler.Session)
		r.Post("/review/session/reset", reviewHandler.ResetSession)

		// Word-form expansion
		r.Post("/word-forms/regenerate", wordFormHandler.Regenerate)

		// Grammar taxonomy and mastery
		r.Post("/grammar/topics", grammarHandler.CreateTopic)
		r.Get("/grammar/topics", grammarHandler.ListTopics)
		r.Put("/grammar/topics/{id}/progress", grammarHandler.SetProgress)

		// Content packages
		r.Post("/content-packages", contentHandler.Import)
		r.Get("/content-packages", contentHandler.List)
		r.Get("/content-packages/{id}", contentHandler.Get)
		r.Delete("/content-packages/{id}", contentHandler.Delete)

		// Comprehension and scoring
		r.Post("/analyze", analyzeHandler.Analyze)
		r.Get("/score", scoreHandler.Score)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
