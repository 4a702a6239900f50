package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/language"
	"github.com/hablaconmigo/habla-api/internal/platform/logger"
	"github.com/hablaconmigo/habla-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	contentStore store.ContentPackageStore
	lemmatizer   *language.Lemmatizer
	logger       *slog.Logger
}

// NewService creates a new content Service implementation.
func NewService(contentStore store.ContentPackageStore, lemmatizer *language.Lemmatizer, log *slog.Logger) Service {
	if contentStore == nil {
		panic("contentStore cannot be nil")
	}
	if lemmatizer == nil {
		panic("lemmatizer cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		contentStore: contentStore,
		lemmatizer:   lemmatizer,
		logger:       log.With(slog.String("component", "content_service")),
	}
}

// Import implements Service.Import.
func (s *serviceImpl) Import(ctx context.Context, req ImportRequest) (*domain.ContentPackage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.ErrEmptyText
	}

	tokens := language.Tokenize(req.Text)
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lemma := s.lemmatizer.Lemmatize(token)
		if language.IsStopWord(lemma) {
			continue
		}
		lemmas = append(lemmas, lemma)
	}

	pkg, err := domain.NewContentPackage(req.Title, req.Source, lemmas)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.contentStore.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to create content package: %w", err)
	}

	log.Info("content package imported",
		slog.String("id", pkg.ID.String()),
		slog.String("title", pkg.Title),
		slog.Int("word_count", len(pkg.Words)))
	return pkg, nil
}

// List implements Service.List.
func (s *serviceImpl) List(ctx context.Context) ([]*domain.ContentPackage, error) {
	packages, err := s.contentStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content packages: %w", err)
	}
	return packages, nil
}

// Get implements Service.Get.
func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.ContentPackage, error) {
	pkg, err := s.contentStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get content package: %w", err)
	}
	return pkg, nil
}

// Delete implements Service.Delete.
func (s *serviceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.contentStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to delete content package: %w", err)
	}

	log.Info("content package deleted", slog.String("id", id.String()))
	return nil
}
