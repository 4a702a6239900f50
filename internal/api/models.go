package api

import (
	"time"

	"github.com/hablaconmigo/habla-api/internal/domain"
	"github.com/hablaconmigo/habla-api/internal/events"
	"github.com/hablaconmigo/habla-api/internal/service/review"
)

// VocabularyItemResponse represents the response data for a vocabulary item.
type VocabularyItemResponse struct {
	ID              string    `json:"id"`
	Lemma           string    `json:"lemma"`
	Translation     string    `json:"translation,omitempty"`
	Category        string    `json:"category,omitempty"`
	CEFRLevel       string    `json:"cefr_level"`
	ExampleSentence string    `json:"example_sentence,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProgressResponse represents the response data for a progress record.
type ProgressResponse struct {
	VocabularyID   string     `json:"vocabulary_id"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	TimesCorrect   int        `json:"times_correct"`
	TimesIncorrect int        `json:"times_incorrect"`
	Status         string     `json:"status"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

// ReviewItemResponse pairs an item with its progress for the review queue.
type ReviewItemResponse struct {
	Item     VocabularyItemResponse `json:"item"`
	Progress ProgressResponse       `json:"progress"`
}

// ReviewQueueResponse is the body of GET /api/review/next.
type ReviewQueueResponse struct {
	Items []ReviewItemResponse `json:"items"`
	Count int                  `json:"count"`
}

// SubmitAnswerResponse is the body of POST /api/review/{id}/answer.
type SubmitAnswerResponse struct {
	Progress ProgressResponse       `json:"progress"`
	Passed   bool                   `json:"passed"`
	Session  events.SessionSnapshot `json:"session"`
}

func itemToResponse(item *domain.VocabularyItem) VocabularyItemResponse {
	return VocabularyItemResponse{
		ID:              item.ID.String(),
		Lemma:           item.Lemma,
		Translation:     item.Translation,
		Category:        item.Category,
		CEFRLevel:       string(item.CEFRLevel),
		ExampleSentence: item.ExampleSentence,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func progressToResponse(record *domain.ProgressRecord) ProgressResponse {
	resp := ProgressResponse{
		VocabularyID:   record.VocabularyID.String(),
		EaseFactor:     record.EaseFactor,
		IntervalDays:   record.IntervalDays,
		Repetitions:    record.Repetitions,
		TimesCorrect:   record.TimesCorrect,
		TimesIncorrect: record.TimesIncorrect,
		Status:         string(record.Status),
		NextReviewAt:   record.NextReviewAt,
	}
	if !record.LastReviewedAt.IsZero() {
		last := record.LastReviewedAt
		resp.LastReviewedAt = &last
	}
	return resp
}

func reviewItemToResponse(item *review.ReviewItem) ReviewItemResponse {
	return ReviewItemResponse{
		Item:     itemToResponse(item.Item),
		Progress: progressToResponse(item.Progress),
	}
}
