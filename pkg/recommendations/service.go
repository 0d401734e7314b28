package recommendations

import (
	"context"
	"time"

	"github.com/leaflog/leaflog/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// ComputeRecommendations ranks unread and in-progress books and returns up to
// 10 of them, highest score first. Books that are finished, abandoned, or on
// hold are excluded.
func (svc *Service) ComputeRecommendations(ctx context.Context, now time.Time) ([]Entry, error) {
	var books []*models.Book

	err := svc.db.
		NewSelect().
		Model(&books).
		Relation("ReadingLog").
		Relation("Info").
		Relation("Authors").
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	eligible := make([]*models.Book, 0, len(books))
	for _, book := range books {
		if isEligible(book) {
			eligible = append(eligible, book)
		}
	}

	return rank(eligible, now), nil
}

// isEligible reports whether a book is a recommendation candidate. A book with
// no reading log entry counts as not started.
func isEligible(book *models.Book) bool {
	if book.ReadingLog == nil {
		return true
	}
	switch book.ReadingLog.Status {
	case models.StatusWantToRead, models.StatusReading:
		return true
	default:
		return false
	}
}
