package analysis

import (
	"Ralph-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AnalysisRepository interface {
		GetAnalysisByUser(ctx context.Context, userID string) (*entities.AiAnalysis, error)
		UpsertAnalysis(ctx context.Context, analysis *entities.AiAnalysis) error
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) GetAnalysisByUser(ctx context.Context, userID string) (*entities.AiAnalysis, error) {
	var analysis entities.AiAnalysis
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// UpsertAnalysis creates or replaces the user's single analysis row in one
// statement, so a row is never left half-written.
func (r *analysisRepository) UpsertAnalysis(ctx context.Context, analysis *entities.AiAnalysis) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"recommended",
			"not_recommended",
			"avoid_products",
			"last_entry_date",
			"updated_at",
		}),
	}).Create(analysis).Error
}
