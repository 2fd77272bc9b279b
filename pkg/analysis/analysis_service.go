package analysis

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/entities"
	"Ralph-Backend/pkg/diary"
	"Ralph-Backend/pkg/gemini"
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	AnalysisService interface {
		Analyze(ctx context.Context, req domain.AnalyzeRequest, userID string) error
		GetOverview(ctx context.Context, userID string) (domain.AnalysisOverviewResponse, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		diaryRepository    diary.DiaryRepository
		generator          gemini.Client
	}
)

func NewAnalysisService(analysisRepository AnalysisRepository, diaryRepository diary.DiaryRepository, generator gemini.Client) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		diaryRepository:    diaryRepository,
		generator:          generator,
	}
}

// wire mirrors the generation schema with pointer fields so a missing key is
// distinguishable from an empty string. Absent fields are fatal, never
// guess-filled.
type (
	wireDishAdvice struct {
		Dish   *string `json:"dish"`
		Reason *string `json:"reason"`
	}

	wireProductAdvice struct {
		Product *string `json:"product"`
		Reason  *string `json:"reason"`
	}

	wireAnalysis struct {
		Recommended    *[]wireDishAdvice    `json:"recommended"`
		NotRecommended *[]wireDishAdvice    `json:"notRecommended"`
		AvoidProducts  *[]wireProductAdvice `json:"avoidProducts"`
	}
)

func (w wireAnalysis) toResult() (domain.AnalysisResult, error) {
	if w.Recommended == nil || w.NotRecommended == nil || w.AvoidProducts == nil {
		return domain.AnalysisResult{}, domain.ErrMalformedAnalysis
	}

	result := domain.AnalysisResult{
		Recommended:    make([]domain.DishAdvice, 0, len(*w.Recommended)),
		NotRecommended: make([]domain.DishAdvice, 0, len(*w.NotRecommended)),
		AvoidProducts:  make([]domain.ProductAdvice, 0, len(*w.AvoidProducts)),
	}

	for _, advice := range *w.Recommended {
		if advice.Dish == nil || advice.Reason == nil {
			return domain.AnalysisResult{}, domain.ErrMalformedAnalysis
		}
		result.Recommended = append(result.Recommended, domain.DishAdvice{Dish: *advice.Dish, Reason: *advice.Reason})
	}
	for _, advice := range *w.NotRecommended {
		if advice.Dish == nil || advice.Reason == nil {
			return domain.AnalysisResult{}, domain.ErrMalformedAnalysis
		}
		result.NotRecommended = append(result.NotRecommended, domain.DishAdvice{Dish: *advice.Dish, Reason: *advice.Reason})
	}
	for _, advice := range *w.AvoidProducts {
		if advice.Product == nil || advice.Reason == nil {
			return domain.AnalysisResult{}, domain.ErrMalformedAnalysis
		}
		result.AvoidProducts = append(result.AvoidProducts, domain.ProductAdvice{Product: *advice.Product, Reason: *advice.Reason})
	}

	return result, nil
}

func (s *analysisService) Analyze(ctx context.Context, req domain.AnalyzeRequest, userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	if req.Mode != domain.AnalysisModeFull && req.Mode != domain.AnalysisModeIncremental {
		return domain.ErrInvalidAnalysisMode
	}

	entries, priorContext, err := s.selectEntries(ctx, userID, req.Mode)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return domain.ErrNoEntriesToAnalyze
	}

	prompt := composePrompt(renderEntries(entries), priorContext)

	var raw wireAnalysis
	if err := s.generator.GenerateObject(ctx, systemInstruction, prompt, analysisSchema, &raw); err != nil {
		log.Printf("analysis generation failed: %v", err)
		return domain.ErrGenerationFailed
	}

	result, err := raw.toResult()
	if err != nil {
		return err
	}

	return s.persist(ctx, userID, result, entries)
}

// selectEntries decides which diary entries feed the run and, for an
// incremental run with an existing analysis, reconstructs the prior context.
func (s *analysisService) selectEntries(ctx context.Context, userID string, mode string) ([]*entities.FoodEntry, string, error) {
	if mode == domain.AnalysisModeFull {
		entries, err := s.diaryRepository.GetEntries(ctx, userID)
		return entries, "", err
	}

	existing, err := s.analysisRepository.GetAnalysisByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First incremental run behaves exactly like a full run.
			entries, ferr := s.diaryRepository.GetEntries(ctx, userID)
			return entries, "", ferr
		}
		return nil, "", err
	}

	priorContext, err := priorContextFromRow(existing)
	if err != nil {
		// Stored analysis that no longer decodes is treated as no prior
		// context rather than failing the run.
		log.Printf("stored analysis for user %s is undecodable, proceeding without prior context: %v", userID, err)
		priorContext = ""
	}

	entries, err := s.diaryRepository.GetEntriesAfter(ctx, userID, existing.LastEntryDate)
	if err != nil {
		return nil, "", err
	}

	return entries, priorContext, nil
}

func priorContextFromRow(row *entities.AiAnalysis) (string, error) {
	var result domain.AnalysisResult
	if err := json.Unmarshal(row.Recommended, &result.Recommended); err != nil {
		return "", err
	}
	if err := json.Unmarshal(row.NotRecommended, &result.NotRecommended); err != nil {
		return "", err
	}
	if err := json.Unmarshal(row.AvoidProducts, &result.AvoidProducts); err != nil {
		return "", err
	}
	return serializePriorContext(result)
}

// persist replaces the user's analysis row wholesale. The watermark is the
// date of the last input entry, which selection keeps in ascending order.
func (s *analysisService) persist(ctx context.Context, userID string, result domain.AnalysisResult, entries []*entities.FoodEntry) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recommended, err := json.Marshal(result.Recommended)
	if err != nil {
		return err
	}
	notRecommended, err := json.Marshal(result.NotRecommended)
	if err != nil {
		return err
	}
	avoidProducts, err := json.Marshal(result.AvoidProducts)
	if err != nil {
		return err
	}

	newest := entries[len(entries)-1]

	return s.analysisRepository.UpsertAnalysis(ctx, &entities.AiAnalysis{
		ID:             uuid.New(),
		UserID:         userUUID,
		Recommended:    datatypes.JSON(recommended),
		NotRecommended: datatypes.JSON(notRecommended),
		AvoidProducts:  datatypes.JSON(avoidProducts),
		LastEntryDate:  newest.Date,
	})
}

func (s *analysisService) GetOverview(ctx context.Context, userID string) (domain.AnalysisOverviewResponse, error) {
	count, err := s.diaryRepository.CountEntries(ctx, userID)
	if err != nil {
		return domain.AnalysisOverviewResponse{}, err
	}

	row, err := s.analysisRepository.GetAnalysisByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AnalysisOverviewResponse{EntryCount: count}, nil
		}
		return domain.AnalysisOverviewResponse{}, err
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(row.Recommended, &result.Recommended); err != nil {
		return domain.AnalysisOverviewResponse{}, err
	}
	if err := json.Unmarshal(row.NotRecommended, &result.NotRecommended); err != nil {
		return domain.AnalysisOverviewResponse{}, err
	}
	if err := json.Unmarshal(row.AvoidProducts, &result.AvoidProducts); err != nil {
		return domain.AnalysisOverviewResponse{}, err
	}

	return domain.AnalysisOverviewResponse{
		Analysis: &domain.AnalysisResponse{
			Recommended:    result.Recommended,
			NotRecommended: result.NotRecommended,
			AvoidProducts:  result.AvoidProducts,
			LastEntryDate:  row.LastEntryDate,
			UpdatedAt:      row.UpdatedAt,
		},
		EntryCount: count,
	}, nil
}
