package domain

import (
	"errors"
	"time"
)

const (
	AnalysisModeFull        = "full"
	AnalysisModeIncremental = "incremental"
)

var (
	MessageSuccessAnalyze     = "analysis completed successfully"
	MessageSuccessGetOverview = "analysis overview retrieved successfully"

	MessageInvalidMode         = "Invalid mode"
	MessageNoEntriesToAnalyze  = "No entries to analyze"
	MessageFailedAnalyze       = "failed to analyze food diary"
	MessageFailedGetOverview   = "failed to retrieve analysis overview"

	ErrInvalidAnalysisMode = errors.New("invalid analysis mode")
	ErrNoEntriesToAnalyze  = errors.New("no entries to analyze")
	ErrGenerationFailed    = errors.New("analysis generation failed")
	ErrMalformedAnalysis   = errors.New("generation service returned a malformed analysis")
	ErrAnalysisNotFound    = errors.New("analysis not found")
)

type (
	AnalyzeRequest struct {
		Mode string `json:"mode" validate:"required,oneof=full incremental"`
	}

	DishAdvice struct {
		Dish   string `json:"dish"`
		Reason string `json:"reason"`
	}

	ProductAdvice struct {
		Product string `json:"product"`
		Reason  string `json:"reason"`
	}

	// AnalysisResult is the exact shape the generation service must return.
	AnalysisResult struct {
		Recommended    []DishAdvice    `json:"recommended"`
		NotRecommended []DishAdvice    `json:"notRecommended"`
		AvoidProducts  []ProductAdvice `json:"avoidProducts"`
	}

	AnalysisOverviewResponse struct {
		Analysis   *AnalysisResponse `json:"analysis,omitempty"`
		EntryCount int64             `json:"entry_count"`
	}

	AnalysisResponse struct {
		Recommended    []DishAdvice    `json:"recommended"`
		NotRecommended []DishAdvice    `json:"not_recommended"`
		AvoidProducts  []ProductAdvice `json:"avoid_products"`
		LastEntryDate  time.Time       `json:"last_entry_date"`
		UpdatedAt      time.Time       `json:"updated_at"`
	}
)
