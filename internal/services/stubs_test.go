package services

import (
	"context"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/predictor"
	"wayfarer/pkg/utils"
)

type stubCompletionClient struct {
	result utils.CompletionResult
	err    error

	calls         int
	lastSystem    string
	lastUser      string
	lastMaxTokens int
}

func (s *stubCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (utils.CompletionResult, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	s.lastMaxTokens = maxTokens
	if s.err != nil {
		return utils.CompletionResult{}, s.err
	}
	return s.result, nil
}

type stubUsageRepo struct {
	recorded []db_models.CompletionUsage
	err      error
}

func (s *stubUsageRepo) RecordUsage(ctx context.Context, usage *db_models.CompletionUsage) error {
	if s.err != nil {
		return s.err
	}
	s.recorded = append(s.recorded, *usage)
	return nil
}

func (s *stubUsageRepo) ListUsageBySession(ctx context.Context, sessionID string, page, pageSize int) ([]db_models.CompletionUsage, error) {
	return s.recorded, nil
}

type stubModel struct {
	prediction float64
	err        error

	calls    int
	lastRows []predictor.FeatureRow
}

func (s *stubModel) Predict(rows []predictor.FeatureRow) ([]float64, error) {
	s.calls++
	s.lastRows = rows
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = s.prediction
	}
	return out, nil
}
