package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

const defaultFetchTimeout = 60 * time.Second

// RiddleService generates the riddles of a level with a text-generation backend.
// It substitutes a fixed placeholder set whenever the backend fails.
type RiddleService struct {
	llm     LLMClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewRiddleService creates a new RiddleService.
func NewRiddleService(llm LLMClient, timeout time.Duration, logger *zap.Logger) *RiddleService {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &RiddleService{
		llm:     llm,
		timeout: timeout,
		logger:  logger,
	}
}

// FetchRiddles returns exactly entities.RiddlesPerLevel valid riddles for the level.
func (s *RiddleService) FetchRiddles(ctx context.Context, level int) []entities.Riddle {
	start := time.Now()

	riddles, err := s.generate(ctx, level)
	if err != nil {
		s.logger.Warn("riddle generation failed, using fallback",
			zap.Int("level", level),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return FallbackRiddles(level)
	}

	s.logger.Info("riddles generated",
		zap.Int("level", level),
		zap.String("difficulty", string(entities.DifficultyForLevel(level))),
		zap.Duration("elapsed", time.Since(start)),
	)

	return riddles
}

func (s *RiddleService) generate(ctx context.Context, level int) ([]entities.Riddle, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.llm.Generate(ctx, RiddlesSystemPrompt(), BuildRiddlesPrompt(level))
	if err != nil {
		return nil, fmt.Errorf("generate riddles: %w", err)
	}

	riddles, err := ParseRiddles(level, raw)
	if err != nil {
		return nil, fmt.Errorf("parse riddles: %w", err)
	}

	return riddles, nil
}

// FallbackRiddles returns the placeholder set used when the backend is unavailable.
func FallbackRiddles(level int) []entities.Riddle {
	riddles := make([]entities.Riddle, entities.RiddlesPerLevel)
	for i := range riddles {
		riddles[i] = entities.Riddle{
			ID:            fmt.Sprintf("fallback-%d-%d", level, i),
			Question:      fmt.Sprintf("لغز رقم %d للمرحلة %d (حدث خطأ في تحميل البيانات)", i+1, level),
			Options:       []string{"خيار 1", "خيار 2", "خيار 3", "خيار 4"},
			CorrectAnswer: 0,
			Explanation:   "هذا لغز مؤقت بسبب مشكلة في الاتصال.",
		}
	}
	return riddles
}
