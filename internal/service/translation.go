package service

import (
	"context"
	"errors"
	"time"

	"tarjimon/internal/domain"
	"tarjimon/internal/metrics"
	"tarjimon/internal/translator"

	"go.uber.org/zap"
)

// TranslationService runs the detect + translate procedure
type TranslationService struct {
	translator translator.Translator
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(tr translator.Translator, m *metrics.Metrics, logger *zap.Logger) *TranslationService {
	if m == nil {
		m = metrics.NewNop()
	}
	return &TranslationService{
		translator: tr,
		metrics:    m,
		logger:     logger,
	}
}

// Translate detects the language of text and translates it into target.
// Gateway errors never escape: they are logged and reported as a failed outcome.
func (s *TranslationService) Translate(ctx context.Context, userID int64, text string, target domain.Language) domain.TranslationOutcome {
	start := time.Now()
	outcome := s.translate(ctx, userID, text, target)
	s.metrics.ObserveTranslation(target.Code, outcome.Kind.String(), time.Since(start))
	return outcome
}

func (s *TranslationService) translate(ctx context.Context, userID int64, text string, target domain.Language) domain.TranslationOutcome {
	outcome := domain.TranslationOutcome{
		Target:   target,
		Original: text,
	}

	source, err := s.translator.Detect(ctx, text)
	if err != nil {
		return s.fail(outcome, userID, domain.StageDetect, err)
	}
	outcome.SourceCode = source

	if source == target.Code {
		outcome.Kind = domain.OutcomeAlreadyInTarget
		return outcome
	}

	translated, err := s.translator.Translate(ctx, text, target.Code)
	if err != nil {
		return s.fail(outcome, userID, domain.StageTranslate, err)
	}

	s.logger.Info("Text translated",
		zap.Int64("user_id", userID),
		zap.String("source_lang", source),
		zap.String("target_lang", target.Code),
		zap.Int("text_length", len(text)),
	)

	outcome.Kind = domain.OutcomeTranslated
	outcome.Translated = translated
	return outcome
}

func (s *TranslationService) fail(outcome domain.TranslationOutcome, userID int64, stage domain.FailureStage, err error) domain.TranslationOutcome {
	reason := "unknown"
	var terr *translator.Error
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		reason = "cancelled"
	case errors.As(err, &terr):
		reason = string(terr.Kind)
	}

	s.logger.Error("Translation failed",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("stage", string(stage)),
		zap.String("reason", reason),
		zap.String("target_lang", outcome.Target.Code),
	)

	outcome.Kind = domain.OutcomeFailed
	outcome.Failure = &domain.TranslationFailure{Stage: stage, Reason: reason, Err: err}
	return outcome
}
