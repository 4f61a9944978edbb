package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/uniseparate/internal/config"
	"github.com/JonMunkholm/uniseparate/internal/logging"
	"github.com/JonMunkholm/uniseparate/internal/usv"
	"github.com/google/uuid"
	"github.com/viant/afs"
)

// Service runs conversions under the concurrency limit and records them.
type Service struct {
	store        HistoryStore
	limiter      *ConvertLimiter
	maxInputSize int64
	historyLimit int
	fs           afs.Service
	now          func() time.Time
}

// NewService creates a Service. A nil store keeps history in memory.
func NewService(store HistoryStore, cfg config.ConvertConfig) *Service {
	if store == nil {
		store = NewMemoryHistoryStore(cfg.HistoryLimit)
	}
	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Service{
		store:        store,
		limiter:      NewConvertLimiter(cfg.MaxConcurrent, cfg.MaxWaitTime),
		maxInputSize: cfg.MaxInputSize,
		historyLimit: historyLimit,
		fs:           afs.New(),
		now:          time.Now,
	}
}

// Convert reads req.Input and converts it in req.Direction.
//
// Engine failures are returned as produced by the usv package, so callers can
// match them with errors.Is. Every attempt that reaches the engine is recorded
// in the history.
func (s *Service) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	if !req.Direction.Valid() {
		return nil, fmt.Errorf("unknown direction %q", string(req.Direction))
	}

	// Slots cover engine work only; the body is read first.
	content, err := ReadInput(req.Input, s.maxInputSize)
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	log := logging.WithFields(ctx,
		"direction", string(req.Direction),
		"file", req.FileName,
	)

	start := s.now()
	id := uuid.New()
	source, target := req.Direction.Source(), req.Direction.Target()
	outputName := OutputFileName(req.FileName, target)
	before := usv.Statistics(content, source)

	entry := HistoryEntry{
		ID:         id,
		Direction:  req.Direction,
		FileName:   req.FileName,
		OutputName: outputName,
		Rows:       before.Rows,
		Columns:    before.Columns,
		InputChars: before.Characters,
		IPAddress:  IPAddressFromContext(ctx),
		UserAgent:  UserAgentFromContext(ctx),
		CreatedAt:  start,
	}

	output, err := req.Direction.convert(content)
	duration := s.now().Sub(start)
	entry.DurationMs = duration.Milliseconds()

	if err != nil {
		entry.Status = StatusFailed
		entry.ErrorCode = MapError(err).Code
		entry.ErrorMessage = err.Error()
		s.record(ctx, entry)
		log.Info("conversion failed", "error", err, "code", entry.ErrorCode)
		return nil, err
	}

	after := usv.Statistics(output, target)
	entry.Status = StatusSucceeded
	entry.OutputChars = after.Characters
	s.record(ctx, entry)

	log.Info("conversion completed",
		"rows", before.Rows,
		"columns", before.Columns,
		"duration_ms", entry.DurationMs,
	)

	return &ConvertResult{
		ID:         id,
		Direction:  req.Direction,
		FileName:   req.FileName,
		OutputName: outputName,
		Output:     output,
		Before:     before,
		After:      after,
		Duration:   duration,
	}, nil
}

// record stores a history entry. Failures are logged, never returned.
func (s *Service) record(ctx context.Context, entry HistoryEntry) {
	// The conversion may finish after the client disconnects.
	ctx = context.WithoutCancel(ctx)
	if err := s.store.Record(ctx, entry); err != nil {
		logging.FromContext(ctx).Warn("failed to record conversion history",
			"id", entry.ID.String(),
			"error", err,
		)
	}
}

// Stats returns the statistics of content read as format. It never fails.
func (s *Service) Stats(content string, format usv.Format) usv.Stats {
	return usv.Statistics(content, format)
}

// History returns up to limit recent conversions, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}
	return s.store.List(ctx, limit)
}

// HistoryEntry returns one recorded conversion.
func (s *Service) HistoryEntry(ctx context.Context, id uuid.UUID) (*HistoryEntry, error) {
	return s.store.Get(ctx, id)
}

// LimiterStatus reports conversion slot usage.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForDrain blocks until in-flight conversions finish or ctx ends.
func (s *Service) WaitForDrain(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
