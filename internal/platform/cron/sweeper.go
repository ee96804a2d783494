package cron

import (
	"context"
	"log/slog"

	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// OtpSweeper periodically deletes used and expired OTP rows so the table
// does not grow without bound.
type OtpSweeper struct {
	cron       *cron.Cron
	otpService portssvc.OtpSvcFacade
	logger     *slog.Logger
}

// NewOtpSweeper creates a sweeper that runs nightly at midnight.
func NewOtpSweeper(otpService portssvc.OtpSvcFacade, logger *slog.Logger) *OtpSweeper {
	return &OtpSweeper{
		cron:       cron.New(),
		otpService: otpService,
		logger:     logger,
	}
}

// Start schedules the nightly sweep and starts the scheduler.
func (s *OtpSweeper) Start() error {
	_, err := s.cron.AddFunc("0 0 * * *", s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("OTP sweeper started (running nightly at midnight)")
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *OtpSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *OtpSweeper) sweep() {
	deleted, err := s.otpService.CleanupExpired(context.Background())
	if err != nil {
		s.logger.Error("OTP sweep failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("OTP sweep complete", slog.Int64("deleted", deleted))
}
