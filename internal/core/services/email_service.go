package services

import (
	"context"
	"fmt"
	"strings"

	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/middleware"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/resendlabs/resend-go"
)

// emailService sends transactional email through Resend. When no API key is
// configured (local development), messages are logged instead of sent.
type emailService struct {
	client    *resend.Client
	fromEmail string
}

// NewEmailService creates a new instance of emailService.
func NewEmailService(cfg *config.Config) portssvc.MailerSvcFacade {
	svc := &emailService{fromEmail: cfg.FromEmail}
	if cfg.ResendAPIKey != "" {
		svc.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return svc
}

var _ portssvc.MailerSvcFacade = (*emailService)(nil)

func (s *emailService) send(ctx context.Context, to []string, subject string, html string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.client == nil {
		logger.Info("Email sending skipped, no API key configured", "to", strings.Join(to, ","), "subject", subject)
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email %q: %w", subject, err)
	}
	return nil
}

func (s *emailService) SendOtpEmail(ctx context.Context, to string, code string) error {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Your Foundly Login Code</h2>
			<p>Use this code to sign in:</p>
			<div style="background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 8px; margin: 20px 0;">
				%s
			</div>
			<p style="color: #666;">This code will expire in 5 minutes.</p>
			<p style="color: #666;">If you didn't request this code, please ignore this email.</p>
		</div>
	`, code)
	return s.send(ctx, []string{to}, "Your Foundly Login Code", html)
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, to string, code string) error {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Reset Your Foundly Password</h2>
			<p>Use this code to reset your password:</p>
			<div style="background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 8px; margin: 20px 0;">
				%s
			</div>
			<p style="color: #666;">This code will expire in 10 minutes.</p>
			<p style="color: #666;">If you didn't request a password reset, you can safely ignore this email.</p>
		</div>
	`, code)
	return s.send(ctx, []string{to}, "Reset Your Foundly Password", html)
}

func (s *emailService) SendNewItemAlert(ctx context.Context, to []string, itemTitle string, itemType string, location string) error {
	if len(to) == 0 {
		return nil
	}
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">New %s item reported</h2>
			<p><strong>%s</strong> was just reported near <strong>%s</strong>.</p>
			<p>If this looks like something you lost or found, open Foundly to get in touch.</p>
			<p style="color: #999; font-size: 12px;">You can turn these alerts off in your notification settings.</p>
		</div>
	`, itemType, itemTitle, location)
	return s.send(ctx, to, fmt.Sprintf("New %s item: %s", itemType, itemTitle), html)
}

func (s *emailService) SendClaimSubmittedEmail(ctx context.Context, to string, itemTitle string) error {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Someone may have found your item</h2>
			<p>A new claim was submitted for <strong>%s</strong>.</p>
			<p>Review the claim in Foundly to accept or reject it.</p>
		</div>
	`, itemTitle)
	return s.send(ctx, []string{to}, "New claim on your item", html)
}

func (s *emailService) SendClaimDecisionEmail(ctx context.Context, to string, itemTitle string, accepted bool) error {
	decision := "rejected"
	body := "The owner reviewed your claim and it was not accepted this time."
	if accepted {
		decision = "accepted"
		body = "The owner accepted your claim. Reward points have been added to your account."
	}
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #333;">Your claim was %s</h2>
			<p>Your claim on <strong>%s</strong> was %s.</p>
			<p>%s</p>
		</div>
	`, decision, itemTitle, decision, body)
	return s.send(ctx, []string{to}, fmt.Sprintf("Your claim was %s", decision), html)
}
