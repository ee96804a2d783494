package services

import "context"

// MailerSvcFacade defines the outbound transactional email operations
type MailerSvcFacade interface {
	// SendOtpEmail sends a login verification code.
	SendOtpEmail(ctx context.Context, to string, code string) error
	// SendPasswordResetEmail sends a password reset code.
	SendPasswordResetEmail(ctx context.Context, to string, code string) error
	// SendNewItemAlert tells subscribers a new item was reported.
	SendNewItemAlert(ctx context.Context, to []string, itemTitle string, itemType string, location string) error
	// SendClaimSubmittedEmail tells a reporter someone claims to have found their item.
	SendClaimSubmittedEmail(ctx context.Context, to string, itemTitle string) error
	// SendClaimDecisionEmail tells a claimant their claim was accepted or rejected.
	SendClaimDecisionEmail(ctx context.Context, to string, itemTitle string, accepted bool) error
}
