package services

// ServiceContainer holds all the services for injection into the handlers
type ServiceContainer struct {
	User         UserSvcFacade
	Item         ItemSvcFacade
	Claim        ClaimSvcFacade
	Auth         AuthSvcFacade
	Otp          OtpSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Notification NotificationSvcFacade
	Mailer       MailerSvcFacade
}
