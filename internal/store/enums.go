package store

// Conversion ENUMs
const (
	ConversionStatusPending    = "pending"
	ConversionStatusVerified   = "verified"
	ConversionStatusRejected   = "rejected"
	ConversionStatusProcessing = "processing"
	ConversionStatusFailed     = "failed"
)

// Verification queue ENUMs
const (
	QueueStatusPending         = "pending"
	QueueStatusProcessing      = "processing"
	QueueStatusCompleted       = "completed"
	QueueStatusFailed          = "failed"
	QueueStatusFailedPermanent = "failed_permanent"
)

const (
	QueuePriorityDefault = 5
	QueuePriorityHigh    = 8
)

// Audit log actions
const (
	AuditActionAutoDecision   = "auto_decision"
	AuditActionManualDecision = "manual_decision"
	AuditActionManualReview   = "manual_review_required"
)

// VerifiedBySystem marks decisions made by the auto-decision engine
const VerifiedBySystem = "system-auto"

// Fraud severity ENUMs
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

const (
	BlacklistSourceManual    = "manual"
	BlacklistSourceAutomatic = "automatic"
)

// Suspicious activity types
const (
	ActivityTypeRateLimit                 = "rate_limit"
	ActivityTypeBlacklistedClick          = "blacklisted_click"
	ActivityTypeInvalidWebhookSignature   = "invalid_webhook_signature"
	ActivityTypeAffiliateCampaignMismatch = "affiliate_campaign_mismatch"
	ActivityTypeDuplicateClickBurst       = "duplicate_click_burst"
)

// Payment distribution trigger reasons
const (
	TriggerAffiliateDeletion = "affiliate_deletion"
	TriggerCampaignDeletion  = "campaign_deletion"
	TriggerManualPayout      = "manual_payout"
)

// Affiliate payout status ENUMs, driven by payment provider webhooks
const (
	PayoutStatusNone       = "none"
	PayoutStatusOnboarding = "onboarding"
	PayoutStatusEnabled    = "enabled"
	PayoutStatusRestricted = "restricted"
)

// Distribution transfer status ENUMs
const (
	TransferStatusNone    = "none"
	TransferStatusCreated = "created"
	TransferStatusPaid    = "paid"
	TransferStatusFailed  = "failed"
)
