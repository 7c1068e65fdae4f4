package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// AffiliatePayment is one line of a payment distribution breakdown
type AffiliatePayment struct {
	AffiliateID uuid.UUID `db:"affiliate_id" json:"affiliate_id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Amount      int64     `db:"amount" json:"amount"`
	Conversions int       `db:"conversions" json:"conversions"`
	// snapshotted so payouts still work after the affiliate row is gone
	StripeAccountID string `db:"stripe_account_id" json:"stripe_account_id,omitempty"`
}

// AffiliatePayments is stored as a JSONB array
type AffiliatePayments []AffiliatePayment

// Value implements the driver.Valuer interface for AffiliatePayments
func (a AffiliatePayments) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for AffiliatePayments
func (a *AffiliatePayments) Scan(value interface{}) error {
	if value == nil {
		*a = AffiliatePayments{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for AffiliatePayments")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*a = AffiliatePayments{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Total sums the amounts of every line
func (a AffiliatePayments) Total() int64 {
	var total int64
	for _, p := range a {
		total += p.Amount
	}
	return total
}

// Campaign is an owner's affiliate program. Only an active campaign accepts clicks.
type Campaign struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	OwnerID               uuid.UUID `db:"owner_id" json:"owner_id"`
	Name                  string    `db:"name" json:"name"`
	TargetURL             string    `db:"target_url" json:"target_url"`
	ShopDomain            *string   `db:"shop_domain" json:"shop_domain,omitempty"`
	IsActive              bool      `db:"is_active" json:"is_active"`
	IsDraft               bool      `db:"is_draft" json:"is_draft"`
	PaymentConfigured     bool      `db:"payment_configured" json:"payment_configured"`
	PaymentMethodID       *string   `db:"payment_method_id" json:"-"`
	DefaultCommissionRate float64   `db:"default_commission_rate" json:"default_commission_rate"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// Affiliate promotes exactly one campaign. TrackingCode never changes after creation.
type Affiliate struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CampaignID      uuid.UUID `db:"campaign_id" json:"campaign_id"`
	OwnerID         uuid.UUID `db:"owner_id" json:"owner_id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	CommissionRate  float64   `db:"commission_rate" json:"commission_rate"`
	TrackingCode    string    `db:"tracking_code" json:"tracking_code"`
	StripeAccountID *string   `db:"stripe_account_id" json:"stripe_account_id,omitempty"`
	PayoutStatus    string    `db:"payout_status" json:"payout_status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Click is append-only
type Click struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CampaignID  uuid.UUID `db:"campaign_id" json:"campaign_id"`
	AffiliateID uuid.UUID `db:"affiliate_id" json:"affiliate_id"`
	TargetURL   string    `db:"target_url" json:"target_url"`
	IPHash      string    `db:"ip_hash" json:"ip_hash"`
	UserAgent   string    `db:"user_agent" json:"user_agent"`
	Flagged     bool      `db:"flagged" json:"flagged"`
	FlagReason  *string   `db:"flag_reason" json:"flag_reason,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Conversion amounts are in minor currency units
type Conversion struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	CampaignID        uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	AffiliateID       uuid.UUID  `db:"affiliate_id" json:"affiliate_id"`
	OrderID           string     `db:"order_id" json:"order_id"`
	Amount            int64      `db:"amount" json:"amount"`
	Commission        int64      `db:"commission" json:"commission"`
	PlatformFee       int64      `db:"platform_fee" json:"platform_fee"`
	RiskScore         int        `db:"risk_score" json:"risk_score"`
	Status            string     `db:"status" json:"status"`
	Verified          bool       `db:"verified" json:"verified"`
	VerifiedBy        *string    `db:"verified_by" json:"verified_by,omitempty"`
	VerificationNotes *string    `db:"verification_notes" json:"verification_notes,omitempty"`
	PaidAt            *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// ShortLink maps a short code to a (campaign, affiliate, target) triple
type ShortLink struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ShortCode   string    `db:"short_code" json:"short_code"`
	CampaignID  uuid.UUID `db:"campaign_id" json:"campaign_id"`
	AffiliateID uuid.UUID `db:"affiliate_id" json:"affiliate_id"`
	TargetURL   string    `db:"target_url" json:"target_url"`
	ClickCount  int64     `db:"click_count" json:"click_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// VerificationQueueItem is a unit of verification work for one conversion
type VerificationQueueItem struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ConversionID uuid.UUID `db:"conversion_id" json:"conversion_id"`
	Status       string    `db:"status" json:"status"`
	Priority     int       `db:"priority" json:"priority"`
	RetryCount   int       `db:"retry_count" json:"retry_count"`
	LastError    *string   `db:"last_error" json:"last_error,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// AuditLogEntry records a conversion status transition
type AuditLogEntry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ConversionID uuid.UUID `db:"conversion_id" json:"conversion_id"`
	Action       string    `db:"action" json:"action"`
	OldValue     JSONB     `db:"old_value" json:"old_value"`
	NewValue     JSONB     `db:"new_value" json:"new_value"`
	PerformedBy  string    `db:"performed_by" json:"performed_by"`
	Notes        *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// BlacklistEntry bans an identity hash
type BlacklistEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	IPHash    string    `db:"ip_hash" json:"ip_hash"`
	Reason    string    `db:"reason" json:"reason"`
	Severity  string    `db:"severity" json:"severity"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	Source    string    `db:"source" json:"source"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SuspiciousActivity is an append-only fraud signal
type SuspiciousActivity struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Type          string    `db:"type" json:"type"`
	Severity      string    `db:"severity" json:"severity"`
	IPHash        string    `db:"ip_hash" json:"ip_hash"`
	UserAgent     string    `db:"user_agent" json:"user_agent"`
	Metadata      JSONB     `db:"metadata" json:"metadata"`
	Investigated  bool      `db:"investigated" json:"investigated"`
	FalsePositive bool      `db:"false_positive" json:"false_positive"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// PaymentDistribution is the settlement trail written before destructive operations.
// CampaignID and AffiliateID are not foreign keys since the record outlives both.
type PaymentDistribution struct {
	ID                uuid.UUID         `db:"id" json:"id"`
	CampaignID        uuid.UUID         `db:"campaign_id" json:"campaign_id"`
	AffiliateID       *uuid.UUID        `db:"affiliate_id" json:"affiliate_id,omitempty"`
	PerformedBy       uuid.UUID         `db:"performed_by" json:"performed_by"`
	TotalRevenue      int64             `db:"total_revenue" json:"total_revenue"`
	TotalCommissions  int64             `db:"total_commissions" json:"total_commissions"`
	PlatformFee       int64             `db:"platform_fee" json:"platform_fee"`
	AffiliatePayments AffiliatePayments `db:"affiliate_payments" json:"affiliate_payments"`
	TriggerReason     string            `db:"trigger_reason" json:"trigger_reason"`
	NotifiedAt        *time.Time        `db:"notified_at" json:"notified_at,omitempty"`
	TransferID        *string           `db:"transfer_id" json:"transfer_id,omitempty"`
	TransferStatus    string            `db:"transfer_status" json:"transfer_status"`
	CreatedAt         time.Time         `db:"created_at" json:"created_at"`
}

// EntityRef is the minimal projection used by the consistency checker
type EntityRef struct {
	ID          uuid.UUID  `db:"id"`
	CampaignID  *uuid.UUID `db:"campaign_id"`
	AffiliateID *uuid.UUID `db:"affiliate_id"`
}
