package processor

import (
	"fmt"

	"refspring/internal/store"

	"github.com/google/uuid"
)

// CheckConsistency reports every affiliate or conversion whose references
// point at rows that no longer exist. It does not touch storage.
func CheckConsistency(campaigns, affiliates, conversions []store.EntityRef) []string {
	campaignIDs := make(map[uuid.UUID]struct{}, len(campaigns))
	for _, c := range campaigns {
		campaignIDs[c.ID] = struct{}{}
	}
	affiliateIDs := make(map[uuid.UUID]struct{}, len(affiliates))
	for _, a := range affiliates {
		affiliateIDs[a.ID] = struct{}{}
	}

	issues := []string{}
	for _, a := range affiliates {
		if a.CampaignID == nil {
			continue
		}
		if _, ok := campaignIDs[*a.CampaignID]; !ok {
			issues = append(issues, fmt.Sprintf("affiliate %s references missing campaign %s", a.ID, *a.CampaignID))
		}
	}
	for _, c := range conversions {
		if c.CampaignID != nil {
			if _, ok := campaignIDs[*c.CampaignID]; !ok {
				issues = append(issues, fmt.Sprintf("conversion %s references missing campaign %s", c.ID, *c.CampaignID))
			}
		}
		if c.AffiliateID != nil {
			if _, ok := affiliateIDs[*c.AffiliateID]; !ok {
				issues = append(issues, fmt.Sprintf("conversion %s references missing affiliate %s", c.ID, *c.AffiliateID))
			}
		}
	}
	return issues
}
