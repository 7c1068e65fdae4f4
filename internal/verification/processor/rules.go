package processor

// Outcome of the auto-decision heuristics
type Outcome string

const (
	OutcomeApprove Outcome = "approve"
	OutcomeReject  Outcome = "reject"
	OutcomeManual  Outcome = "manual"
)

// Decision is the first matching heuristic with its confidence
type Decision struct {
	Outcome    Outcome `json:"outcome"`
	Confidence int     `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Decide applies the rule table to an amount in minor units and a 0-100 risk
// score. Rules are checked in order and the first match wins.
func Decide(amount int64, riskScore int) Decision {
	switch {
	case amount < 1000:
		return Decision{OutcomeApprove, 95, "small amount"}
	case riskScore > 80:
		return Decision{OutcomeReject, 90, "high fraud risk"}
	case amount < 5000 && riskScore < 30:
		return Decision{OutcomeApprove, 85, "moderate amount with low risk"}
	case amount > 50000:
		return Decision{OutcomeManual, 100, "large amount requires manual review"}
	case riskScore > 50:
		return Decision{OutcomeManual, 80, "elevated fraud risk"}
	default:
		return Decision{OutcomeApprove, 75, "default approval"}
	}
}
