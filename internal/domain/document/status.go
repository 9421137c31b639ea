package document

import "math"

// ApprovalState is the admin-approval overlay on a document.
type ApprovalState struct {
	Required bool
	// nil = awaiting, true = approved, false = rejected
	Approved *bool
}

func (a ApprovalState) rejected() bool {
	return a.Required && a.Approved != nil && !*a.Approved
}

// ComputeStatus derives a document's status from its signatory rows and the
// approval overlay. It is the single source of truth for the status column:
// callers run it after every mutation and persist the result in the same
// transaction.
//
// Policy: an explicit admin rejection wins over everything, including a
// previously completed document — it moves to rejected until the decision is
// reversed. With no rejection in play, all-signed (over a non-empty set)
// means completed, at least one signature means in_progress, and an untouched
// document stays pending.
func ComputeStatus(signatories []Signatory, approval ApprovalState) Status {
	if approval.rejected() {
		return StatusRejected
	}
	total := len(signatories)
	signed := 0
	for _, s := range signatories {
		if s.IsSigned {
			signed++
		}
	}
	switch {
	case total > 0 && signed == total:
		return StatusCompleted
	case signed > 0:
		return StatusInProgress
	default:
		return StatusPending
	}
}

// Progress returns the signed percentage, rounded to the nearest integer.
// Zero when there are no signatories.
func Progress(signatories []Signatory) int {
	total := len(signatories)
	if total == 0 {
		return 0
	}
	signed := 0
	for _, s := range signatories {
		if s.IsSigned {
			signed++
		}
	}
	return int(math.Round(100 * float64(signed) / float64(total)))
}
