package eligibility

import (
	"log"

	"github.com/orderpdf/order-document-service/internal/domain"
)

// Policy names a reprocessing rule for orders that may already have produced a
// document. Policies are configured once at startup, not per call.
type Policy string

const (
	// PolicyAlways processes every reference.
	PolicyAlways Policy = "ALWAYS"

	// PolicyFirstTimeOnly processes a reference only if it has never produced
	// a document before.
	PolicyFirstTimeOnly Policy = "FIRST_TIME_ONLY"

	// PolicyURLChanged is reserved for reprocessing when the stored document
	// location changed. The comparison is not implemented yet; the branch
	// currently accepts everything.
	PolicyURLChanged Policy = "URL_CHANGED"
)

// ShouldProcess decides whether a reference is eligible for (re)processing under
// the given policy. Pure function of its inputs; unknown policies default to
// ALWAYS with a diagnostic.
func ShouldProcess(ref *domain.OrderReference, policy Policy) bool {
	switch policy {
	case PolicyAlways:
		return true
	case PolicyFirstTimeOnly:
		return isFirstTimeProcessing(ref)
	case PolicyURLChanged:
		return urlHasChanged(ref)
	default:
		log.Printf("Unknown reprocess policy: %s, defaulting to ALWAYS", policy)
		return true
	}
}

func isFirstTimeProcessing(ref *domain.OrderReference) bool {
	return ref.PriorDocumentKey == ""
}

// urlHasChanged would compare against the previously stored document URL.
// There is no previous-URL tracking yet, so everything that reaches this
// branch is processed.
func urlHasChanged(ref *domain.OrderReference) bool {
	return true
}
