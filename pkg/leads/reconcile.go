package leads

import "github.com/jordanlanch/realtycrm/pkg/models"

// ReconcileSource identifies which path produced a batch of incoming
// records.
type ReconcileSource string

const (
	// SourceFetch is an authoritative refresh: the store wins wholesale.
	SourceFetch ReconcileSource = "fetch"
	// SourceImport is bulk ingestion: records append without id dedup.
	// Re-importing the same file duplicates its rows; that trade-off is
	// accepted because imported rows carry no stable external identifier.
	SourceImport ReconcileSource = "import"
)

// Reconcile merges incoming records into the existing working set. The
// result is always a fresh slice; neither input is mutated.
func Reconcile(existing, incoming []models.Lead, source ReconcileSource) []models.Lead {
	switch source {
	case SourceFetch:
		merged := make([]models.Lead, len(incoming))
		copy(merged, incoming)
		return merged
	case SourceImport:
		merged := make([]models.Lead, 0, len(existing)+len(incoming))
		merged = append(merged, existing...)
		merged = append(merged, incoming...)
		return merged
	default:
		merged := make([]models.Lead, len(existing))
		copy(merged, existing)
		return merged
	}
}
