package valueobjects

// ReconciliationLabel records the outcome the orphan sweep applied to a
// confirmed payment that had no linked resident profile.
type ReconciliationLabel string

const (
	ReconciliationLinkedToResident   ReconciliationLabel = "linked_to_resident"
	ReconciliationLinkedToHistorical ReconciliationLabel = "linked_to_historical"
	ReconciliationMarkedInvalid      ReconciliationLabel = "marked_invalid"
	ReconciliationDeleted            ReconciliationLabel = "deleted"
	ReconciliationCancelled          ReconciliationLabel = "cancelled"
)

func (l ReconciliationLabel) String() string {
	return string(l)
}
