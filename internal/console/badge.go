package console

import "strings"

// BadgeClass maps a backend status label to a badge CSS class. Statuses are
// opaque labels to the console; unknown values get the neutral class.
func BadgeClass(status string) string {
	switch strings.ToUpper(status) {
	case "APPROVED", "COMPLETED", "DELIVERED", "PROCESSED", "PAID_OUT":
		return "badge badge-success"
	case "PENDING", "DRAFT", "NONE":
		return "badge badge-muted"
	case "REJECTED", "BANNED", "DISPUTED", "CANCELLED", "REFUNDED":
		return "badge badge-danger"
	case "LIVE", "ASSIGNED", "IN_TRANSIT", "PAID_IN_ESCROW":
		return "badge badge-info"
	case "ENDED":
		return "badge badge-warning"
	default:
		return "badge badge-neutral"
	}
}
