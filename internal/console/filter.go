package console

import (
	"strings"

	"github.com/haulbid/admin-console/internal/platform"
)

// matchQuery reports whether q is a case-insensitive substring of the
// concatenated fields. An empty query matches everything.
func matchQuery(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), q)
}

// matchLabel is a case-insensitive exact match; an empty wanted value matches
// everything.
func matchLabel(wanted, actual string) bool {
	return wanted == "" || strings.EqualFold(wanted, actual)
}

// FilterUsers narrows the user list by free-text query and status.
func FilterUsers(users []platform.User, q, status string) []platform.User {
	out := make([]platform.User, 0, len(users))
	for _, u := range users {
		if !matchLabel(status, string(u.Status)) {
			continue
		}
		if !matchQuery(q, u.FullName, u.Email, u.PhoneNumber, u.CompanyName) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// FilterTransporters narrows the transporter list by free-text query and
// status.
func FilterTransporters(transporters []platform.Transporter, q, status string) []platform.Transporter {
	out := make([]platform.Transporter, 0, len(transporters))
	for _, tr := range transporters {
		if !matchLabel(status, string(tr.Status)) {
			continue
		}
		if !matchQuery(q, tr.FullName, tr.Email, tr.PhoneNumber, tr.CompanyName) {
			continue
		}
		out = append(out, tr)
	}
	return out
}

// FilterAdmins narrows the admin list by free-text query and role.
func FilterAdmins(admins []platform.Admin, q, role string) []platform.Admin {
	out := make([]platform.Admin, 0, len(admins))
	for _, a := range admins {
		if !matchLabel(role, a.Role) {
			continue
		}
		if !matchQuery(q, a.FullName, a.Email) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FilterShipments narrows the shipment list by free-text query and status.
func FilterShipments(shipments []platform.Shipment, q, status string) []platform.Shipment {
	out := make([]platform.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if !matchLabel(status, string(s.Status)) {
			continue
		}
		if !matchQuery(q,
			s.ID,
			s.PickupLocation.City, s.PickupLocation.State,
			s.DeliveryLocation.City, s.DeliveryLocation.State,
			s.VehicleDetails.Make, s.VehicleDetails.Model,
		) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterRequests narrows the withdrawal request list by free-text query and
// status.
func FilterRequests(requests []platform.WithdrawalRequest, q, status string) []platform.WithdrawalRequest {
	out := make([]platform.WithdrawalRequest, 0, len(requests))
	for _, r := range requests {
		if !matchLabel(status, string(r.Status)) {
			continue
		}
		if !matchQuery(q, r.User.FullName, r.User.Email, r.User.CompanyName) {
			continue
		}
		out = append(out, r)
	}
	return out
}
