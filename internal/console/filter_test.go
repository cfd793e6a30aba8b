package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haulbid/admin-console/internal/platform"
)

func sampleUsers() []platform.User {
	return []platform.User{
		{ID: "1", FullName: "Ada Lovelace", Email: "ada@acme.com", CompanyName: "Acme Freight", Status: platform.AccountPending},
		{ID: "2", FullName: "Grace Hopper", Email: "grace@navy.mil", PhoneNumber: "+15550100", Status: platform.AccountApproved},
		{ID: "3", FullName: "Linus T", Email: "linus@kernel.org", Status: platform.AccountBanned},
	}
}

func TestFilterUsersEmptyQueryMatchesAll(t *testing.T) {
	got := FilterUsers(sampleUsers(), "", "")
	assert.Len(t, got, 3)
}

func TestFilterUsersCaseInsensitiveQuery(t *testing.T) {
	tests := []struct {
		name    string
		q       string
		wantIDs []string
	}{
		{"lowercase name fragment", "ada", []string{"1"}},
		{"uppercase email fragment", "NAVY.MIL", []string{"2"}},
		{"company fragment", "acme fre", []string{"1"}},
		{"phone fragment", "5550100", []string{"2"}},
		{"no match", "zebra", nil},
		{"fragment spanning adjacent fields", "lovelace ada@acme.com", []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterUsers(sampleUsers(), tt.q, "")
			ids := make([]string, 0, len(got))
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestFilterUsersStatus(t *testing.T) {
	got := FilterUsers(sampleUsers(), "", "APPROVED")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterUsers(sampleUsers(), "grace", "pending")
	assert.Empty(t, got)
}

func TestFilterShipments(t *testing.T) {
	shipments := []platform.Shipment{
		{ID: "s1", Status: platform.ShipmentLive,
			PickupLocation:   platform.Location{City: "Austin", State: "TX"},
			DeliveryLocation: platform.Location{City: "Denver", State: "CO"},
			VehicleDetails:   platform.VehicleDetails{Make: "Ford", Model: "F-150"}},
		{ID: "s2", Status: platform.ShipmentCompleted,
			PickupLocation: platform.Location{City: "Miami", State: "FL"},
			VehicleDetails: platform.VehicleDetails{Make: "Tesla", Model: "Model 3"}},
	}

	assert.Len(t, FilterShipments(shipments, "", ""), 2)
	assert.Len(t, FilterShipments(shipments, "ford", ""), 1)
	assert.Len(t, FilterShipments(shipments, "denver", ""), 1)
	assert.Len(t, FilterShipments(shipments, "", "LIVE"), 1)
	assert.Len(t, FilterShipments(shipments, "tesla", "LIVE"), 0)
	assert.Len(t, FilterShipments(shipments, "s2", "completed"), 1)
}

func TestFilterRequests(t *testing.T) {
	requests := []platform.WithdrawalRequest{
		{ID: "w1", Status: platform.WithdrawalPending, User: platform.Requester{FullName: "Ada Lovelace", Email: "ada@acme.com"}},
		{ID: "w2", Status: platform.WithdrawalProcessed, User: platform.Requester{FullName: "Grace Hopper", Email: "grace@navy.mil"}},
	}

	assert.Len(t, FilterRequests(requests, "", ""), 2)
	assert.Len(t, FilterRequests(requests, "ADA", ""), 1)
	assert.Len(t, FilterRequests(requests, "", "processed"), 1)
	assert.Len(t, FilterRequests(requests, "ada", "processed"), 0)
}

func TestFilterAdminsByRole(t *testing.T) {
	admins := []platform.Admin{
		{ID: "a1", FullName: "Root Admin", Email: "root@haulbid.io", Role: "superadmin"},
		{ID: "a2", FullName: "Ops Admin", Email: "ops@haulbid.io", Role: "admin"},
	}

	assert.Len(t, FilterAdmins(admins, "", ""), 2)
	assert.Len(t, FilterAdmins(admins, "", "SuperAdmin"), 1)
	assert.Len(t, FilterAdmins(admins, "ops", ""), 1)
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "badge badge-success", BadgeClass("approved"))
	assert.Equal(t, "badge badge-success", BadgeClass("COMPLETED"))
	assert.Equal(t, "badge badge-danger", BadgeClass("banned"))
	assert.Equal(t, "badge badge-info", BadgeClass("IN_TRANSIT"))
	assert.Equal(t, "badge badge-muted", BadgeClass("pending"))
	assert.Equal(t, "badge badge-warning", BadgeClass("ENDED"))
	assert.Equal(t, "badge badge-neutral", BadgeClass("SOME_FUTURE_STATUS"))
}
