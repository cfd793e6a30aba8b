package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// shipmentStatuses drive the filter dropdown on the shipments page.
var shipmentStatuses = []platform.ShipmentStatus{
	platform.ShipmentDraft,
	platform.ShipmentLive,
	platform.ShipmentEnded,
	platform.ShipmentAssigned,
	platform.ShipmentInTransit,
	platform.ShipmentDelivered,
	platform.ShipmentCompleted,
	platform.ShipmentDisputed,
	platform.ShipmentCancelled,
}

// Shipments lists every shipment with free-text and status filtering.
func (p *Pages) Shipments(c *fiber.Ctx) error {
	token := sessionToken(c)

	shipments, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyShipments(),
		func(ctx context.Context) ([]platform.Shipment, error) {
			return p.client.AllShipments(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	q, status := c.Query("q"), c.Query("status")
	return p.render(c, "shipments", fiber.Map{
		"Title":     "Shipments",
		"Active":    "shipments",
		"Shipments": FilterShipments(shipments, q, status),
		"Query":     q,
		"Status":    status,
		"Statuses":  shipmentStatuses,
		"Error":     banner,
	})
}

// ShipmentDetail shows one shipment with populated parties and its payment
// record when escrow has been charged.
func (p *Pages) ShipmentDetail(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")

	details, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyShipmentDetails(id),
		func(ctx context.Context) (platform.ShipmentDetails, error) {
			return p.client.ShipmentDetails(ctx, token, id)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	return p.render(c, "shipment_detail", fiber.Map{
		"Title":    "Shipment",
		"Active":   "shipments",
		"Details":  details,
		"Shipment": details.Shipment,
		"Payment":  details.Payment,
		"Error":    banner,
	})
}
