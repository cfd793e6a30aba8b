package platform

import (
	"context"
	"fmt"
)

// AllShipments lists every shipment on the platform.
func (c *Client) AllShipments(ctx context.Context, token string) ([]Shipment, error) {
	return getList[Shipment](ctx, c, token, "/admin/get-all-shipments", "Failed to fetch shipments")
}

// ShipmentDetails fetches one shipment with populated parties and, when a bid
// has been charged, its payment record.
func (c *Client) ShipmentDetails(ctx context.Context, token, shipmentID string) (ShipmentDetails, error) {
	if shipmentID == "" {
		return ShipmentDetails{}, fmt.Errorf("invalid shipment ID")
	}

	details, err := getObject[ShipmentDetails](ctx, c, token, "/admin/get-shipment-details/"+shipmentID, "Failed to fetch shipment details")
	if err != nil {
		return ShipmentDetails{}, err
	}
	if details.Shipment.ID == "" {
		return ShipmentDetails{}, decodeErr(fmt.Errorf("shipment missing from detail response"))
	}
	return details, nil
}
