package platform

import (
	"context"
	"encoding/json"
	"net/http"
)

// Stat returns the aggregate dashboard figures. Unlike the list endpoints the
// backend serves these at the top level of the body.
func (c *Client) Stat(ctx context.Context, token string) (DashboardStat, error) {
	status, raw, err := c.do(ctx, http.MethodGet, "/admin/dashboard-stat", token, nil)
	if err != nil {
		return DashboardStat{}, err
	}
	if !success(status) {
		return DashboardStat{}, apiError(status, raw, "Failed to fetch dashboard statistics")
	}

	var stat DashboardStat
	if err := json.Unmarshal(raw, &stat); err != nil {
		return DashboardStat{}, decodeErr(err)
	}
	return stat, nil
}

// RecentShipments returns the latest shipments for the dashboard feed.
func (c *Client) RecentShipments(ctx context.Context, token string) ([]Shipment, error) {
	return getList[Shipment](ctx, c, token, "/admin/recent-shipments", "Failed to fetch recent shipments")
}
