package handlers

import (
	"log/slog"
	"net/http"

	"auctionhouse/pkg/auction"
	"auctionhouse/pkg/claims"
)

// DashboardHandler serves the signed-in user's projections. Routes under
// /api/dashboard are behind the gate, so claims are always in the context here.
type DashboardHandler struct {
	Service auction.ServiceAuction
	Logger  *slog.Logger
}

func NewDashboardHandler(service auction.ServiceAuction, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *DashboardHandler) Selling(w http.ResponseWriter, r *http.Request) {
	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}
	writeJSON(w, h.Logger, h.Service.GetBySeller(claims.User.Username))
}

func (h *DashboardHandler) Bids(w http.ResponseWriter, r *http.Request) {
	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}
	writeJSON(w, h.Logger, h.Service.GetByBidder(claims.User.ID))
}

func (h *DashboardHandler) Watchlist(w http.ResponseWriter, r *http.Request) {
	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}
	writeJSON(w, h.Logger, h.Service.GetByWatcher(claims.User.ID))
}
