package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"auctionhouse/pkg/auction"
	"auctionhouse/pkg/claims"
)

const (
	lenID           int    = 24
	typeError       string = "error"
	typeMessage     string = "message"
	muxVarAuctionID string = "auction_id"
	muxVarLogin     string = "login"
	muxVarCategory  string = "category"
)

type AuctionHandler struct {
	Service auction.ServiceAuction
	Logger  *slog.Logger
}

func NewAuctionHandler(service auction.ServiceAuction, logger *slog.Logger) *AuctionHandler {
	return &AuctionHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *AuctionHandler) GetAllAuctions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Logger, h.Service.GetAll())
}

func (h *AuctionHandler) CreateAuction(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var newAuction auction.Auction
	if err := json.NewDecoder(r.Body).Decode(&newAuction); err != nil {
		h.Logger.Error("invalid json", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	if err := h.Service.CreateAuction(&newAuction, claims.User.Username, claims.User.ID); err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, newAuction); ok {
		h.Logger.Info("new auction created", "user", claims.User.ID)
	}
}

func (h *AuctionHandler) GetAuctionByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	auctionID, ok := vars[muxVarAuctionID]
	if !ok || len(auctionID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid auction id")
		return
	}

	auction, err := h.Service.GetByID(auctionID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeMessage, err.Error())
		return
	}

	writeJSON(w, h.Logger, auction)
}

func (h *AuctionHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	vars := mux.Vars(r)

	auctionID, ok := vars[muxVarAuctionID]
	if !ok || len(auctionID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid auction id")
		return
	}

	var bid = make(map[string]int)
	if err := json.NewDecoder(r.Body).Decode(&bid); err != nil {
		h.Logger.Error("Invalid JSON", "error", err)
		writeError(w, http.StatusBadRequest, typeError, "invalid JSON payload")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	auction, err := h.Service.PlaceBid(auctionID, bid["amount"], &claims)
	if err != nil {
		h.Logger.Error("PlaceBid", "error", err)
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, auction); ok {
		h.Logger.Info("new bid placed", "user", claims.User.ID, "amount", bid["amount"])
	}
}

func (h *AuctionHandler) Watch(w http.ResponseWriter, r *http.Request) {
	h.updateWatchlist(w, r, h.Service.Watch, "watchlist add")
}

func (h *AuctionHandler) Unwatch(w http.ResponseWriter, r *http.Request) {
	h.updateWatchlist(w, r, h.Service.Unwatch, "watchlist remove")
}

func (h *AuctionHandler) updateWatchlist(
	w http.ResponseWriter,
	r *http.Request,
	update func(auctionID, userID string) (*auction.Auction, error),
	action string,
) {
	vars := mux.Vars(r)

	auctionID, ok := vars[muxVarAuctionID]
	if !ok || len(auctionID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid auction id")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	auction, err := update(auctionID, claims.User.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, auction); ok {
		h.Logger.Info(action, "user", claims.User.ID, muxVarAuctionID, auctionID)
	}
}

func (h *AuctionHandler) CancelAuction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	auctionID, ok := vars[muxVarAuctionID]
	if !ok || len(auctionID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid auction id")
		return
	}

	var claims claims.Claims
	if ok := getClaimsFromContext(w, r, &claims); !ok {
		return
	}

	auction, err := h.Service.Cancel(auctionID, &claims)
	if err != nil {
		if err.Error() == "only the seller or an admin can cancel" {
			writeError(w, http.StatusForbidden, typeError, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, auction); ok {
		h.Logger.Info("auction cancelled", "user", claims.User.ID, muxVarAuctionID, auctionID)
	}
}

func (h *AuctionHandler) GetAuctionsByUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	login, ok := vars[muxVarLogin]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid user login")
		return
	}

	writeJSON(w, h.Logger, h.Service.GetBySeller(login))
}

func (h *AuctionHandler) GetAuctionsByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	category, ok := vars[muxVarCategory]
	if !ok {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid category")
		return
	}

	writeJSON(w, h.Logger, h.Service.GetByCategory(category))
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, data any) bool {
	resp, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal response", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed json marshal")
		return false
	}

	w.Header().Set("Content-Type", "application/json")

	if _, err := w.Write(resp); err != nil {
		logger.Error("Failed to write response to client", "error", err)
		return false
	}
	return true
}

func getClaimsFromContext(w http.ResponseWriter, r *http.Request, c *claims.Claims) bool {
	val, ok := r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	if !ok || val == nil || val.User.ID == "" {
		writeError(w, http.StatusUnauthorized, typeMessage, "unauthorized")
		return false
	}
	*c = *val
	return true
}

func writeError(w http.ResponseWriter, status int, field, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{field: msg}); err != nil {
		return
	}
}
