package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"auctionhouse/pkg/auction"
	"auctionhouse/pkg/gate"
	"auctionhouse/pkg/handlers"
	"auctionhouse/pkg/session"
	"auctionhouse/pkg/user"
)

const (
	staticPath      = "./static"
	auctionCategory = "art|electronics|fashion|collectibles|vehicles|books"
	hexID           = "[0-9a-fA-F]{24}"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger, accessGate *gate.Gate) {

	sessionRepo := session.NewMySQLSessionRepo(db)

	userService := user.NewService(user.NewMySQLRepo(db), sessionRepo)
	userHandler := handlers.NewUserHandler(userService, logger)

	auctionService := &auction.AuctionService{Repo: auction.NewMongoRepo(mongoDB)}
	auctionHandler := handlers.NewAuctionHandler(auctionService, logger)
	dashboardHandler := handlers.NewDashboardHandler(auctionService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("").Subrouter()
	auctionsRouter := api.PathPrefix("/auctions").Subrouter()
	auctionsRouter.Use(accessGate.ClaimsLoader())
	userRouter := api.PathPrefix("/user").Subrouter()
	dashboardRouter := api.PathPrefix("/dashboard").Subrouter()

	/* auth routers */
	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")

	/* auctions routers */
	auctionsRouter.HandleFunc("", auctionHandler.CreateAuction).Methods("POST")
	auctionsRouter.HandleFunc("/", auctionHandler.GetAllAuctions).Methods("GET")
	auctionsRouter.HandleFunc("/category/{category:(?:"+auctionCategory+")}", auctionHandler.GetAuctionsByCategory).Methods("GET")
	auctionsRouter.HandleFunc("/{auction_id:"+hexID+"}", auctionHandler.GetAuctionByID).Methods("GET")
	auctionsRouter.HandleFunc("/{auction_id:"+hexID+"}", auctionHandler.CancelAuction).Methods("DELETE")
	auctionsRouter.HandleFunc("/{auction_id:"+hexID+"}/bid", auctionHandler.PlaceBid).Methods("POST")
	auctionsRouter.HandleFunc("/{auction_id:"+hexID+"}/watchlist", auctionHandler.Watch).Methods("POST")
	auctionsRouter.HandleFunc("/{auction_id:"+hexID+"}/watchlist", auctionHandler.Unwatch).Methods("DELETE")

	/* user routers */
	userRouter.HandleFunc("/{login:[a-zA-Z0-9]+}", auctionHandler.GetAuctionsByUser).Methods("GET")

	/* dashboard routers, за гейтом */
	dashboardRouter.HandleFunc("/selling", dashboardHandler.Selling).Methods("GET")
	dashboardRouter.HandleFunc("/bids", dashboardHandler.Bids).Methods("GET")
	dashboardRouter.HandleFunc("/watchlist", dashboardHandler.Watchlist).Methods("GET")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func ServeFallback(r *mux.Router, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("[]")); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}
		http.ServeFile(w, r, "static/html/index.html")
	})
}

func StartServer(r *mux.Router) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost:8082", "\033[0m")
	if err := http.ListenAndServe(":8082", r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
