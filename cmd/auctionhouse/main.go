package main

import (
	"auctionhouse/internal/config"
	"auctionhouse/internal/logger"
	"auctionhouse/internal/mongo"
	"auctionhouse/internal/mysql"
	"auctionhouse/internal/routing"
	"auctionhouse/pkg/gate"
	"auctionhouse/pkg/middleware"
	"auctionhouse/pkg/session"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	db := mysql.LoadDB()
	defer db.Close()

	mongoDB := mongo.LoadDB()

	logger := logger.Load()

	accessGate := gate.New(gate.DefaultPolicy(), gate.NewSessionLookup(session.NewMySQLSessionRepo(db)))

	r := mux.NewRouter()
	r.Use(accessGate.Middleware())

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Panic)

	routing.InitRoutes(api, db, mongoDB, logger, accessGate)
	routing.ServeStaticFiles(r)
	routing.ServeFallback(r, logger)
	routing.StartServer(r) // start sever on localhost:8082
}
