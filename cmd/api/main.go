package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"blogapi/cmd/app"
	"blogapi/internal/config"
	handlers "blogapi/internal/handler"
	"blogapi/internal/middleware"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal().Msg("JWT_SECRET_KEY is not set in the .env file")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	router.HandleFunc("/register-user/", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/login/", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/logout/", handler.Logout).Methods(http.MethodPost)
	router.HandleFunc("/refresh-token/", handler.RefreshToken).Methods(http.MethodPost)

	router.HandleFunc("/posts/", handler.ListPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts/", handler.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id}/", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}/", handler.UpdatePost).Methods(http.MethodPut, http.MethodPatch)
	router.HandleFunc("/posts/{id}/", handler.DeletePost).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(services.Token),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Info().Str("addr", addr).Str("database", cfg.DB.DbNAME).Msg("server started")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
