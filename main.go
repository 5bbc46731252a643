package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"p9e.in/agrimon/config"
	"p9e.in/agrimon/handlers"
	"p9e.in/agrimon/middleware"
	"p9e.in/agrimon/routes"
)

var (
	Version   = "dev"
	BuildTime = ""
)

func main() {

	versionFlag := flag.Bool("version", false, "Print version info and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("Version:   %s\n", Version)
		fmt.Printf("BuildTime: %s\n", BuildTime)
		os.Exit(0)
	}

	config.Connect()
	if err := config.Migrations(config.DB); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
	if err := config.SeedAdminUser(); err != nil {
		logrus.WithError(err).Warn("admin seeding failed")
	}

	authCfg := config.LoadAuthConfig()
	tokens := middleware.NewTokenService(authCfg)
	auth := handlers.NewAuthHandler(tokens, authCfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := routes.RegisterRoutes(auth, tokens)
	handlerWithCORS := enableCORS(handler)
	logrus.WithField("port", port).Info("Server starting")
	logrus.Fatal(http.ListenAndServe(":"+port, handlerWithCORS))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Required CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		// Handle preflight (OPTIONS)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
