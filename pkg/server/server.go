package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/collectionshq/collections-in-go/pkg/server/middleware"
	"github.com/collectionshq/collections-in-go/pkg/server/store"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

type Server struct {
	Collections store.CollectionsStore
	Health      store.HealthStore
	Auth        *middleware.BearerAuthenticator
	Router      *mux.Router
	DB          *gorm.DB
	srv         *http.Server
}

func NewServer(
	collections store.CollectionsStore,
	health store.HealthStore,
	verifier *token.Verifier,
	db *gorm.DB,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Collections: collections,
		Health:      health,
		Auth:        middleware.NewBearerAuthenticator(verifier),
		Router:      router,
		DB:          db,
		srv:         srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
