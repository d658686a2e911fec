package endpoints

import (
	"github.com/collectionshq/collections-in-go/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterCollectionsEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
