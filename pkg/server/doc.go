// Package server provides the HTTP server for the collections API.
//
// This package implements the core HTTP server that handles all collections
// REST API requests. It uses gorilla/mux for routing and provides middleware
// for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(collections, health, verifier, db, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Collections: collection persistence
//   - Health: database connectivity checks
//   - Auth: bearer token validation middleware
//   - Router: HTTP request router
//   - DB: Database connection
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers:
//
//   - POST /collections - Create a collection
//   - GET /collections/{collectionId} - Fetch a collection
//   - DELETE /collections/{collectionId} - Delete a collection
//   - GET / - Status page
//   - GET /ping - Database health check
package server
