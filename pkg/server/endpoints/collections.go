package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/collectionshq/collections-in-go/pkg/audit"
	"github.com/collectionshq/collections-in-go/pkg/authz"
	"github.com/collectionshq/collections-in-go/pkg/identity"
	"github.com/collectionshq/collections-in-go/pkg/model"
	"github.com/collectionshq/collections-in-go/pkg/server"
	"github.com/collectionshq/collections-in-go/pkg/server/store"
)

// CreateCollectionRequest represents the body of POST /collections
type CreateCollectionRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ParentID    *string `json:"parentId"`
}

// OperationResponse describes the operation recorded for a mutation
type OperationResponse struct {
	OperationID string    `json:"operationId"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CollectionResponse is the API representation of a collection. Operation is
// only present on responses to mutations.
type CollectionResponse struct {
	CollectionID string             `json:"collectionId"`
	Title        string             `json:"title"`
	Description  *string            `json:"description"`
	ParentID     *string            `json:"parentId"`
	CreatedBy    string             `json:"createdBy"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	Operation    *OperationResponse `json:"operation,omitempty"`
}

func newCollectionResponse(collection *model.Collection, operation *model.Operation) CollectionResponse {
	resp := CollectionResponse{
		CollectionID: collection.CollectionID,
		Title:        collection.Title,
		Description:  collection.Description,
		ParentID:     collection.ParentID,
		CreatedBy:    collection.CreatedBy,
		CreatedAt:    collection.CreatedAt,
		UpdatedAt:    collection.UpdatedAt,
	}
	if operation != nil {
		resp.Operation = &OperationResponse{
			OperationID: operation.OperationID,
			Kind:        operation.Kind,
			Status:      operation.Status,
			CreatedAt:   operation.CreatedAt,
		}
	}
	return resp
}

func RegisterCollectionsEndpoints(s *server.Server) {
	router := s.Router
	collectionsStore := s.Collections

	collectionsRouter := router.PathPrefix("/collections").Subrouter()
	collectionsRouter.Use(s.Auth.Middleware)

	// POST /collections - Create a collection
	collectionsRouter.HandleFunc("", handleCreateCollection(collectionsStore)).Methods("POST")

	// GET /collections/{collectionId} - Fetch a single collection
	collectionsRouter.HandleFunc("/{collectionId}", handleGetCollection(collectionsStore)).Methods("GET")

	// DELETE /collections/{collectionId} - Delete a collection
	collectionsRouter.HandleFunc("/{collectionId}", handleDeleteCollection(collectionsStore)).Methods("DELETE")
}

func handleCreateCollection(collectionsStore store.CollectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		// Decode before the permission check so the check can target the
		// requested parent. Authorization failures take precedence over
		// malformed bodies, so the decode error is held until after.
		var req CreateCollectionRequest
		decodeErr := json.NewDecoder(r.Body).Decode(&req)
		defer func() { _ = r.Body.Close() }()

		parentID := ""
		if req.ParentID != nil {
			parentID = *req.ParentID
		}

		if !id.CanPerform(authz.ActionCreate, parentID) {
			// A binding can only name an existing collection, so when a
			// role-qualified principal is denied on a parent that does not
			// exist, the dangling parent is the real failure: 400, not 403.
			if id.Role.CanCreateCollections() && parentID != "" {
				if _, err := collectionsStore.GetCollection(parentID); errors.Is(err, store.ErrCollectionNotFound) {
					audit.Log(audit.CreateEvent{
						UserID:       id.SubjectID,
						ClientIP:     id.ClientIP(),
						Title:        req.Title,
						ParentID:     parentID,
						Success:      false,
						ErrorMessage: "parent collection not found",
					})
					respondWithError(w, http.StatusBadRequest, "parent collection not found")
					return
				}
			}
			audit.Log(audit.AccessDeniedEvent{
				UserID:     id.SubjectID,
				ClientIP:   id.ClientIP(),
				ResourceID: parentID,
				Action:     "create",
			})
			http.Error(w, "principal does not have createCollection permission", http.StatusForbidden)
			return
		}

		if decodeErr != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}
		if req.ParentID != nil && *req.ParentID == "" {
			respondWithError(w, http.StatusBadRequest, "parentId must not be empty")
			return
		}

		collection, operation, err := collectionsStore.CreateCollection(store.CreateCollectionParams{
			Title:       req.Title,
			Description: req.Description,
			ParentID:    req.ParentID,
			CreatedBy:   id.SubjectID,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrParentNotFound):
				audit.Log(audit.CreateEvent{
					UserID:       id.SubjectID,
					ClientIP:     id.ClientIP(),
					Title:        req.Title,
					ParentID:     parentID,
					Success:      false,
					ErrorMessage: "parent collection not found",
				})
				respondWithError(w, http.StatusBadRequest, "parent collection not found")
			case errors.Is(err, store.ErrTitleConflict):
				audit.Log(audit.CreateEvent{
					UserID:       id.SubjectID,
					ClientIP:     id.ClientIP(),
					Title:        req.Title,
					ParentID:     parentID,
					Success:      false,
					ErrorMessage: "title conflict",
				})
				respondWithError(w, http.StatusConflict, "a collection with this title already exists under the same parent")
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		audit.Log(audit.CreateEvent{
			UserID:       id.SubjectID,
			ClientIP:     id.ClientIP(),
			CollectionID: collection.CollectionID,
			Title:        collection.Title,
			ParentID:     parentID,
			Success:      true,
		})
		respondWithJSON(w, http.StatusOK, newCollectionResponse(collection, operation))
	}
}

func handleGetCollection(collectionsStore store.CollectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		collectionID := vars["collectionId"]

		id, _ := identity.Get(r.Context())

		collection, err := collectionsStore.GetCollection(collectionID)
		if err != nil {
			if errors.Is(err, store.ErrCollectionNotFound) {
				audit.Log(audit.ShowEvent{
					UserID:       id.SubjectID,
					ClientIP:     id.ClientIP(),
					CollectionID: collectionID,
					Success:      false,
					ErrorMessage: "collection not found",
				})
				respondWithError(w, http.StatusNotFound, "collection not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if !id.CanPerform(authz.ActionRead, collectionID) {
			audit.Log(audit.AccessDeniedEvent{
				UserID:     id.SubjectID,
				ClientIP:   id.ClientIP(),
				ResourceID: collectionID,
				Action:     "show",
			})
			http.Error(w, "principal does not have limitedView permission on collection", http.StatusForbidden)
			return
		}

		audit.Log(audit.ShowEvent{
			UserID:       id.SubjectID,
			ClientIP:     id.ClientIP(),
			CollectionID: collectionID,
			Success:      true,
		})
		respondWithJSON(w, http.StatusOK, newCollectionResponse(collection, nil))
	}
}

func handleDeleteCollection(collectionsStore store.CollectionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		collectionID := vars["collectionId"]

		id, _ := identity.Get(r.Context())

		if !id.CanPerform(authz.ActionDelete, collectionID) {
			audit.Log(audit.AccessDeniedEvent{
				UserID:     id.SubjectID,
				ClientIP:   id.ClientIP(),
				ResourceID: collectionID,
				Action:     "delete",
			})
			http.Error(w, "principal does not have permission to delete collections", http.StatusForbidden)
			return
		}

		if err := collectionsStore.DeleteCollection(collectionID, id.SubjectID); err != nil {
			if errors.Is(err, store.ErrCollectionNotFound) {
				audit.Log(audit.DeleteEvent{
					UserID:       id.SubjectID,
					ClientIP:     id.ClientIP(),
					CollectionID: collectionID,
					Success:      false,
					ErrorMessage: "collection not found",
				})
				respondWithError(w, http.StatusNotFound, "collection not found")
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		audit.Log(audit.DeleteEvent{
			UserID:       id.SubjectID,
			ClientIP:     id.ClientIP(),
			CollectionID: collectionID,
			Success:      true,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}
