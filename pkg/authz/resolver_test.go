package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerformCreate(t *testing.T) {
	rootID := "" // root-level create has no parent resource
	parentID := "c2a9f6a0-8a3d-4d3e-9f2b-1f0a5f1c2d3e"

	tests := []struct {
		name     string
		role     Role
		bindings []AccessBinding
		resource string
		want     bool
	}{
		{
			name:     "editor may create at root without bindings",
			role:     RoleEditor,
			resource: rootID,
			want:     true,
		},
		{
			name:     "viewer may not create at root",
			role:     RoleViewer,
			resource: rootID,
			want:     false,
		},
		{
			name:     "editor without binding may not create nested",
			role:     RoleEditor,
			resource: parentID,
			want:     false,
		},
		{
			name: "editor with createCollection binding on parent may create nested",
			role: RoleEditor,
			bindings: []AccessBinding{
				{ResourceID: parentID, Permission: PermissionCreateCollection},
			},
			resource: parentID,
			want:     true,
		},
		{
			name: "binding on a different resource does not apply",
			role: RoleEditor,
			bindings: []AccessBinding{
				{ResourceID: "some-other-id", Permission: PermissionCreateCollection},
			},
			resource: parentID,
			want:     false,
		},
		{
			name: "limitedView binding does not cover create",
			role: RoleEditor,
			bindings: []AccessBinding{
				{ResourceID: parentID, Permission: PermissionLimitedView},
			},
			resource: parentID,
			want:     false,
		},
		{
			name: "viewer with createCollection binding still denied by role gate",
			role: RoleViewer,
			bindings: []AccessBinding{
				{ResourceID: parentID, Permission: PermissionCreateCollection},
			},
			resource: parentID,
			want:     false,
		},
		{
			name:     "admin may create nested without bindings",
			role:     RoleAdmin,
			resource: parentID,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanPerform(tt.role, tt.bindings, ActionCreate, tt.resource)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanPerformRead(t *testing.T) {
	collectionID := "3b6f8f1e-64a7-4c2d-8e5a-0d9b7c6a5f4e"

	t.Run("limitedView binding on the collection allows read", func(t *testing.T) {
		bindings := []AccessBinding{
			{ResourceID: collectionID, Permission: PermissionLimitedView},
		}
		assert.True(t, CanPerform(RoleViewer, bindings, ActionRead, collectionID))
	})

	t.Run("role alone does not allow read", func(t *testing.T) {
		assert.False(t, CanPerform(RoleEditor, nil, ActionRead, collectionID))
	})

	t.Run("binding on another collection does not allow read", func(t *testing.T) {
		bindings := []AccessBinding{
			{ResourceID: "another-id", Permission: PermissionLimitedView},
		}
		assert.False(t, CanPerform(RoleViewer, bindings, ActionRead, collectionID))
	})

	t.Run("createCollection binding does not cover read", func(t *testing.T) {
		bindings := []AccessBinding{
			{ResourceID: collectionID, Permission: PermissionCreateCollection},
		}
		assert.False(t, CanPerform(RoleViewer, bindings, ActionRead, collectionID))
	})

	t.Run("admin reads without bindings", func(t *testing.T) {
		assert.True(t, CanPerform(RoleAdmin, nil, ActionRead, collectionID))
	})
}

func TestCanPerformDelete(t *testing.T) {
	collectionID := "3b6f8f1e-64a7-4c2d-8e5a-0d9b7c6a5f4e"

	assert.True(t, CanPerform(RoleAdmin, nil, ActionDelete, collectionID))
	assert.False(t, CanPerform(RoleEditor, nil, ActionDelete, collectionID))

	// No delete permission exists for bindings to grant.
	bindings := []AccessBinding{
		{ResourceID: collectionID, Permission: PermissionCreateCollection},
		{ResourceID: collectionID, Permission: PermissionLimitedView},
	}
	assert.False(t, CanPerform(RoleEditor, bindings, ActionDelete, collectionID))
}

func TestCanPerformUnknownAction(t *testing.T) {
	assert.False(t, CanPerform(RoleAdmin, nil, Action(99), "anything"))
}

func TestPermissionCovers(t *testing.T) {
	assert.True(t, PermissionLimitedView.Covers(ActionRead))
	assert.False(t, PermissionLimitedView.Covers(ActionCreate))
	assert.True(t, PermissionCreateCollection.Covers(ActionCreate))
	assert.False(t, PermissionCreateCollection.Covers(ActionRead))
	assert.False(t, PermissionCreateCollection.Covers(ActionDelete))
}

func TestEnumRoundTrips(t *testing.T) {
	for _, p := range PermissionValues() {
		parsed, err := PermissionString(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	role, err := RoleString("editor")
	assert.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	_, err = RoleString("superuser")
	assert.Error(t, err)
}
