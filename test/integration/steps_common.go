package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cucumber/godog"

	"github.com/collectionshq/collections-in-go/pkg/authz"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	subject      string
	role         authz.Role
	bindings     []authz.AccessBinding
	// collections created during the scenario, by title
	collectionIDs map[string]string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:            tc,
		collectionIDs: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a collections server is running$`, s.aCollectionsServerIsRunning)
	sc.Step(`^I am authenticated as "([^"]*)" with role "([^"]*)"$`, s.iAmAuthenticatedAs)
	sc.Step(`^I am not authenticated$`, s.iAmNotAuthenticated)
	sc.Step(`^I have a "([^"]*)" binding on the collection "([^"]*)"$`, s.iHaveABindingOn)

	// Collection steps
	sc.Step(`^I create a collection titled "([^"]*)"$`, s.iCreateACollection)
	sc.Step(`^I create a collection titled "([^"]*)" under "([^"]*)"$`, s.iCreateACollectionUnder)
	sc.Step(`^I create a collection titled "([^"]*)" under the id "([^"]*)"$`, s.iCreateACollectionUnderID)
	sc.Step(`^I fetch the collection "([^"]*)"$`, s.iFetchTheCollection)
	sc.Step(`^I fetch the collection with id "([^"]*)"$`, s.iFetchTheCollectionByID)
	sc.Step(`^I delete the collection "([^"]*)"$`, s.iDeleteTheCollection)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain a collection titled "([^"]*)"$`, s.theResponseShouldContainACollection)
	sc.Step(`^the response should contain an operation of kind "([^"]*)"$`, s.theResponseShouldContainAnOperation)
	sc.Step(`^the response should not contain an operation$`, s.theResponseShouldNotContainAnOperation)

	// Database assertions
	sc.Step(`^the collection "([^"]*)" should be soft deleted$`, s.theCollectionShouldBeSoftDeleted)
	sc.Step(`^an operation of kind "([^"]*)" should exist for the collection "([^"]*)"$`, s.anOperationShouldExistFor)
}

// collectionResponse mirrors the API response shape the steps assert on
type collectionResponse struct {
	CollectionID string  `json:"collectionId"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	ParentID     *string `json:"parentId"`
	Operation    *struct {
		OperationID string `json:"operationId"`
		Kind        string `json:"kind"`
		Status      string `json:"status"`
	} `json:"operation"`
}

// Background steps

func (s *StepsContext) aCollectionsServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) iAmAuthenticatedAs(subject, roleName string) error {
	role, err := authz.RoleString(roleName)
	if err != nil {
		return err
	}
	s.subject = subject
	s.role = role
	s.bindings = nil
	return nil
}

func (s *StepsContext) iAmNotAuthenticated() error {
	s.subject = ""
	s.role = authz.RoleViewer
	s.bindings = nil
	return nil
}

func (s *StepsContext) iHaveABindingOn(permissionName, title string) error {
	permission, err := authz.PermissionString(permissionName)
	if err != nil {
		return err
	}
	collectionID, ok := s.collectionIDs[title]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", title)
	}
	s.bindings = append(s.bindings, authz.AccessBinding{
		ResourceID: collectionID,
		Permission: permission,
	})
	return nil
}

// bearerToken mints a token for the current principal. Tokens are issued per
// request so binding steps can run after the authentication step.
func (s *StepsContext) bearerToken() (string, error) {
	signer := token.NewSigner(s.tc.TokenKey, time.Minute)
	return signer.Issue(s.subject, s.role, s.bindings)
}

func (s *StepsContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if s.subject != "" {
		signed, err := s.bearerToken()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+signed)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Collection steps

func (s *StepsContext) iCreateACollection(title string) error {
	return s.createCollection(title, nil)
}

func (s *StepsContext) iCreateACollectionUnder(title, parentTitle string) error {
	parentID, ok := s.collectionIDs[parentTitle]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", parentTitle)
	}
	return s.createCollection(title, &parentID)
}

func (s *StepsContext) iCreateACollectionUnderID(title, parentID string) error {
	return s.createCollection(title, &parentID)
}

func (s *StepsContext) createCollection(title string, parentID *string) error {
	payload := map[string]any{"title": title}
	if parentID != nil {
		payload["parentId"] = *parentID
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	if err := s.doRequest("POST", "/collections", body); err != nil {
		return err
	}

	// Remember the id so later steps can refer to the collection by title
	if s.response.StatusCode == http.StatusOK {
		var resp collectionResponse
		if err := json.Unmarshal(s.responseBody, &resp); err == nil && resp.CollectionID != "" {
			s.collectionIDs[title] = resp.CollectionID
		}
	}
	return nil
}

func (s *StepsContext) iFetchTheCollection(title string) error {
	collectionID, ok := s.collectionIDs[title]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", title)
	}
	return s.doRequest("GET", "/collections/"+collectionID, nil)
}

func (s *StepsContext) iFetchTheCollectionByID(collectionID string) error {
	return s.doRequest("GET", "/collections/"+collectionID, nil)
}

func (s *StepsContext) iDeleteTheCollection(title string) error {
	collectionID, ok := s.collectionIDs[title]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", title)
	}
	return s.doRequest("DELETE", "/collections/"+collectionID, nil)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainACollection(title string) error {
	var resp collectionResponse
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Title != title {
		return fmt.Errorf("expected collection titled %q, got %q", title, resp.Title)
	}
	if resp.CollectionID == "" {
		return fmt.Errorf("missing collectionId in response")
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainAnOperation(kind string) error {
	var resp collectionResponse
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Operation == nil {
		return fmt.Errorf("missing operation in response")
	}
	if resp.Operation.Kind != kind {
		return fmt.Errorf("expected operation kind %q, got %q", kind, resp.Operation.Kind)
	}
	if resp.Operation.Status != "done" {
		return fmt.Errorf("expected operation status %q, got %q", "done", resp.Operation.Status)
	}
	return nil
}

func (s *StepsContext) theResponseShouldNotContainAnOperation() error {
	var resp collectionResponse
	if err := json.Unmarshal(s.responseBody, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Operation != nil {
		return fmt.Errorf("expected no operation in response, got kind %q", resp.Operation.Kind)
	}
	return nil
}

// Database assertions

func (s *StepsContext) theCollectionShouldBeSoftDeleted(title string) error {
	collectionID, ok := s.collectionIDs[title]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", title)
	}

	var count int64
	if err := s.tc.DB.Raw(`
		SELECT COUNT(*) FROM collections WHERE collection_id = ? AND deleted_at IS NOT NULL
	`, collectionID).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("collection %s is not soft deleted", collectionID)
	}
	return nil
}

func (s *StepsContext) anOperationShouldExistFor(kind, title string) error {
	collectionID, ok := s.collectionIDs[title]
	if !ok {
		return fmt.Errorf("no collection %q was created in this scenario", title)
	}

	var count int64
	if err := s.tc.DB.Raw(`
		SELECT COUNT(*) FROM operations WHERE entity_id = ? AND kind = ? AND status = 'done'
	`, collectionID, kind).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("no %s operation found for collection %s", kind, collectionID)
	}
	return nil
}
