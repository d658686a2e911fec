package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := CreateEvent{
		UserID:       "alice",
		ClientIP:     "192.168.1.1",
		CollectionID: "col-1",
		Title:        "Reports",
		Success:      true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "collections") {
		t.Error("Expected app name 'collections' in output")
	}
	if !strings.Contains(output, "create") {
		t.Error("Expected message ID 'create' in output")
	}
	if !strings.Contains(output, "alice") {
		t.Error("Expected user id in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "created collection") {
		t.Error("Expected success message in output")
	}
}

func TestCreateEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     CreateEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful root create",
			event: CreateEvent{
				UserID:       "alice",
				ClientIP:     "10.0.0.1",
				CollectionID: "col-1",
				Title:        "Reports",
				Success:      true,
			},
			wantMsg:   `created collection "Reports"`,
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "create",
		},
		{
			name: "successful nested create",
			event: CreateEvent{
				UserID:       "alice",
				ClientIP:     "10.0.0.1",
				CollectionID: "col-2",
				Title:        "Q3",
				ParentID:     "col-1",
				Success:      true,
			},
			wantMsg:   "under col-1",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "create",
		},
		{
			name: "failed create",
			event: CreateEvent{
				UserID:       "alice",
				ClientIP:     "10.0.0.1",
				Title:        "Reports",
				Success:      false,
				ErrorMessage: "title conflict",
			},
			wantMsg:   "tried to create",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestShowEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   ShowEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful show",
			event: ShowEvent{
				UserID:       "alice",
				ClientIP:     "10.0.0.1",
				CollectionID: "col-1",
				Success:      true,
			},
			wantMsg: "fetched collection col-1",
			wantSev: SeverityInfo,
		},
		{
			name: "failed show",
			event: ShowEvent{
				UserID:       "bob",
				ClientIP:     "10.0.0.1",
				CollectionID: "col-1",
				Success:      false,
				ErrorMessage: "not found",
			},
			wantMsg: "tried to fetch collection",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "show" {
				t.Errorf("MessageID() = %v, want 'show'", tt.event.MessageID())
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	event := DeleteEvent{
		UserID:       "root",
		ClientIP:     "10.0.0.1",
		CollectionID: "col-1",
		Success:      true,
	}

	if event.MessageID() != "delete" {
		t.Errorf("MessageID() = %v, want 'delete'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "deleted collection col-1") {
		t.Errorf("Message() = %q, want to contain 'deleted collection col-1'", event.Message())
	}
	if event.Severity() != SeverityInfo {
		t.Errorf("Severity() = %v, want SeverityInfo", event.Severity())
	}
}

func TestAccessDeniedEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   AccessDeniedEvent
		wantMsg string
	}{
		{
			name: "denied on resource",
			event: AccessDeniedEvent{
				UserID:     "bob",
				ClientIP:   "10.0.0.1",
				ResourceID: "col-1",
				Action:     "create",
			},
			wantMsg: "was denied create on col-1",
		},
		{
			name: "denied without resource",
			event: AccessDeniedEvent{
				UserID:   "bob",
				ClientIP: "10.0.0.1",
				Action:   "create",
			},
			wantMsg: "was denied create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "access-denied" {
				t.Errorf("MessageID() = %v, want 'access-denied'", tt.event.MessageID())
			}
			if tt.event.Severity() != SeverityWarning {
				t.Errorf("Severity() = %v, want SeverityWarning", tt.event.Severity())
			}
		})
	}
}

func TestStructuredData(t *testing.T) {
	event := CreateEvent{
		UserID:       "alice",
		ClientIP:     "10.0.0.1",
		CollectionID: "col-1",
		Title:        "Reports",
		ParentID:     "col-0",
		Success:      true,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "alice" {
		t.Errorf("StructuredData auth.user = %v, want 'alice'", sd[SDIDAuth]["user"])
	}
	if sd[SDIDSubject]["collection"] != "col-1" {
		t.Errorf("StructuredData subject.collection = %v, want 'col-1'", sd[SDIDSubject]["collection"])
	}
	if sd[SDIDSubject]["parent"] != "col-0" {
		t.Errorf("StructuredData subject.parent = %v, want 'col-0'", sd[SDIDSubject]["parent"])
	}
	if sd[SDIDClient]["ip"] != "10.0.0.1" {
		t.Errorf("StructuredData client.ip = %v, want '10.0.0.1'", sd[SDIDClient]["ip"])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want 'success'", sd[SDIDAction]["result"])
	}
}

func TestAuditToggle(t *testing.T) {
	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	// Test with audit disabled
	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	// Test with audit enabled
	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
