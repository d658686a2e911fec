package audit

import "fmt"

// CreateEvent represents a collection create audit event
type CreateEvent struct {
	UserID       string
	ClientIP     string
	CollectionID string
	Title        string
	ParentID     string
	Success      bool
	ErrorMessage string
}

func (e CreateEvent) MessageID() string {
	return "create"
}

func (e CreateEvent) Message() string {
	subject := fmt.Sprintf("collection %q", e.Title)
	if e.ParentID != "" {
		subject = fmt.Sprintf("collection %q under %s", e.Title, e.ParentID)
	}
	if e.Success {
		return fmt.Sprintf("%s created %s", e.UserID, subject)
	}
	msg := fmt.Sprintf("%s tried to create %s", e.UserID, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e CreateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e CreateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CreateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"title": e.Title,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "create",
		},
	}
	if e.CollectionID != "" {
		sd[SDIDSubject]["collection"] = e.CollectionID
	}
	if e.ParentID != "" {
		sd[SDIDSubject]["parent"] = e.ParentID
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// ShowEvent represents a collection read audit event
type ShowEvent struct {
	UserID       string
	ClientIP     string
	CollectionID string
	Success      bool
	ErrorMessage string
}

func (e ShowEvent) MessageID() string {
	return "show"
}

func (e ShowEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s fetched collection %s", e.UserID, e.CollectionID)
	}
	msg := fmt.Sprintf("%s tried to fetch collection %s", e.UserID, e.CollectionID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ShowEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ShowEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ShowEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"collection": e.CollectionID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "show",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// DeleteEvent represents a collection delete audit event
type DeleteEvent struct {
	UserID       string
	ClientIP     string
	CollectionID string
	Success      bool
	ErrorMessage string
}

func (e DeleteEvent) MessageID() string {
	return "delete"
}

func (e DeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s deleted collection %s", e.UserID, e.CollectionID)
	}
	msg := fmt.Sprintf("%s tried to delete collection %s", e.UserID, e.CollectionID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e DeleteEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e DeleteEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DeleteEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"collection": e.CollectionID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "delete",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// AccessDeniedEvent represents a rejected authorization check
type AccessDeniedEvent struct {
	UserID     string
	ClientIP   string
	ResourceID string
	Action     string
}

func (e AccessDeniedEvent) MessageID() string {
	return "access-denied"
}

func (e AccessDeniedEvent) Message() string {
	if e.ResourceID == "" {
		return fmt.Sprintf("%s was denied %s", e.UserID, e.Action)
	}
	return fmt.Sprintf("%s was denied %s on %s", e.UserID, e.Action, e.ResourceID)
}

func (e AccessDeniedEvent) Severity() Severity {
	return SeverityWarning
}

func (e AccessDeniedEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AccessDeniedEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Action,
			"result":    "failure",
		},
	}
	if e.ResourceID != "" {
		sd[SDIDSubject] = map[string]string{
			"collection": e.ResourceID,
		}
	}
	return sd
}
