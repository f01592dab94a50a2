package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	Pending         Status = "PENDING"
	Approved        Status = "APPROVED"
	Rejected        Status = "REJECTED"
	PickupScheduled Status = "PICKUP_SCHEDULED"
	PickupCompleted Status = "PICKUP_COMPLETED"
	RepairInitiated Status = "REPAIR_INITIATED"
	RepairCompleted Status = "REPAIR_COMPLETED"
	ReturnScheduled Status = "RETURN_SCHEDULED"
	Completed       Status = "COMPLETED"
)

// StageCompleted is the marker sent with every stage-advance call. The backend
// decides which stage it completes.
const StageCompleted = "COMPLETED"

// Claim is the warranty service request as returned by the backend.
type Claim struct {
	ID               ClaimID   `json:"id"`
	CustomerID       string    `json:"customer_id"`
	ProductIMEI      string    `json:"product_imei"`
	IssueDescription string    `json:"issue_description"`
	Status           Status    `json:"status"`
	CreatedAt        Timestamp `json:"created_at"`
}

type NewClaim struct {
	CustomerID       string `json:"customer_id"`
	ProductIMEI      string `json:"product_imei"`
	IssueDescription string `json:"issue_description"`
}

type LogisticsUpdate struct {
	RequestID ClaimID `json:"request_id"`
	Status    string  `json:"status"`
	AgentID   string  `json:"agent_id,omitempty"`
}

type RepairUpdate struct {
	RequestID    ClaimID `json:"request_id"`
	Status       string  `json:"status"`
	TechnicianID string  `json:"technician_id,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// StageUpdate is the acknowledgement returned by the delivery and repair
// update endpoints.
type StageUpdate struct {
	Status   string `json:"status"`
	OrderID  int64  `json:"order_id,omitempty"`
	RepairID int64  `json:"repair_id,omitempty"`
}

// ClaimID is opaque to the portal. The backend issues integers; strings are
// accepted as well and passed back unchanged.
type ClaimID string

func (id ClaimID) String() string { return string(id) }

func (id ClaimID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id ClaimID) numeric() bool {
	n, err := strconv.ParseInt(string(id), 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == string(id)
}

func (id ClaimID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ClaimID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ClaimID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("claim id must be a number or a string")
	}
	*id = ClaimID(n.String())
	return nil
}

// Timestamp accepts RFC 3339 as well as the zone-less ISO-8601 form the
// backend emits; zone-less values are taken as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t.UTC()}, nil
		}
	}
	return Timestamp{}, errors.New("unrecognised timestamp: " + s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
