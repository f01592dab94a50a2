package web

import (
	"errors"
	"time"

	"github.com/warrantyguard/claim-portal/internal/lifecycle"
	"github.com/warrantyguard/claim-portal/internal/model"
	"github.com/warrantyguard/claim-portal/internal/probe"
)

const (
	msgNotFound      = "Request not found"
	msgSubmitFailed  = "Error submitting request: "
	msgMissingFields = "Product IMEI and Issue Description are required."
)

var errMissingFields = errors.New(msgMissingFields)

type NoticeKind string

const (
	NoticeError NoticeKind = "error"
	NoticeInfo  NoticeKind = "info"
)

type Notice struct {
	Kind NoticeKind
	Text string
}

// Badge is how a status is drawn: an icon name and a colour tone.
type Badge struct {
	Icon string
	Tone string
}

var badges = map[model.Status]Badge{
	model.Approved:        {Icon: "check", Tone: "emerald"},
	model.Rejected:        {Icon: "cross", Tone: "red"},
	model.PickupScheduled: {Icon: "truck", Tone: "blue"},
	model.PickupCompleted: {Icon: "truck", Tone: "blue"},
	model.RepairInitiated: {Icon: "wrench", Tone: "orange"},
	model.RepairCompleted: {Icon: "check", Tone: "emerald"},
	model.ReturnScheduled: {Icon: "truck", Tone: "purple"},
}

func BadgeFor(status model.Status) Badge {
	if b, ok := badges[status]; ok {
		return b
	}
	return Badge{Icon: "clock", Tone: "gray"}
}

type ClaimCard struct {
	ID         string
	CustomerID string
	IMEI       string
	Issue      string
	Status     string
	Created    string
	Badge      Badge
}

func newClaimCard(c *model.Claim) *ClaimCard {
	if c == nil {
		return nil
	}
	card := &ClaimCard{
		ID:         c.ID.String(),
		CustomerID: c.CustomerID,
		IMEI:       c.ProductIMEI,
		Issue:      c.IssueDescription,
		Status:     string(c.Status),
		Badge:      BadgeFor(c.Status),
	}
	if !c.CreatedAt.IsZero() {
		card.Created = c.CreatedAt.Format(time.DateOnly)
	}
	return card
}

type BackendBanner struct {
	Checked   bool
	Up        bool
	CheckedAt string
	Error     string
}

type HomeView struct {
	Backend BackendBanner
}

func HomePage(s probe.Snapshot) HomeView {
	v := HomeView{}
	if s.CheckedAt.IsZero() {
		return v
	}
	v.Backend = BackendBanner{
		Checked:   true,
		Up:        s.Up,
		CheckedAt: s.CheckedAt.UTC().Format(time.DateTime),
		Error:     s.Error,
	}
	return v
}

type SubmitView struct {
	IMEI   string
	Issue  string
	Notice *Notice
}

// SubmitPage echoes the form back so nothing typed is lost on failure.
func SubmitPage(imei, issue string, err error) SubmitView {
	v := SubmitView{IMEI: imei, Issue: issue}
	switch {
	case err == nil:
	case errors.Is(err, errMissingFields):
		v.Notice = &Notice{Kind: NoticeError, Text: msgMissingFields}
	default:
		v.Notice = &Notice{Kind: NoticeError, Text: msgSubmitFailed + err.Error()}
	}
	return v
}

type TrackView struct {
	Query  string
	Claim  *ClaimCard
	Notice *Notice
}

// TrackPage never shows a claim alongside a lookup failure.
func TrackPage(query string, claim *model.Claim, err error) TrackView {
	v := TrackView{Query: query}
	if err != nil {
		v.Notice = &Notice{Kind: NoticeError, Text: msgNotFound}
		return v
	}
	v.Claim = newClaimCard(claim)
	return v
}

type ActionButton struct {
	Name  string
	Label string
	Tone  string
	Path  string
}

type DashboardView struct {
	Query     string
	Claim     *ClaimCard
	Actions   []ActionButton
	NoActions bool
	Notice    *Notice
	// Sent confirms an action the backend accepted.
	Sent *Notice
}

// DashboardPage builds the operations view. fetchErr clears the claim;
// actionErr is shown verbatim next to whatever claim could be loaded.
func DashboardPage(query string, claim *model.Claim, fetchErr, actionErr error) DashboardView {
	v := DashboardView{Query: query}
	if fetchErr != nil {
		v.Notice = &Notice{Kind: NoticeError, Text: msgNotFound}
		return v
	}
	if actionErr != nil {
		v.Notice = &Notice{Kind: NoticeError, Text: actionErr.Error()}
	}
	if claim == nil {
		return v
	}

	v.Claim = newClaimCard(claim)
	for _, a := range lifecycle.ActionsFor(claim.Status) {
		v.Actions = append(v.Actions, ActionButton{
			Name:  a.Name,
			Label: a.Label,
			Tone:  BadgeFor(claim.Status).Tone,
			Path:  actionPath(claim.ID, a.Name),
		})
	}
	v.NoActions = lifecycle.HasNoActions(claim.Status)
	return v
}
