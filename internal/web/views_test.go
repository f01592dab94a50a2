package web

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warrantyguard/claim-portal/internal/model"
	"github.com/warrantyguard/claim-portal/internal/probe"
)

func sampleClaim(status model.Status) *model.Claim {
	return &model.Claim{
		ID:               "12",
		CustomerID:       "CUST-1A2B3C4D",
		ProductIMEI:      "123456789012345",
		IssueDescription: "Screen cracked",
		Status:           status,
		CreatedAt:        model.Timestamp{Time: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)},
	}
}

func TestBadgeFor(t *testing.T) {
	assert.Equal(t, Badge{Icon: "check", Tone: "emerald"}, BadgeFor(model.Approved))
	assert.Equal(t, Badge{Icon: "cross", Tone: "red"}, BadgeFor(model.Rejected))
	assert.Equal(t, Badge{Icon: "wrench", Tone: "orange"}, BadgeFor(model.RepairInitiated))
	assert.Equal(t, Badge{Icon: "truck", Tone: "purple"}, BadgeFor(model.ReturnScheduled))
	assert.Equal(t, Badge{Icon: "clock", Tone: "gray"}, BadgeFor(model.Pending))
	assert.Equal(t, Badge{Icon: "clock", Tone: "gray"}, BadgeFor("ON_HOLD"))
}

func TestHomePage(t *testing.T) {
	assert.False(t, HomePage(probe.Snapshot{}).Backend.Checked)

	at := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	v := HomePage(probe.Snapshot{Up: false, CheckedAt: at, Error: "connection refused"})
	assert.True(t, v.Backend.Checked)
	assert.False(t, v.Backend.Up)
	assert.Equal(t, "2026-03-04 10:30:00", v.Backend.CheckedAt)
	assert.Equal(t, "connection refused", v.Backend.Error)
}

func TestSubmitPage(t *testing.T) {
	v := SubmitPage("", "", nil)
	assert.Nil(t, v.Notice)

	v = SubmitPage("123", "", errMissingFields)
	require.NotNil(t, v.Notice)
	assert.Equal(t, msgMissingFields, v.Notice.Text)
	assert.Equal(t, "123", v.IMEI)

	v = SubmitPage("123", "broken", errors.New("backend down"))
	require.NotNil(t, v.Notice)
	assert.Equal(t, NoticeError, v.Notice.Kind)
	assert.Equal(t, "Error submitting request: backend down", v.Notice.Text)
	assert.Equal(t, "broken", v.Issue)
}

func TestTrackPage(t *testing.T) {
	v := TrackPage("12", sampleClaim(model.PickupScheduled), nil)
	require.NotNil(t, v.Claim)
	assert.Nil(t, v.Notice)
	assert.Equal(t, "12", v.Claim.ID)
	assert.Equal(t, "PICKUP_SCHEDULED", v.Claim.Status)
	assert.Equal(t, "2026-03-04", v.Claim.Created)
	assert.Equal(t, "blue", v.Claim.Badge.Tone)

	// A failed lookup clears whatever was shown before.
	v = TrackPage("12", sampleClaim(model.PickupScheduled), errors.New("boom"))
	assert.Nil(t, v.Claim)
	require.NotNil(t, v.Notice)
	assert.Equal(t, "Request not found", v.Notice.Text)
}

func TestDashboardPage_Actions(t *testing.T) {
	tests := []struct {
		status    model.Status
		labels    []string
		noActions bool
	}{
		{model.PickupScheduled, []string{"Mark Pickup Completed"}, false},
		{model.RepairInitiated, []string{"Mark Repair Completed"}, false},
		{model.ReturnScheduled, []string{"Mark Return Delivered"}, false},
		{model.Approved, nil, true},
		{model.Pending, nil, true},
		{model.Rejected, nil, true},
		{model.Completed, nil, true},
		{model.PickupCompleted, nil, false},
		{model.RepairCompleted, nil, false},
		{"ON_HOLD", nil, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			v := DashboardPage("12", sampleClaim(tc.status), nil, nil)
			require.NotNil(t, v.Claim)

			var labels []string
			for _, a := range v.Actions {
				labels = append(labels, a.Label)
			}
			assert.Equal(t, tc.labels, labels)
			assert.Equal(t, tc.noActions, v.NoActions)
		})
	}
}

func TestDashboardPage_ActionPath(t *testing.T) {
	v := DashboardPage("12", sampleClaim(model.ReturnScheduled), nil, nil)
	require.Len(t, v.Actions, 1)
	assert.Equal(t, "/dashboard/12/actions/return-delivered", v.Actions[0].Path)
	assert.Equal(t, "return-delivered", v.Actions[0].Name)
}

func TestDashboardPage_Errors(t *testing.T) {
	v := DashboardPage("12", sampleClaim(model.PickupScheduled), errors.New("not found"), nil)
	assert.Nil(t, v.Claim)
	assert.Empty(t, v.Actions)
	require.NotNil(t, v.Notice)
	assert.Equal(t, "Request not found", v.Notice.Text)

	v = DashboardPage("12", sampleClaim(model.RepairInitiated), nil, errors.New("Invalid status transition"))
	require.NotNil(t, v.Claim)
	require.NotNil(t, v.Notice)
	assert.Equal(t, "Invalid status transition", v.Notice.Text)

	v = DashboardPage("12", nil, nil, errors.New("timeout"))
	assert.Nil(t, v.Claim)
	require.NotNil(t, v.Notice)
	assert.Equal(t, "timeout", v.Notice.Text)
}
