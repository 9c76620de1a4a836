package view

import (
	"go-leave/internal/leave"
)

// InfoRow is one label/value line of the detail info panel.
type InfoRow struct {
	Label     string
	Value     string
	Highlight bool
}

func InfoRows(r leave.LeaveResponse) []InfoRow {
	return []InfoRow{
		{Label: "Leave type", Value: r.Type},
		{Label: "Destination", Value: r.Destination},
		{Label: "Address", Value: r.Address},
		{Label: "Start time", Value: r.StartTime},
		{Label: "End time", Value: r.EndTime},
		{Label: "Duration", Value: r.Duration},
		{Label: "Emergency contact", Value: r.ContactPerson},
		{Label: "Emergency contact phone", Value: r.ContactPhone},
		{Label: "Reason", Value: r.Reason},
		{Label: "Leave status", Value: r.Status, Highlight: true},
		{Label: "Return status", Value: r.ReturnStatus},
		{Label: "Attachment", Value: r.Attachment},
	}
}

// Step is one node of the approval timeline.
type Step struct {
	Title  string
	Label  string
	When   string
	Person string
	Note   string
	Done   bool
}

const (
	reviewerName    = "Ye Han"
	fallbackApplied = "2025-11-21 09:43"
	fallbackChecked = "2025-11-21 14:15"
)

// Timeline is the fixed two-step approval flow: the application, the
// advisor's review, then an end marker. Times are cut to minutes.
func Timeline(r leave.LeaveResponse, applicant string) []Step {
	person := r.ApplicantName
	if person == "" {
		person = applicant
	}
	return []Step{
		{
			Title:  "Apply",
			Label:  "Applied",
			When:   minuteOr(r.ApplyTime, fallbackApplied),
			Person: person,
			Done:   true,
		},
		{
			Title:  "Advisor review",
			Label:  "Approved",
			When:   minuteOr(r.ApprovalTime, fallbackChecked),
			Person: reviewerName,
			Note:   "Agree",
			Done:   true,
		},
		{Title: "End"},
	}
}

func minuteOr(ts, fallback string) string {
	if ts == "" {
		return fallback
	}
	if len(ts) > 16 {
		return ts[:16]
	}
	return ts
}

type DetailPage struct {
	Record   leave.LeaveResponse
	Rows     []InfoRow
	Stamp    leave.Stamp
	Timeline []Step
}

func NewDetailPage(r leave.LeaveResponse, applicant string) *DetailPage {
	return &DetailPage{
		Record:   r,
		Rows:     InfoRows(r),
		Stamp:    leave.StampFor(r.Status),
		Timeline: Timeline(r, applicant),
	}
}
