package view

import (
	"go-leave/internal/leave"
)

type fieldSpec struct {
	name      string
	label     string
	multiline bool
	ref       func(d *leave.CreateLeaveRequest) *string
}

var formFields = []fieldSpec{
	{name: "type", label: "Leave type", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Type }},
	{name: "destination", label: "Destination", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Destination }},
	{name: "address", label: "Address", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Address }},
	{name: "start_time", label: "Start time", ref: func(d *leave.CreateLeaveRequest) *string { return &d.StartTime }},
	{name: "end_time", label: "End time", ref: func(d *leave.CreateLeaveRequest) *string { return &d.EndTime }},
	{name: "duration", label: "Duration", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Duration }},
	{name: "contact_person", label: "Emergency contact", ref: func(d *leave.CreateLeaveRequest) *string { return &d.ContactPerson }},
	{name: "contact_phone", label: "Contact phone", ref: func(d *leave.CreateLeaveRequest) *string { return &d.ContactPhone }},
	{name: "reason", label: "Reason", multiline: true, ref: func(d *leave.CreateLeaveRequest) *string { return &d.Reason }},
	{name: "status", label: "Leave status", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Status }},
	{name: "return_status", label: "Return status", ref: func(d *leave.CreateLeaveRequest) *string { return &d.ReturnStatus }},
	{name: "attachment", label: "Attachment", ref: func(d *leave.CreateLeaveRequest) *string { return &d.Attachment }},
}

// FieldValue is one rendered input of the form.
type FieldValue struct {
	Name      string
	Label     string
	Value     string
	Multiline bool
}

// Form holds the in-progress draft of the create form. The duration field
// follows start/end: whenever either changes the duration is recomputed,
// and left alone if the times do not parse.
type Form struct {
	draft leave.CreateLeaveRequest
}

func emptyDraft() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{Type: "Other", Status: leave.StatusSubmitted}
}

func NewForm() *Form {
	return &Form{draft: emptyDraft()}
}

func (f *Form) Draft() leave.CreateLeaveRequest {
	return f.draft
}

func (f *Form) Reset() {
	f.draft = emptyDraft()
}

// Set changes one field by name and reports whether the duration changed
// as a result. Unknown names are ignored.
func (f *Form) Set(name, value string) bool {
	for _, fs := range formFields {
		if fs.name != name {
			continue
		}
		p := fs.ref(&f.draft)
		if *p == value {
			return false
		}
		*p = value
		if name == "start_time" || name == "end_time" {
			return f.Recompute()
		}
		return false
	}
	return false
}

// Update replaces the whole draft, e.g. from a posted form, and reports
// whether the duration changed.
func (f *Form) Update(next leave.CreateLeaveRequest) bool {
	timesChanged := next.StartTime != f.draft.StartTime || next.EndTime != f.draft.EndTime
	f.draft = next
	if !timesChanged {
		return false
	}
	return f.Recompute()
}

// Recompute derives the duration from start/end. It is a no-op when the
// times do not parse or the result equals the stored value.
func (f *Form) Recompute() bool {
	d, ok := leave.ComputeDuration(f.draft.StartTime, f.draft.EndTime)
	if !ok || d == f.draft.Duration {
		return false
	}
	f.draft.Duration = d
	return true
}

func (f *Form) Fields() []FieldValue {
	out := make([]FieldValue, len(formFields))
	for i, fs := range formFields {
		out[i] = FieldValue{
			Name:      fs.name,
			Label:     fs.label,
			Value:     *fs.ref(&f.draft),
			Multiline: fs.multiline,
		}
	}
	return out
}
