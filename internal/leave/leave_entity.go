package leave

// TimeLayout is the fixed textual timestamp format used by every time field
// of a LeaveRecord.
const TimeLayout = "2006-01-02 15:04:05"

// StatusSubmitted is the initial workflow label every new record gets.
const StatusSubmitted = "submitted"

// LeaveRecord is one leave-of-absence application. Every field except ID is
// free text; timestamps are expected, not required, to follow TimeLayout.
type LeaveRecord struct {
	ID string

	Type          string
	ApplicantName string
	Destination   string
	Address       string
	ContactPerson string
	ContactPhone  string
	Reason        string
	Attachment    string

	ApplyTime    string
	ApprovalTime string
	StartTime    string
	EndTime      string
	Duration     string

	Status       string
	ReturnStatus string
}
