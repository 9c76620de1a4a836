package leave

// CreateLeaveRequest is the draft submitted from the form or the API.
// Nothing is required: an empty draft is a valid record. Status is accepted
// so old clients keep working, but it is always overwritten.
type CreateLeaveRequest struct {
	Type          string `json:"type" form:"type"`
	ApplicantName string `json:"applicant_name" form:"applicant_name"`
	Destination   string `json:"destination" form:"destination"`
	Address       string `json:"address" form:"address"`
	StartTime     string `json:"start_time" form:"start_time"`
	EndTime       string `json:"end_time" form:"end_time"`
	Duration      string `json:"duration" form:"duration"`
	ContactPerson string `json:"contact_person" form:"contact_person"`
	ContactPhone  string `json:"contact_phone" form:"contact_phone"`
	Reason        string `json:"reason" form:"reason"`
	Status        string `json:"status" form:"status"`
	ReturnStatus  string `json:"return_status" form:"return_status"`
	Attachment    string `json:"attachment" form:"attachment"`
	ApplyTime     string `json:"apply_time" form:"apply_time"`
	ApprovalTime  string `json:"approval_time" form:"approval_time"`
}

type LeaveResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	ApplicantName string `json:"applicant_name"`
	ApplyTime     string `json:"apply_time"`
	ApprovalTime  string `json:"approval_time,omitempty"`
	Destination   string `json:"destination"`
	Address       string `json:"address"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Duration      string `json:"duration"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	ReturnStatus  string `json:"return_status"`
	Attachment    string `json:"attachment"`
	Stamp         string `json:"stamp"`
}

type LeaveURI struct {
	ID string `uri:"id" binding:"required"`
}

type DeleteLeaveQuery struct {
	Confirm bool `form:"confirm"`
}

type DeleteLeaveResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type DurationRequest struct {
	StartTime string `json:"start_time" form:"start_time" binding:"required"`
	EndTime   string `json:"end_time" form:"end_time" binding:"required"`
}

type DurationResponse struct {
	Duration string `json:"duration,omitempty"`
	Computed bool   `json:"computed"`
}
