package leave

// DemoRecords are loaded at startup when demo seeding is enabled.
func DemoRecords(applicant string) []LeaveRecord {
	return []LeaveRecord{
		{
			ID:            "1",
			Type:          "Other",
			ApplicantName: applicant,
			ApplyTime:     "2025-11-21 09:43:23",
			ApprovalTime:  "2025-11-21 14:15:00",
			StartTime:     "2025-11-22 08:41:00",
			EndTime:       "2025-11-22 22:30:00",
			Duration:      "0 days 13 hours 49 minutes",
			Reason:        "Restaurant by the back gate",
			Status:        "advisor review",
		},
		{
			ID:            "2",
			Type:          "Holiday and vacation leave",
			ApplicantName: applicant,
			ApplyTime:     "2025-09-30 16:48:52",
			ApprovalTime:  "2025-09-30 18:02:10",
			StartTime:     "2025-09-30 16:47:00",
			EndTime:       "2025-10-08 17:30:00",
			Duration:      "8 days 0 hours 43 minutes",
			Reason:        "National Day",
			Status:        "approved",
			ReturnStatus:  "returned",
		},
		{
			ID:            "3",
			Type:          "Other",
			ApplicantName: applicant,
			ApplyTime:     "2025-09-26 17:01:08",
			StartTime:     "2025-09-27 07:00:00",
			EndTime:       "2025-09-27 21:00:00",
			Duration:      "0 days 14 hours 0 minutes",
			Reason:        "Errands in town",
			Status:        StatusSubmitted,
		},
	}
}
