package reference

import "airjustice/models"

var statusMessages = map[models.ComplaintStatus]string{
	models.StatusSubmitted:            "Complaint received and registered",
	models.StatusUnderReview:          "Under initial review by authorities",
	models.StatusInvestigationStarted: "Field investigation initiated",
	models.StatusActionTaken:          "Corrective actions being implemented",
	models.StatusResolved:             "Complaint resolved successfully",
}

var statusAuthorities = map[models.ComplaintStatus]string{
	models.StatusSubmitted:            "Air Justice System",
	models.StatusUnderReview:          "NGT Registry",
	models.StatusInvestigationStarted: "CPCB Field Team",
	models.StatusActionTaken:          "Local Pollution Board",
	models.StatusResolved:             "All Concerned Authorities",
}

var nextMilestones = map[models.ComplaintStatus]string{
	models.StatusSubmitted:            "Authority acknowledgment within 24 hours",
	models.StatusUnderReview:          "Investigation start within 48 hours",
	models.StatusInvestigationStarted: "Corrective actions within 7 days",
	models.StatusActionTaken:          "Resolution confirmation within 30 days",
	models.StatusResolved:             "Case closed successfully",
}

// StatusMessage returns the display message for a lifecycle state
func StatusMessage(s models.ComplaintStatus) string {
	if m, ok := statusMessages[s]; ok {
		return m
	}
	return "Status update"
}

// StatusAuthority returns the authority responsible at a lifecycle state
func StatusAuthority(s models.ComplaintStatus) string {
	if a, ok := statusAuthorities[s]; ok {
		return a
	}
	return "System"
}

// NextMilestone returns the next milestone message for a lifecycle state
func NextMilestone(s models.ComplaintStatus) string {
	if m, ok := nextMilestones[s]; ok {
		return m
	}
	return "Monitoring in progress"
}

// KnownAuthority reports whether name is one of the lifecycle desks. Used to scope authority tokens.
func KnownAuthority(name string) bool {
	for _, a := range statusAuthorities {
		if a == name {
			return true
		}
	}
	return false
}
