package recruit

import "time"

const (
	minInterviewMinutes = 1
	maxInterviewMinutes = 240

	// DefaultInterviewLocation is used when the caller leaves location blank.
	DefaultInterviewLocation = "online"
)

// scheduleLayouts accepts RFC 3339 as well as the zone-less form the
// interactive console historically produced.
var scheduleLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// ParseScheduleTime parses an interview start time.
func ParseScheduleTime(raw string) (time.Time, error) {
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, Errorf(ErrValidation, "scheduled time must be RFC 3339 or YYYY-MM-DDTHH:MM:SS, got %q", raw)
}

// ScheduleInterview validates the request, detects interviewer double-booking
// over half-open intervals and creates the interview record. On success the
// application moves to interview_scheduled within the same snapshot, so the
// two mutations are persisted together or not at all.
func ScheduleInterview(snap *Snapshot, interviewID, applicationID, startRaw string, durationMinutes int, interviewer, location string, now time.Time) (*Interview, error) {
	if err := RequireNonEmpty("interview_id", interviewID); err != nil {
		return nil, err
	}
	if err := RequireNonEmpty("application_id", applicationID); err != nil {
		return nil, err
	}
	if err := RequireNonEmpty("interviewer", interviewer); err != nil {
		return nil, err
	}

	iid := NormalizeText(interviewID)
	if _, ok := snap.Interviews[iid]; ok {
		return nil, Errorf(ErrValidation, "interview id already exists: %s", iid)
	}

	start, err := ParseScheduleTime(startRaw)
	if err != nil {
		return nil, err
	}
	if durationMinutes < minInterviewMinutes || durationMinutes > maxInterviewMinutes {
		return nil, Errorf(ErrValidation, "duration must be between %d and %d minutes, got %d",
			minInterviewMinutes, maxInterviewMinutes, durationMinutes)
	}

	aid := NormalizeText(applicationID)
	app := snap.Applications[aid]
	if app == nil {
		return nil, Errorf(ErrNotFound, "application not found: %s", aid)
	}

	// Precondition check, not a lifecycle transition failure.
	if app.Status != StatusShortlisted {
		return nil, Errorf(ErrValidation, "interview requires a shortlisted application, status is %s", app.Status)
	}

	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	// Interviewer names are canonicalized on write, so a plain string compare
	// is enough here.
	who := NormalizeText(interviewer)
	for _, existing := range snap.Interviews {
		if existing.Cancelled || existing.Interviewer != who {
			continue
		}
		// Half-open intervals: an interview ending exactly when the next one
		// starts is not a conflict.
		if start.Before(existing.End()) && end.After(existing.ScheduledAt) {
			return nil, Errorf(ErrConflict, "interviewer %s is double-booked between %s and %s",
				who, existing.ScheduledAt.Format(time.RFC3339), existing.End().Format(time.RFC3339))
		}
	}

	loc := CollapseSpaces(location)
	if loc == "" {
		loc = DefaultInterviewLocation
	}

	interview := &Interview{
		ID:              iid,
		ApplicationID:   aid,
		ScheduledAt:     start,
		DurationMinutes: durationMinutes,
		Interviewer:     who,
		Location:        loc,
	}
	snap.Interviews[iid] = interview

	app.Status = StatusInterviewScheduled
	app.appendAudit(now, "interview_scheduled", map[string]string{"interview_id": iid})

	return interview, nil
}
