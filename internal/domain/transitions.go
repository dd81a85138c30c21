package domain

// The lifecycle guards live here as explicit transition tables so they can be
// checked, and tested, independent of any handler or view. Every guarded
// action is validated against the table before a repository write or
// collaborator call is issued; a miss yields a PreconditionError and no side
// effects.

type QuoteAction string

const (
	QuoteActionSend      QuoteAction = "send"
	QuoteActionAccept    QuoteAction = "accept"
	QuoteActionMarkPaid  QuoteAction = "mark paid"
	QuoteActionComplete  QuoteAction = "complete"
	QuoteActionCreateJob QuoteAction = "create job from"
)

var quoteTransitions = map[QuoteStatus]map[QuoteAction]QuoteStatus{
	QuoteStatusDraft: {
		QuoteActionSend: QuoteStatusSent,
	},
	QuoteStatusSent: {
		QuoteActionAccept: QuoteStatusAccepted,
	},
	QuoteStatusAccepted: {
		QuoteActionMarkPaid: QuoteStatusPaid,
		// Job creation is permitted here but does not advance the status.
		QuoteActionCreateJob: QuoteStatusAccepted,
	},
	QuoteStatusPaid: {
		QuoteActionComplete: QuoteStatusCompleted,
	},
}

// NextQuoteStatus resolves the status after applying action to a quote in the
// given status.
func NextQuoteStatus(current QuoteStatus, action QuoteAction) (QuoteStatus, error) {
	if next, ok := quoteTransitions[current][action]; ok {
		return next, nil
	}
	return current, &PreconditionError{Entity: "quote", Action: string(action), Status: string(current)}
}

// CanCreateJob reports whether a job may be created from a quote in the given
// status.
func CanCreateJob(current QuoteStatus) bool {
	_, ok := quoteTransitions[current][QuoteActionCreateJob]
	return ok
}

type JobAction string

const (
	JobActionSchedule JobAction = "schedule"
	JobActionComplete JobAction = "complete"
	JobActionCancel   JobAction = "cancel"
)

var jobTransitions = map[JobStatus]map[JobAction]JobStatus{
	JobStatusScheduled: {
		// Scheduling and rescheduling keep the job in scheduled.
		JobActionSchedule: JobStatusScheduled,
		JobActionComplete: JobStatusCompleted,
		JobActionCancel:   JobStatusCancelled,
	},
	// completed and cancelled are terminal.
}

// NextJobStatus resolves the status after applying action to a job in the
// given status.
func NextJobStatus(current JobStatus, action JobAction) (JobStatus, error) {
	if next, ok := jobTransitions[current][action]; ok {
		return next, nil
	}
	return current, &PreconditionError{Entity: "job", Action: string(action), Status: string(current)}
}
