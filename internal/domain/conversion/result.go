package conversion

import (
	"fmt"

	"prospectcrm/internal/domain/notification"
)

// Outcome is the terminal state of a workflow run.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomePartialSuccess   Outcome = "partial_success"
	OutcomeFatal            Outcome = "fatal"
	OutcomeAlreadyConverted Outcome = "already_converted"
)

// Kind classifies a step failure.
type Kind string

const (
	KindFetch              Kind = "FetchError"
	KindOrganizationCreate Kind = "OrganizationCreateError"
	KindContactCreate      Kind = "ContactCreateError"
	KindStatusUpdate       Kind = "StatusUpdateError"
	KindAssignment         Kind = "AssignmentError"
)

// Step names the write or read that failed.
type Step string

const (
	StepFetchProspect      Step = "fetch_prospect"
	StepCheckExisting      Step = "check_existing_organization"
	StepCreateOrganization Step = "create_organization"
	StepCreateContact      Step = "create_contact"
	StepUpdateStatus       Step = "update_status"
	StepLookupUser         Step = "lookup_user"
	StepWriteAssignment    Step = "write_assignment"
)

// StepError is a failure at one workflow step. It unwraps to the cause.
type StepError struct {
	Kind Kind
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Kind, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result reports what a workflow run did. Err is set only for OutcomeFatal;
// Warnings only for OutcomePartialSuccess.
type Result struct {
	Outcome        Outcome
	ProspectID     string
	OrganizationID string
	ContactID      string
	RedirectTo     string
	Err            *StepError
	Warnings       []*StepError
	Notice         notification.Notice
}

// Failed reports whether the run ended in a fatal error.
func (r *Result) Failed() bool {
	return r.Outcome == OutcomeFatal
}

func fatal(prospectID string, kind Kind, step Step, err error) *Result {
	return &Result{
		Outcome:    OutcomeFatal,
		ProspectID: prospectID,
		Err:        &StepError{Kind: kind, Step: step, Err: err},
	}
}

func organizationPath(id string) string {
	return "/organizations/" + id
}
