package conversion

import "prospectcrm/internal/domain/notification"

// AssignRequest is the body of an assignment.
type AssignRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// StepErrorResponse describes a failed step.
type StepErrorResponse struct {
	Kind    Kind   `json:"kind"`
	Step    Step   `json:"step"`
	Message string `json:"message"`
}

// ResultResponse is the API shape of a Result.
type ResultResponse struct {
	Outcome        Outcome             `json:"outcome"`
	ProspectID     string              `json:"prospect_id"`
	OrganizationID string              `json:"organization_id,omitempty"`
	ContactID      string              `json:"contact_id,omitempty"`
	RedirectTo     string              `json:"redirect_to,omitempty"`
	Notification   notification.Notice `json:"notification"`
	Warnings       []StepErrorResponse `json:"warnings,omitempty"`
	Error          *StepErrorResponse  `json:"error,omitempty"`
}

// stepMessages are the client-facing texts per step. Causes stay in the logs.
var stepMessages = map[Step]string{
	StepFetchProspect:      "Could not load the prospect.",
	StepCheckExisting:      "Could not check for an existing organization.",
	StepCreateOrganization: "Could not create the organization.",
	StepCreateContact:      "Could not create the primary contact.",
	StepUpdateStatus:       "Could not update the prospect status.",
	StepLookupUser:         "Could not find the selected user.",
	StepWriteAssignment:    "Could not save the assignment.",
}

func stepErrorResponse(e *StepError) StepErrorResponse {
	msg, ok := stepMessages[e.Step]
	if !ok {
		msg = "Step failed."
	}
	return StepErrorResponse{Kind: e.Kind, Step: e.Step, Message: msg}
}

// NewResultResponse converts a Result for the API.
func NewResultResponse(res *Result) ResultResponse {
	out := ResultResponse{
		Outcome:        res.Outcome,
		ProspectID:     res.ProspectID,
		OrganizationID: res.OrganizationID,
		ContactID:      res.ContactID,
		RedirectTo:     res.RedirectTo,
		Notification:   res.Notice,
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, stepErrorResponse(w))
	}
	if res.Err != nil {
		e := stepErrorResponse(res.Err)
		out.Error = &e
	}
	return out
}
