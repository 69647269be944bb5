package conversion

import (
	"fmt"
	"strings"

	"prospectcrm/internal/domain/notification"
)

func noticeData(res *Result) notification.Data {
	return notification.Data{
		Outcome:        string(res.Outcome),
		ProspectID:     res.ProspectID,
		OrganizationID: res.OrganizationID,
		ContactID:      res.ContactID,
		RedirectTo:     res.RedirectTo,
	}
}

func approveNotice(res *Result) notification.Notice {
	n := notification.Notice{Data: noticeData(res)}

	switch res.Outcome {
	case OutcomeSuccess:
		n.Level = notification.LevelSuccess
		n.Title = "Prospect approved"
		n.Message = "The prospect was converted into an organization."
	case OutcomeAlreadyConverted:
		n.Level = notification.LevelWarning
		n.Title = "Prospect already converted"
		n.Message = "This prospect was already converted into an organization. Nothing was changed."
	case OutcomePartialSuccess:
		n.Level = notification.LevelWarning
		n.Title = "Prospect partially approved"
		parts := make([]string, 0, len(res.Warnings))
		for _, w := range res.Warnings {
			switch w.Kind {
			case KindContactCreate:
				parts = append(parts, "Organization created but failed to create contact. Add the contact manually.")
			case KindStatusUpdate:
				parts = append(parts, "Organization created but prospect status not updated.")
			}
		}
		n.Message = strings.Join(parts, " ")
	default:
		n.Level = notification.LevelError
		n.Title = "Approval failed"
		if res.Err != nil && res.Err.Kind == KindOrganizationCreate {
			n.Message = "Could not create the organization. The prospect is unchanged; try again."
		} else {
			n.Message = "Could not load the prospect. Nothing was created."
		}
	}
	return n
}

func rejectNotice(res *Result) notification.Notice {
	if res.Outcome == OutcomeSuccess {
		return notification.Notice{
			Level:   notification.LevelSuccess,
			Title:   "Prospect rejected",
			Message: "The prospect was marked as rejected.",
			Data:    noticeData(res),
		}
	}
	return notification.Notice{
		Level:   notification.LevelError,
		Title:   "Rejection failed",
		Message: "Could not update the prospect. It keeps its previous status.",
		Data:    noticeData(res),
	}
}

func assignNotice(res *Result, company, assignee string) notification.Notice {
	if res.Outcome == OutcomeSuccess {
		return notification.Notice{
			Level:   notification.LevelSuccess,
			Title:   "Prospect assigned",
			Message: fmt.Sprintf("%s assigned to %s.", company, assignee),
			Data:    noticeData(res),
		}
	}

	n := notification.Notice{
		Level: notification.LevelError,
		Title: "Assignment failed",
		Data:  noticeData(res),
	}
	switch res.Err.Step {
	case StepLookupUser:
		n.Message = "Could not find the selected user."
	case StepFetchProspect:
		n.Message = "Could not load the prospect."
	default:
		n.Message = "Could not save the assignment."
	}
	return n
}
