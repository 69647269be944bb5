package conversion

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"prospectcrm/internal/domain/contact"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
)

// Workflow turns prospects into organizations and runs the other prospect
// lifecycle actions. Steps run sequentially in the caller's goroutine with
// no transaction: a committed step is never rolled back, and later failures
// are reported as warnings on the Result.
//
// Every call ends with exactly one notice sent to the actor. Actions ignore
// cancellation of the caller's context once started; deadlines come from the
// database driver and the HTTP server.
type Workflow struct {
	prospects ProspectStore
	orgs      OrganizationStore
	contacts  ContactStore
	users     UserDirectory
	notifier  Notifier
	log       *zap.Logger
}

func NewWorkflow(
	prospects ProspectStore,
	orgs OrganizationStore,
	contacts ContactStore,
	users UserDirectory,
	notifier Notifier,
	log *zap.Logger,
) *Workflow {
	return &Workflow{
		prospects: prospects,
		orgs:      orgs,
		contacts:  contacts,
		users:     users,
		notifier:  notifier,
		log:       log,
	}
}

// Approve converts the prospect into an organization, adds a primary contact
// when the prospect carries contact data, and marks the prospect approved.
func (w *Workflow) Approve(ctx context.Context, prospectID string, actor Actor) *Result {
	ctx = context.WithoutCancel(ctx)
	res := w.approve(ctx, prospectID, actor)
	res.Notice = approveNotice(res)
	w.finish(ctx, "approve", actor, res)
	return res
}

func (w *Workflow) approve(ctx context.Context, prospectID string, actor Actor) *Result {
	p, err := w.prospects.GetByID(ctx, prospectID)
	if err != nil {
		return fatal(prospectID, KindFetch, StepFetchProspect, err)
	}

	if res, done := w.alreadyConverted(ctx, p); done {
		return res
	}

	org := &organization.Organization{
		ProspectID:  &p.ID,
		Name:        p.CompanyName,
		Website:     p.Website,
		Description: p.Description,
		Status:      organization.StatusLead,
	}
	if actor.UserID != "" {
		org.CreatedBy = &actor.UserID
	}
	if err := w.orgs.Create(ctx, org); err != nil {
		if errors.Is(err, organization.ErrDuplicateProspectLink) {
			return w.convertedElsewhere(ctx, p)
		}
		return fatal(p.ID, KindOrganizationCreate, StepCreateOrganization, err)
	}

	res := &Result{ProspectID: p.ID, OrganizationID: org.ID}

	if p.HasContactData() {
		first, last := contact.SplitName(p.ContactName)
		c := &contact.Contact{
			OrganizationID: org.ID,
			FirstName:      first,
			LastName:       last,
			Email:          p.ContactEmail,
			Phone:          p.ContactPhone,
			LinkedInURL:    p.LinkedInURL,
			IsPrimary:      true,
		}
		if err := w.contacts.Create(ctx, c); err != nil {
			res.Warnings = append(res.Warnings, &StepError{Kind: KindContactCreate, Step: StepCreateContact, Err: err})
		} else {
			res.ContactID = c.ID
		}
	}

	if err := w.prospects.UpdateStatus(ctx, p.ID, prospect.StatusApproved); err != nil {
		res.Warnings = append(res.Warnings, &StepError{Kind: KindStatusUpdate, Step: StepUpdateStatus, Err: err})
	}

	if len(res.Warnings) > 0 {
		res.Outcome = OutcomePartialSuccess
		return res
	}
	res.Outcome = OutcomeSuccess
	res.RedirectTo = organizationPath(org.ID)
	return res
}

// alreadyConverted stops a second approval before any write. An approved
// status or an organization already linked to the prospect both count.
func (w *Workflow) alreadyConverted(ctx context.Context, p *prospect.Prospect) (*Result, bool) {
	existing, err := w.orgs.GetByProspectID(ctx, p.ID)
	switch {
	case err == nil:
		return converted(p.ID, existing.ID), true
	case !errors.Is(err, organization.ErrOrganizationNotFound):
		return fatal(p.ID, KindFetch, StepCheckExisting, err), true
	case p.IsApproved():
		return converted(p.ID, ""), true
	}
	return nil, false
}

// convertedElsewhere handles losing the insert race to a concurrent
// approval of the same prospect.
func (w *Workflow) convertedElsewhere(ctx context.Context, p *prospect.Prospect) *Result {
	existing, err := w.orgs.GetByProspectID(ctx, p.ID)
	if err != nil {
		w.log.Warn("organization for converted prospect not readable",
			zap.String("prospect_id", p.ID),
			zap.Error(err),
		)
		return converted(p.ID, "")
	}
	return converted(p.ID, existing.ID)
}

func converted(prospectID, orgID string) *Result {
	res := &Result{
		Outcome:        OutcomeAlreadyConverted,
		ProspectID:     prospectID,
		OrganizationID: orgID,
	}
	if orgID != "" {
		res.RedirectTo = organizationPath(orgID)
	}
	return res
}

// Reject marks the prospect rejected. Nothing else is written.
func (w *Workflow) Reject(ctx context.Context, prospectID string, actor Actor) *Result {
	ctx = context.WithoutCancel(ctx)
	res := &Result{Outcome: OutcomeSuccess, ProspectID: prospectID}
	if err := w.prospects.UpdateStatus(ctx, prospectID, prospect.StatusRejected); err != nil {
		res = fatal(prospectID, KindStatusUpdate, StepUpdateStatus, err)
	}

	res.Notice = rejectNotice(res)
	w.finish(ctx, "reject", actor, res)
	return res
}

// Assign makes userID the owner of the prospect and caches the user's display
// name on it. A new or pending prospect moves to in_progress; any other
// status is kept.
//
// The read of the status and the write are not guarded against concurrent
// assignments; the last writer wins.
func (w *Workflow) Assign(ctx context.Context, prospectID, userID string, actor Actor) *Result {
	ctx = context.WithoutCancel(ctx)
	res, company, name := w.assign(ctx, prospectID, userID)
	res.Notice = assignNotice(res, company, name)
	w.finish(ctx, "assign", actor, res)
	return res
}

func (w *Workflow) assign(ctx context.Context, prospectID, userID string) (*Result, string, string) {
	name, err := w.users.DisplayName(ctx, userID)
	if err != nil {
		return fatal(prospectID, KindAssignment, StepLookupUser, err), "", ""
	}

	p, err := w.prospects.GetByID(ctx, prospectID)
	if err != nil {
		return fatal(prospectID, KindAssignment, StepFetchProspect, err), "", name
	}

	a := prospect.Assignment{UserID: userID, UserName: name}
	if p.Status.Assignable() {
		next := prospect.StatusInProgress
		a.Status = &next
	}

	if err := w.prospects.Assign(ctx, p.ID, a); err != nil {
		return fatal(p.ID, KindAssignment, StepWriteAssignment, err), p.CompanyName, name
	}

	return &Result{Outcome: OutcomeSuccess, ProspectID: p.ID}, p.CompanyName, name
}

// finish logs the run and sends its notice. A notifier failure is logged
// and does not change the result.
func (w *Workflow) finish(ctx context.Context, action string, actor Actor, res *Result) {
	fields := []zap.Field{
		zap.String("action", action),
		zap.String("prospect_id", res.ProspectID),
		zap.String("outcome", string(res.Outcome)),
		zap.String("actor_id", actor.UserID),
	}
	if res.OrganizationID != "" {
		fields = append(fields, zap.String("organization_id", res.OrganizationID))
	}

	switch res.Outcome {
	case OutcomeFatal:
		w.log.Error("prospect workflow failed", append(fields,
			zap.String("step", string(res.Err.Step)),
			zap.Error(res.Err.Err),
		)...)
	case OutcomePartialSuccess:
		for _, warn := range res.Warnings {
			w.log.Warn("prospect workflow step failed", append(fields,
				zap.String("step", string(warn.Step)),
				zap.Error(warn.Err),
			)...)
		}
	default:
		w.log.Info("prospect workflow completed", fields...)
	}

	if err := w.notifier.Notify(ctx, actor.UserID, res.Notice); err != nil {
		w.log.Warn("workflow notification not delivered", append(fields, zap.Error(err))...)
	}
}
