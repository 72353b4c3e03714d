// Package booking wires the quick-book and full booking forms of a page to
// the booking service.
package booking

import (
	"context"
	"starlight/internal/domains/booking/model"
	"starlight/internal/domains/booking/model/dto"
	"starlight/internal/domains/booking/service"
	journalModel "starlight/internal/domains/journal/model"
	"starlight/internal/page"
	"starlight/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

const (
	RoleQuickForm     = "quick-form"
	RoleBookingForm   = "booking-form"
	RoleBookingStatus = "booking-status"
	RoleHoneypot      = "honeypot"

	AttrEndpoint = "data-endpoint"
	AttrState    = "data-state"
	AttrError    = "data-error"

	EventSubmit = "submit"
)

// Controller binds the forms of one visitor's document.
type Controller struct {
	doc     *page.Document
	service service.Booking
	owner   string
	// honeypot is the trap field name used when the markup does not tag one.
	honeypot string
	// endpoint is used when the form names none.
	endpoint string
}

func New(doc *page.Document, svc service.Booking, owner, honeypot, endpoint string) *Controller {
	return &Controller{
		doc:      doc,
		service:  svc,
		owner:    owner,
		honeypot: honeypot,
		endpoint: endpoint,
	}
}

// InstallQuick binds the quick-book form. Missing form, nothing to do.
func (c *Controller) InstallQuick() {
	form := c.doc.ByRole(RoleQuickForm)
	if form == nil {
		return
	}

	c.doc.TrackForm(form)

	c.doc.On(form, EventSubmit, func(ctx context.Context, ev *page.Event) {
		ev.PreventDefault()

		values := page.FormValues(form)

		res, err := c.service.QuickBook(ctx, c.owner, dto.QuickBookRequest{
			Name:  values[journalModel.FieldName],
			Email: values[journalModel.FieldEmail],
			DOB:   values[journalModel.FieldDOB],
		})
		if err != nil {
			log.Warn().Err(err).Str("outcome", string(res.Outcome)).Msg("quick booking not stored")
		}

		if res.Status != constant.Empty {
			c.doc.Alert(res.Status)
		}

		if res.Outcome.Reset() {
			c.doc.ResetForm(form)
		}
	})
}

// InstallBooking binds the full booking form and its status placeholder.
func (c *Controller) InstallBooking() {
	form := c.doc.ByRole(RoleBookingForm)
	if form == nil {
		return
	}

	c.doc.TrackForm(form)

	c.doc.On(form, EventSubmit, func(ctx context.Context, ev *page.Event) {
		ev.PreventDefault()

		req := c.request(form)

		res, err := c.service.Submit(ctx, c.owner, req)
		if res.Outcome == model.OutcomeDiscarded {
			return
		}

		if err != nil {
			log.Warn().Err(err).Str("outcome", string(res.Outcome)).Msg("booking not completed")
		}

		c.markInvalid(form, req.Honeypot, res.Invalid)

		if status := c.doc.ByRole(RoleBookingStatus); status != nil {
			page.SetText(status, res.Status)
			page.SetAttr(status, AttrState, string(res.Outcome))
		}

		if res.Outcome.Reset() {
			c.doc.ResetForm(form)
		}
	})
}

func (c *Controller) honeypotName(form *html.Node) string {
	trap := page.FindFirst(form, func(n *html.Node) bool {
		role, _ := page.Attr(n, page.AttrRole)

		return role == RoleHoneypot
	})
	if trap != nil {
		if name, ok := page.Attr(trap, "name"); ok && name != constant.Empty {
			return name
		}
	}

	if c.honeypot != constant.Empty {
		return c.honeypot
	}

	return model.DefaultHoneypot
}

func (c *Controller) endpointOf(form *html.Node) string {
	for _, attr := range []string{AttrEndpoint, "action"} {
		if v, ok := page.Attr(form, attr); ok && strings.TrimSpace(v) != constant.Empty {
			return strings.TrimSpace(v)
		}
	}

	return c.endpoint
}

func isButton(ctl page.Control) bool {
	switch strings.ToLower(ctl.Type) {
	case "submit", "button", "reset", "image":
		return true
	default:
		return false
	}
}

// request collects the field values and constraint attributes of form.
func (c *Controller) request(form *html.Node) dto.BookingRequest {
	req := dto.BookingRequest{
		Fields:      map[string]string{},
		Constraints: map[string]model.Constraint{},
		Honeypot:    c.honeypotName(form),
		Endpoint:    c.endpointOf(form),
	}

	for _, ctl := range page.Controls(form) {
		if isButton(ctl) {
			continue
		}

		if v, ok := page.Value(ctl); ok {
			req.Fields[ctl.Name] = v
		}

		if ctl.Name == req.Honeypot {
			continue
		}

		if constraint, ok := constraintOf(ctl); ok {
			req.Constraints[ctl.Name] = constraint
		}
	}

	return req
}

func constraintOf(ctl page.Control) (model.Constraint, bool) {
	var constraint model.Constraint

	_, constraint.Required = page.Attr(ctl.Node, "required")

	switch t := strings.ToLower(ctl.Type); t {
	case model.InputEmail, model.InputDate, model.InputURL, model.InputNumber, model.InputTel:
		constraint.Type = t
	}

	if v, ok := page.Attr(ctl.Node, "minlength"); ok {
		constraint.MinLength = model.ParseLength(v)
	}

	if v, ok := page.Attr(ctl.Node, "maxlength"); ok {
		constraint.MaxLength = model.ParseLength(v)
	}

	return constraint, constraint != model.Constraint{}
}

// markInvalid flags each invalid control and focuses the first one in
// document order. Previous marks are cleared.
func (c *Controller) markInvalid(form *html.Node, honeypot string, invalid map[string]string) {
	var first *html.Node

	for _, ctl := range page.Controls(form) {
		if ctl.Name == honeypot {
			continue
		}

		msg, bad := invalid[ctl.Name]
		if !bad {
			page.RemoveAttr(ctl.Node, "aria-invalid")
			page.RemoveAttr(ctl.Node, AttrError)

			continue
		}

		page.SetAttr(ctl.Node, "aria-invalid", "true")
		page.SetAttr(ctl.Node, AttrError, msg)

		if first == nil {
			first = ctl.Node
		}
	}

	if first != nil {
		c.doc.Focus(first)
	}
}
