package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"starlight/config"
	"starlight/infras/otel"
	"starlight/internal/domains/booking/model"
	"starlight/internal/domains/booking/model/dto"
	"starlight/internal/domains/booking/submitter"
	journalModel "starlight/internal/domains/journal/model"
	journal "starlight/internal/domains/journal/service"
	"starlight/shared"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"starlight/shared/timezone"
	"starlight/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	StatusQuickInvalid = "Please fill in your name, email and date of birth."
	StatusQuickSaved   = "Thank you! Your booking request has been received."
	StatusInvalid      = "Please correct the highlighted fields."
	StatusConfirmed    = "Thank you! Your booking is confirmed and we will be in touch shortly."
	StatusFallback     = "Saved locally, will retry. We could not reach the booking service just now."
	StatusLocalOnly    = "Your booking request has been saved. We will contact you to confirm."
	statusFailed       = "Sorry, we could not save your booking. Please contact us at %s."
)

type Booking interface {
	QuickBook(ctx context.Context, owner string, req dto.QuickBookRequest) (dto.Result, error)
	Submit(ctx context.Context, owner string, req dto.BookingRequest) (dto.Result, error)
}

type serviceImpl struct {
	journal   journal.Journal
	submitter submitter.Submitter
	cfg       *config.Config
	otel      otel.Otel
}

func New(journal journal.Journal, submitter submitter.Submitter, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		journal:   journal,
		submitter: submitter,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) failed(err error) (dto.Result, error) {
	return dto.Result{
		Outcome: model.OutcomeFailed,
		Status:  fmt.Sprintf(statusFailed, s.cfg.App.Contact),
	}, err
}

// QuickBook stores the quick form in the journal. Nothing is stored unless
// all three fields are present after trimming.
func (s *serviceImpl) QuickBook(ctx context.Context, owner string, req dto.QuickBookRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuickBook")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fields := shared.TrimFields(req.Fields())
	trimmed := dto.QuickBookRequest{
		Name:  fields[journalModel.FieldName],
		Email: fields[journalModel.FieldEmail],
		DOB:   fields[journalModel.FieldDOB],
	}

	if err = validator.ValidateStruct(&trimmed); err != nil {
		var invalid map[string]string

		var fail *failure.Failure
		if errors.As(err, &fail) {
			invalid = fail.Fields
		}

		return dto.Result{Outcome: model.OutcomeInvalid, Status: StatusQuickInvalid, Invalid: invalid}, err
	}

	record := journalModel.Record{Fields: fields, Created: timezone.Stamp()}

	if err = s.journal.Append(ctx, owner, record); err != nil {
		log.Error().Err(err).Str("owner", owner).Msg("failed to store quick booking")

		return s.failed(err)
	}

	return dto.Result{Outcome: model.OutcomeSaved, Status: StatusQuickSaved, Record: &record}, nil
}

// Submit runs the full booking flow: honeypot, constraint validation, an
// optional network submission and the journal as fallback. A failed
// submission is never retried here.
func (s *serviceImpl) Submit(ctx context.Context, owner string, req dto.BookingRequest) (res dto.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SubmitBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	honeypot := req.Honeypot
	if honeypot == constant.Empty {
		honeypot = s.cfg.Site.HoneypotField
	}

	if honeypot == constant.Empty {
		honeypot = model.DefaultHoneypot
	}

	if strings.TrimSpace(req.Fields[honeypot]) != constant.Empty {
		log.Info().Str("owner", owner).Msg("honeypot field populated, discarding booking")
		scope.AddEvent("booking discarded by honeypot")

		return dto.Result{Outcome: model.OutcomeDiscarded}, nil
	}

	fields := maps.Clone(req.Fields)
	delete(fields, honeypot)

	if invalid := validate(fields, req.Constraints); len(invalid) > 0 {
		err = failure.ValidationError(StatusInvalid, invalid)

		return dto.Result{Outcome: model.OutcomeInvalid, Status: StatusInvalid, Invalid: invalid}, err
	}

	record := journalModel.Record{Fields: fields, SubmittedAt: timezone.Stamp()}
	res = dto.Result{Outcome: model.OutcomeLocalOnly, Status: StatusLocalOnly}

	if submitter.ValidEndpoint(req.Endpoint) {
		payload, submitErr := s.submitter.Submit(ctx, req.Endpoint, fields)
		if submitErr == nil {
			record.ServerResponse = payload
			res = dto.Result{Outcome: model.OutcomeConfirmed, Status: StatusConfirmed}
		} else {
			log.Warn().Err(submitErr).Str("endpoint", req.Endpoint).Msg("booking submission failed, saving locally")
			scope.AddEvent("booking submission fell back to journal")

			res = dto.Result{Outcome: model.OutcomeFallback, Status: StatusFallback}
		}
	} else if req.Endpoint != constant.Empty {
		log.Warn().Str("endpoint", req.Endpoint).Msg("booking endpoint is not a web URL, saving locally")
	}

	if !record.Confirmed() {
		record.SavedAt = record.SubmittedAt
	}

	if err = s.journal.Append(ctx, owner, record); err != nil {
		log.Error().Err(err).Str("owner", owner).Str("outcome", string(res.Outcome)).Msg("failed to store booking")

		return s.failed(err)
	}

	res.Record = &record

	return res, nil
}

// validate checks every constrained field and returns a message per invalid
// field.
func validate(fields map[string]string, constraints map[string]model.Constraint) map[string]string {
	if constraints == nil {
		constraints = model.DefaultConstraints()
	}

	invalid := map[string]string{}

	for _, name := range slices.Sorted(maps.Keys(constraints)) {
		if msg, ok := validator.ValidateNamed(name, fields[name], constraints[name].Tag()); !ok {
			invalid[name] = msg
		}
	}

	return invalid
}
