package form

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"sakha-landing/pkg/config"
	"sakha-landing/pkg/dom"
	"sakha-landing/pkg/models"
	"sakha-landing/pkg/phone"
	"sakha-landing/pkg/services"
	"sakha-landing/pkg/timeutil"
	"sakha-landing/pkg/utils"
)

// Element ids of the callback form.
const (
	FieldParentName   = "parent-name"
	FieldPhone        = "phone"
	FieldRelationship = "relationship"
	FieldLanguage     = "language"
	FieldCallTime     = "call-time"
)

// FieldIDs lists the form's fields in page order.
var FieldIDs = []string{FieldParentName, FieldPhone, FieldRelationship, FieldLanguage, FieldCallTime}

// Options tune a FormSubmissionController. Zero values select the defaults.
type Options struct {
	Submitter       services.Submitter
	Scheduler       timeutil.Scheduler
	ConfirmationTTL time.Duration
	Logger          *zap.Logger
}

// FormSubmissionController gates the callback form on a valid phone number,
// hands the captured snapshot to a submitter and shows a confirmation.
type FormSubmissionController struct {
	form      dom.Form
	phone     *PhoneFieldController
	submitter services.Submitter
	scheduler timeutil.Scheduler
	ttl       time.Duration
	logger    *zap.Logger

	mu     sync.Mutex
	timers map[timeutil.Timer]struct{}
}

// NewFormSubmissionController wires a controller to form. The phone
// controller must own the form's phone field.
func NewFormSubmissionController(form dom.Form, phoneCtl *PhoneFieldController, opts Options) *FormSubmissionController {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Submitter == nil {
		opts.Submitter = services.NewLocalSubmitter(opts.Logger)
	}
	if opts.Scheduler == nil {
		opts.Scheduler = timeutil.RealScheduler{}
	}
	if opts.ConfirmationTTL <= 0 {
		opts.ConfirmationTTL = config.DefaultConfirmationTTL
	}
	return &FormSubmissionController{
		form:      form,
		phone:     phoneCtl,
		submitter: opts.Submitter,
		scheduler: opts.Scheduler,
		ttl:       opts.ConfirmationTTL,
		logger:    opts.Logger,
		timers:    make(map[timeutil.Timer]struct{}),
	}
}

// HandleSubmit processes one submit event. With an invalid phone it focuses
// and annotates the phone field, leaves every value in place and returns
// phone.ErrInvalidFormat. If the submitter fails, a failure notice is shown
// and the values stay in place. Otherwise it returns the captured snapshot
// after the confirmation is shown and the form is cleared.
func (c *FormSubmissionController) HandleSubmit(ctx context.Context) (*models.FormSubmission, error) {
	field := c.phone.Field()
	if res := c.phone.Validate(); !res.Valid {
		field.Focus()
		field.SetCustomValidity(phone.SubmitMessage)
		field.ReportValidity()
		return nil, res.Err()
	}
	field.SetCustomValidity("")
	field.RemoveClass(ErrorClass)

	snapshot := c.snapshot()

	result, err := c.submitter.Submit(ctx, snapshot)
	if err != nil {
		c.logger.Warn("callback request not submitted",
			zap.String("phone", utils.MaskPhone(snapshot.Phone)),
			zap.Error(err),
		)
		c.schedulePanel(c.form.InsertAfter(FailureClass, failureHTML))
		return nil, fmt.Errorf("error submitting callback request: %w", err)
	}

	if err := c.showConfirmation(snapshot); err != nil {
		return nil, err
	}
	c.form.Reset()

	c.logger.Info("callback request confirmed", zap.String("reference_id", result.ReferenceID))
	return &snapshot, nil
}

// Close cancels every pending confirmation removal.
func (c *FormSubmissionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for t := range c.timers {
		t.Stop()
	}
	c.timers = make(map[timeutil.Timer]struct{})
}

func (c *FormSubmissionController) snapshot() models.FormSubmission {
	return models.FormSubmission{
		ParentName:   c.value(FieldParentName),
		Phone:        c.phone.Field().Value(),
		Relationship: c.value(FieldRelationship),
		Language:     c.value(FieldLanguage),
		CallTime:     c.value(FieldCallTime),
	}
}

func (c *FormSubmissionController) value(id string) string {
	f, ok := c.form.Field(id)
	if !ok {
		return ""
	}
	return f.Value()
}

func (c *FormSubmissionController) showConfirmation(data models.FormSubmission) error {
	html, err := renderConfirmation(data)
	if err != nil {
		return fmt.Errorf("error rendering confirmation: %w", err)
	}
	c.schedulePanel(c.form.InsertAfter(SuccessClass, html))
	return nil
}

// schedulePanel removes panel once the confirmation TTL has passed.
func (c *FormSubmissionController) schedulePanel(panel dom.Panel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var timer timeutil.Timer
	timer = c.scheduler.AfterFunc(c.ttl, func() {
		panel.Remove()
		c.mu.Lock()
		delete(c.timers, timer)
		c.mu.Unlock()
	})
	c.timers[timer] = struct{}{}
}
