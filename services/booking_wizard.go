package services

import (
	"fmt"
	"strings"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
)

// wizardSteps is the forward order of the join flow
var wizardSteps = []string{
	utils.StepPersonalInfo,
	utils.StepGroupPreference,
	utils.StepReview,
	utils.StepPayment,
	utils.StepSubmitted,
}

// BookingWizard is the join flow state machine.
// Only the personal info step gates forward movement.
type BookingWizard struct {
	Step string
	Form models.BookingForm
}

// NewBookingWizard starts a wizard at the personal info step
func NewBookingWizard() *BookingWizard {
	return &BookingWizard{
		Step: utils.StepPersonalInfo,
		Form: models.BookingForm{GroupSize: 1},
	}
}

// RestoreBookingWizard rebuilds a wizard from a saved draft
func RestoreBookingWizard(draft *models.BookingDraft) (*BookingWizard, error) {
	if stepIndex(draft.Step) < 0 {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown wizard step %q", draft.Step))
	}
	return &BookingWizard{Step: draft.Step, Form: draft.Form}, nil
}

// Next advances one step
func (w *BookingWizard) Next() error {
	switch w.Step {
	case utils.StepPersonalInfo:
		if err := validatePersonalInfo(w.Form); err != nil {
			return err
		}
	case utils.StepPayment:
		return utils.NewTransitionError("payment step completes with submit")
	case utils.StepSubmitted:
		return utils.NewTransitionError("booking already submitted")
	}
	w.Step = wizardSteps[stepIndex(w.Step)+1]
	return nil
}

// Back returns to the previous step
func (w *BookingWizard) Back() error {
	switch w.Step {
	case utils.StepPersonalInfo:
		return utils.NewTransitionError("already at the first step")
	case utils.StepSubmitted:
		return utils.NewTransitionError("booking already submitted")
	}
	w.Step = wizardSteps[stepIndex(w.Step)-1]
	return nil
}

// Submit completes the wizard from the payment step.
// Personal info is checked again since later patches may have changed it.
func (w *BookingWizard) Submit() error {
	if w.Step != utils.StepPayment {
		return utils.NewTransitionError(fmt.Sprintf("cannot submit from %s", w.Step))
	}
	if err := validatePersonalInfo(w.Form); err != nil {
		return err
	}
	w.Step = utils.StepSubmitted
	return nil
}

func (w *BookingWizard) Done() bool {
	return w.Step == utils.StepSubmitted
}

// ApplyPatch copies the non-nil fields of patch into the form.
// Nothing is applied when any field is rejected.
func (w *BookingWizard) ApplyPatch(patch models.BookingFormPatch) error {
	if w.Done() {
		return utils.NewTransitionError("booking already submitted")
	}

	form := w.Form
	if patch.GroupSize != nil {
		if err := utils.ValidatePositiveInt(*patch.GroupSize, "group size"); err != nil {
			return err
		}
		form.GroupSize = *patch.GroupSize
	}
	if patch.GroupPreference != nil && *patch.GroupPreference != "" {
		if err := utils.ValidateOneOf(*patch.GroupPreference, "group preference",
			utils.GroupPreferenceJoin, utils.GroupPreferencePrivate); err != nil {
			return err
		}
		form.GroupPreference = *patch.GroupPreference
	}
	if patch.PaymentOption != nil && *patch.PaymentOption != "" {
		if err := utils.ValidateOneOf(*patch.PaymentOption, "payment option",
			utils.PaymentOptionFull, utils.PaymentOptionDeposit); err != nil {
			return err
		}
		form.PaymentOption = *patch.PaymentOption
	}

	setString(&form.FullName, patch.FullName)
	setString(&form.Email, patch.Email)
	setString(&form.Phone, patch.Phone)
	setString(&form.Nationality, patch.Nationality)
	setString(&form.EmergencyContact, patch.EmergencyContact)
	setString(&form.SpecialRequests, patch.SpecialRequests)

	// Past the first step name and email may change but not be cleared
	if w.Step != utils.StepPersonalInfo {
		if err := validatePersonalInfo(form); err != nil {
			return err
		}
	}

	w.Form = form
	return nil
}

func validatePersonalInfo(form models.BookingForm) error {
	if err := utils.ValidateRequired(form.FullName, "full name"); err != nil {
		return err
	}
	return utils.ValidateRequired(form.Email, "email")
}

func stepIndex(step string) int {
	for i, s := range wizardSteps {
		if s == step {
			return i
		}
	}
	return -1
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
