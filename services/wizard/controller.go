// Package wizard implements the multi-step signup and profile-completion flows.
package wizard

import "errors"

// ValidationError is a step validation failure with a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// ErrNotLastStep is returned when submit is attempted before the last step.
var ErrNotLastStep = errors.New("wizard: submit is only allowed from the last step")

// Controller tracks the current step of an N-step wizard and its inline error.
type Controller struct {
	Step  int    `json:"step"`
	Total int    `json:"total"`
	Error string `json:"error,omitempty"`
}

func NewController(total int) Controller {
	return Controller{Step: 1, Total: total}
}

// Next validates the current step and advances on success. On the last step it
// only clears the error; the last step is left through Submit.
func (c *Controller) Next(validate func(step int) error) bool {
	c.Error = ""
	if c.IsLast() {
		return false
	}
	if err := validate(c.Step); err != nil {
		c.fail(err)
		return false
	}
	c.Step++
	return true
}

// Back returns to the previous step without re-validating.
func (c *Controller) Back() {
	c.Error = ""
	if c.Step > 1 {
		c.Step--
	}
}

func (c *Controller) IsLast() bool { return c.Step >= c.Total }

// Fail records msg as the inline error and keeps the current step.
func (c *Controller) Fail(msg string) { c.Error = msg }

func (c *Controller) fail(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		c.Error = verr.Message
		return
	}
	c.Error = err.Error()
}
