package handlers

import (
	"errors"
	"net/http"

	"gymnexa/middleware"
	"gymnexa/services/forms"
	"gymnexa/services/wizard"
	"gymnexa/utils"

	"github.com/gin-gonic/gin"
)

// wizardStatus is 422 while the wizard shows a validation error.
func wizardStatus(c wizard.Controller) int {
	if c.Error != "" {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

func fieldError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Campo non valido", err.Error())
}

// GetSignupHandler handles GET /api/signup.
func (h *HandlerBundle) GetSignupHandler(c *gin.Context) {
	c.JSON(http.StatusOK, signupView(middleware.Session(c).SignupWizard()))
}

// UpdateSignupHandler handles PATCH /api/signup with one or more field edits.
func (h *HandlerBundle) UpdateSignupHandler(c *gin.Context) {
	w := middleware.Session(c).SignupWizard()
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	for _, u := range updates {
		if err := w.Update(u); err != nil {
			fieldError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, signupView(w))
}

// NextSignupHandler handles POST /api/signup/next.
func (h *HandlerBundle) NextSignupHandler(c *gin.Context) {
	w := middleware.Session(c).SignupWizard()
	w.Next()
	c.JSON(wizardStatus(w.Controller), signupView(w))
}

// BackSignupHandler handles POST /api/signup/back.
func (h *HandlerBundle) BackSignupHandler(c *gin.Context) {
	w := middleware.Session(c).SignupWizard()
	w.Back()
	c.JSON(http.StatusOK, signupView(w))
}

// SubmitSignupHandler handles POST /api/signup/submit. The athletic document
// comes as the multipart field "document".
func (h *HandlerBundle) SubmitSignupHandler(c *gin.Context) {
	s := middleware.Session(c)
	w := s.SignupWizard()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.UploadLimit)
	doc, closeDoc, err := formFile(c, "document")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File non valido", err.Error())
		return
	}
	defer closeDoc()

	ctx := c.Request.Context()
	_, err = h.Submitter.SubmitSignup(sessionContext(c), w, doc)
	h.Metrics.ObserveSubmit("signup", err)
	if err != nil {
		if errors.Is(err, wizard.ErrNotLastStep) {
			utils.JSONError(c, http.StatusConflict, "Completa prima i passaggi precedenti", err.Error())
			return
		}
		status := statusFor(err)
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, signupView(w))
		return
	}

	_ = h.Sessions.ReloadProfile(ctx, s)
	if err := s.Gate.SignedIn(false); err != nil {
		transitionError(c, err)
		return
	}
	s.Signup = nil
	c.JSON(http.StatusOK, sessionView(s))
}

// completion returns the session's completion wizard or renders a conflict.
func completion(c *gin.Context) (*wizard.Completion, bool) {
	w := middleware.Session(c).Completion
	if w == nil {
		utils.JSONError(c, http.StatusConflict, "Nessun profilo da completare", "")
		return nil, false
	}
	return w, true
}

// GetCompletionHandler handles GET /api/completion.
func (h *HandlerBundle) GetCompletionHandler(c *gin.Context) {
	if w, ok := completion(c); ok {
		c.JSON(http.StatusOK, completionView(w))
	}
}

// UpdateCompletionHandler handles PATCH /api/completion.
func (h *HandlerBundle) UpdateCompletionHandler(c *gin.Context) {
	w, ok := completion(c)
	if !ok {
		return
	}
	updates, ok := bindUpdates(c)
	if !ok {
		return
	}
	for _, u := range updates {
		if err := w.Update(u); err != nil {
			if errors.Is(err, forms.ErrFieldNotInForm) {
				utils.JSONError(c, http.StatusBadRequest, "Campo non previsto", err.Error())
				return
			}
			fieldError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, completionView(w))
}

func (h *HandlerBundle) NextCompletionHandler(c *gin.Context) {
	if w, ok := completion(c); ok {
		w.Next()
		c.JSON(wizardStatus(w.Controller), completionView(w))
	}
}

func (h *HandlerBundle) BackCompletionHandler(c *gin.Context) {
	if w, ok := completion(c); ok {
		w.Back()
		c.JSON(http.StatusOK, completionView(w))
	}
}

// SubmitCompletionHandler handles POST /api/completion/submit with the "document" file.
func (h *HandlerBundle) SubmitCompletionHandler(c *gin.Context) {
	s := middleware.Session(c)
	w, ok := completion(c)
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.UploadLimit)
	doc, closeDoc, err := formFile(c, "document")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File non valido", err.Error())
		return
	}
	defer closeDoc()

	_, err = h.Submitter.SubmitCompletion(c.Request.Context(), w, doc)
	h.Metrics.ObserveSubmit("completion", err)
	if err != nil {
		if errors.Is(err, wizard.ErrNotLastStep) {
			utils.JSONError(c, http.StatusConflict, "Completa prima i passaggi precedenti", err.Error())
			return
		}
		status := statusFor(err)
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, completionView(w))
		return
	}

	_ = h.Sessions.ReloadProfile(c.Request.Context(), s)
	if err := s.Gate.CompletionDone(); err != nil {
		transitionError(c, err)
		return
	}
	s.Completion = nil
	c.JSON(http.StatusOK, sessionView(s))
}
