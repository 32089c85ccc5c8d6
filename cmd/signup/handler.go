package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formcheck/pkg/csrf"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/validation"
)

const (
	birthdayLayout  = "2006-01-02"
	usernamePattern = `[a-z0-9_]{3,20}`
	websitePattern  = `(https?://[^\s/$.?#][^\s]*)?`
)

var plans = []any{"free", "pro", "team"}

// Fields kept out of the stored record.
var transientFields = []string{"password_confirmation", "csrf_token", "captcha"}

type signupHandler struct {
	csrf          *csrf.Manager
	log           *slog.Logger
	validatorOpts []validation.Option
}

func newSignupHandler(m *csrf.Manager, log *slog.Logger, opts ...validation.Option) *signupHandler {
	opts = append([]validation.Option{validation.WithSanitizer(validation.SanitizerFunc(formSanitizer))}, opts...)
	return &signupHandler{csrf: m, log: log, validatorOpts: opts}
}

func (h *signupHandler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, err := h.csrf.Issue(ctx, csrf.SessionIDFromContext(ctx))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not issue csrf token"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"csrf_token": token})
}

func (h *signupHandler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed form"})
		return
	}
	form := r.PostForm

	// One validator per request; it is reused field by field.
	v := validation.New(h.validatorOpts...)

	results := validation.Results{
		"name": v.Sanitize(form.Get("name")).
			Required("Name is required").Min(2, "").Max(64, "").Run(),
		"username": v.Sanitize(form.Get("username")).
			Required("").Regex(usernamePattern, "Use 3-20 lowercase letters, digits or underscores").Run(),
		"email": v.Email(form.Get("email"), "").Run(),
		"password": v.Set(form.Get("password")).
			Required("").Min(8, "").Max(72, "").
			Equals(form.Get("password_confirmation"), "Passwords do not match").
			Hash("").Run(),
		"password_confirmation": v.Set(form.Get("password_confirmation")).Required("").Run(),
		"age": v.Set(form.Get("age")).
			Required("").Integer("").Between(18, 120, "You must be between 18 and 120").Run(),
		"birthday": v.Set(form.Get("birthday")).Required("").Date(birthdayLayout, "").Run(),
		"plan":     v.Set(form.Get("plan")).Required("").In(plans, "Unknown plan").Run(),
		"website":  v.Sanitize(form.Get("website")).Regex(websitePattern, "Website must be an http(s) URL").Run(),
		"csrf_token": v.Set(form.Get("csrf_token")).
			CSRFFrom(ctx, h.csrf.ContextSource(), "Form expired, reload the page").Run(),
		"captcha": v.Captcha(ctx, form.Get("g-recaptcha-response"), "", "").Run(),
	}

	if !results.Approve() {
		h.log.InfoContext(ctx, "signup rejected",
			logger.Component("signup"),
			slog.Any("fields", results.Err()),
		)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": results.Errors()})
		return
	}

	// Each token is good for one successful submission.
	sid := csrf.SessionIDFromContext(ctx)
	if err := h.csrf.Revoke(ctx, sid, form.Get("csrf_token")); err != nil {
		h.log.WarnContext(ctx, "failed to revoke csrf token", logger.SessionID(sid), logger.Error(err))
	}

	writeJSON(w, http.StatusCreated, map[string]any{"data": results.Validated(transientFields...)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
