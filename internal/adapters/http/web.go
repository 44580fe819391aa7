package httpadapter

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/adapters/presenter"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	sessionName      = "laptop_price"
	sessionKeyRam    = "ram"
	sessionKeyInches = "inches"
	sessionKeyTheme  = "theme"

	themeDark  = "Dark"
	themeLight = "Light"

	missingSelectionMessage = "Please select RAM and Screen Size!"
)

// newSessionStore keys the cookie store from SESSION_SECRET. Without one,
// a random key is generated and sessions do not survive a restart.
func newSessionStore(cfg config.Config) (sessions.Store, error) {
	var key []byte
	if cfg.SessionSecret != "" {
		sum := sha256.Sum256([]byte(cfg.SessionSecret))
		key = sum[:]
	} else {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("generate session key")
		}
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAgeSeconds,
		Secure:   cfg.SessionSecureCookie,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

// formSelection is the state kept between renders of the form.
type formSelection struct {
	Ram    *int
	Inches *float64
	Theme  string
}

func (rt *Router) loadSession(r *http.Request) (*sessions.Session, formSelection) {
	session, err := rt.sessions.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie yields a fresh session.
		slog.Debug("session_reset", "request_id", requestIDFromContext(r.Context()), "error", err.Error())
	}

	sel := formSelection{Theme: themeDark}
	if ram, ok := session.Values[sessionKeyRam].(int); ok {
		sel.Ram = &ram
	}
	if inches, ok := session.Values[sessionKeyInches].(float64); ok {
		sel.Inches = &inches
	}
	if theme, ok := session.Values[sessionKeyTheme].(string); ok {
		sel.Theme = theme
	}
	return session, sel
}

func (rt *Router) saveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) {
	if err := session.Save(r, w); err != nil {
		slog.Warn("session_save_failed", "request_id", requestIDFromContext(r.Context()), "error", err.Error())
	}
}

func (rt *Router) showForm(w http.ResponseWriter, r *http.Request) {
	_, sel := rt.loadSession(r)
	rt.renderForm(w, r, http.StatusOK, sel, formOutcome{})
}

func (rt *Router) selectRam(w http.ResponseWriter, r *http.Request) {
	session, sel := rt.loadSession(r)
	raw := r.PostFormValue("ram")
	ram, err := strconv.Atoi(raw)
	if err != nil || !rt.describer.Catalog().HasRam(ram) {
		rt.renderForm(w, r, http.StatusBadRequest, sel, formOutcome{Error: fmt.Sprintf("Unknown RAM size %q", raw)})
		return
	}

	sel.Ram = &ram
	session.Values[sessionKeyRam] = ram
	rt.saveSession(w, r, session)
	rt.renderForm(w, r, http.StatusOK, sel, formOutcome{})
}

func (rt *Router) selectInches(w http.ResponseWriter, r *http.Request) {
	session, sel := rt.loadSession(r)
	raw := r.PostFormValue("inches")
	inches, err := strconv.ParseFloat(raw, 64)
	if err != nil || !rt.describer.Catalog().HasInches(inches) {
		rt.renderForm(w, r, http.StatusBadRequest, sel, formOutcome{Error: fmt.Sprintf("Unknown screen size %q", raw)})
		return
	}

	sel.Inches = &inches
	session.Values[sessionKeyInches] = inches
	rt.saveSession(w, r, session)
	rt.renderForm(w, r, http.StatusOK, sel, formOutcome{})
}

func (rt *Router) selectTheme(w http.ResponseWriter, r *http.Request) {
	session, sel := rt.loadSession(r)
	theme := r.PostFormValue("theme")
	if theme != themeDark && theme != themeLight {
		rt.renderForm(w, r, http.StatusBadRequest, sel, formOutcome{Error: fmt.Sprintf("Unknown theme %q", theme)})
		return
	}

	sel.Theme = theme
	session.Values[sessionKeyTheme] = theme
	rt.saveSession(w, r, session)
	rt.renderForm(w, r, http.StatusOK, sel, formOutcome{})
}

func (rt *Router) predictFromForm(w http.ResponseWriter, r *http.Request) {
	_, sel := rt.loadSession(r)
	if sel.Ram == nil || sel.Inches == nil {
		rt.renderForm(w, r, http.StatusUnprocessableEntity, sel, formOutcome{Warning: missingSelectionMessage})
		return
	}

	spec, err := rt.specFromForm(r, sel)
	if err != nil {
		rt.renderForm(w, r, mapErrorToHTTPStatus(err), sel, formOutcome{Error: "Prediction failed: " + err.Error()})
		return
	}

	prediction, err := rt.predictor.Predict(r.Context(), spec)
	switch {
	case domain.IsKind(err, domain.ErrMissingSelection):
		rt.renderForm(w, r, http.StatusUnprocessableEntity, sel, formOutcome{Warning: missingSelectionMessage})
	case err != nil:
		rt.renderForm(w, r, mapErrorToHTTPStatus(err), sel, formOutcome{Error: "Prediction failed: " + err.Error()})
	default:
		rt.renderForm(w, r, http.StatusOK, sel, formOutcome{Price: rt.prices.Format(prediction.Price)})
	}
}

// formValue returns the submitted value or the first catalog choice.
func formValue(r *http.Request, name string, choices []string) string {
	if v := strings.TrimSpace(r.PostFormValue(name)); v != "" {
		return v
	}
	if len(choices) > 0 {
		return choices[0]
	}
	return ""
}

func (rt *Router) specFromForm(r *http.Request, sel formSelection) (domain.SpecificationRecord, error) {
	catalog := rt.describer.Catalog()
	spec := domain.SpecificationRecord{
		Company:  formValue(r, "company", catalog.Companies),
		TypeName: formValue(r, "type_name", catalog.TypeNames),
		CPUBrand: formValue(r, "cpu_brand", catalog.CPUBrands),
		Ram:      sel.Ram,
		Memory:   formValue(r, "memory", catalog.Memories),
		GPUBrand: formValue(r, "gpu_brand", catalog.GPUBrands),
		OpSys:    formValue(r, "op_sys", catalog.OpSystems),
		Weight:   catalog.DefaultWeight,
		Inches:   sel.Inches,
		Touch:    formValue(r, "touch", catalog.YesNo),
		IPS:      formValue(r, "ips", catalog.YesNo),
		Pixels:   formValue(r, "pixels", catalog.Resolution),
	}
	if raw := strings.TrimSpace(r.PostFormValue("weight")); raw != "" {
		weight, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return spec, domain.WrapError(domain.ErrInvalidInput, "read form", fmt.Errorf("weight %q is not a number", raw))
		}
		spec.Weight = weight
	}
	return spec, nil
}

type formOutcome struct {
	Warning string
	Error   string
	Price   string
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type selectView struct {
	Name    string
	Label   string
	Options []optionView
}

type pageView struct {
	Theme         string
	Themes        []optionView
	Selects       []selectView
	Weight        string
	MinWeight     float64
	MaxWeight     float64
	RamButtons    []optionView
	InchesButtons []optionView
	RamStatus     string
	InchesStatus  string
	Outcome       formOutcome
}

func (rt *Router) renderForm(w http.ResponseWriter, r *http.Request, status int, sel formSelection, outcome formOutcome) {
	_ = r.ParseForm()
	catalog := rt.describer.Catalog()

	view := pageView{
		Theme:     sel.Theme,
		Themes:    options([]string{themeDark, themeLight}, sel.Theme),
		Weight:    strconv.FormatFloat(catalog.DefaultWeight, 'f', -1, 64),
		MinWeight: catalog.MinWeight,
		MaxWeight: catalog.MaxWeight,
		Outcome:   outcome,
		Selects: []selectView{
			{Name: "company", Label: "Brand", Options: options(catalog.Companies, formValue(r, "company", catalog.Companies))},
			{Name: "type_name", Label: "Laptop Type", Options: options(catalog.TypeNames, formValue(r, "type_name", catalog.TypeNames))},
			{Name: "cpu_brand", Label: "CPU Brand", Options: options(catalog.CPUBrands, formValue(r, "cpu_brand", catalog.CPUBrands))},
			{Name: "memory", Label: "Storage", Options: options(catalog.Memories, formValue(r, "memory", catalog.Memories))},
			{Name: "gpu_brand", Label: "GPU", Options: options(catalog.GPUBrands, formValue(r, "gpu_brand", catalog.GPUBrands))},
			{Name: "op_sys", Label: "Operating System", Options: options(catalog.OpSystems, formValue(r, "op_sys", catalog.OpSystems))},
			{Name: "touch", Label: "Touchscreen", Options: options(catalog.YesNo, formValue(r, "touch", catalog.YesNo))},
			{Name: "ips", Label: "IPS Display", Options: options(catalog.YesNo, formValue(r, "ips", catalog.YesNo))},
			{Name: "pixels", Label: "Screen Resolution", Options: options(catalog.Resolution, formValue(r, "pixels", catalog.Resolution))},
		},
		RamStatus:    "No RAM selected",
		InchesStatus: "No size selected",
	}
	if raw := strings.TrimSpace(r.PostFormValue("weight")); raw != "" {
		view.Weight = raw
	}

	for _, ram := range catalog.RamSizes {
		view.RamButtons = append(view.RamButtons, optionView{
			Value:    strconv.Itoa(ram),
			Label:    fmt.Sprintf("%d GB", ram),
			Selected: sel.Ram != nil && *sel.Ram == ram,
		})
	}
	for _, inches := range catalog.Inches {
		view.InchesButtons = append(view.InchesButtons, optionView{
			Value:    presenter.Inches(inches),
			Label:    presenter.Inches(inches) + `"`,
			Selected: sel.Inches != nil && *sel.Inches == inches,
		})
	}
	if sel.Ram != nil {
		view.RamStatus = fmt.Sprintf("Selected RAM: %d GB", *sel.Ram)
	}
	if sel.Inches != nil {
		view.InchesStatus = fmt.Sprintf("Screen Size: %s\"", presenter.Inches(*sel.Inches))
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", view); err != nil {
		slog.Error("render_form_failed", "request_id", requestIDFromContext(r.Context()), "error", err.Error())
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func options(values []string, selected string) []optionView {
	out := make([]optionView, 0, len(values))
	for _, v := range values {
		out = append(out, optionView{Value: v, Label: v, Selected: v == selected})
	}
	return out
}
