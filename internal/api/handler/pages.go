package handler

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"edu_hub/internal/api/middleware"
	"edu_hub/internal/common"
	"edu_hub/internal/common/security"
	"edu_hub/internal/web"

	"github.com/go-chi/chi/v5"
)

// Pages carries what every HTML handler needs: the renderer and the flash
// cookie lifetime.
type Pages struct {
	renderer *web.Renderer
	flashTTL time.Duration
}

func NewPages(renderer *web.Renderer, flashTTL time.Duration) *Pages {
	return &Pages{renderer: renderer, flashTTL: flashTTL}
}

// render shows a page along with any pending flashes, consuming them.
func (p *Pages) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	flashes := middleware.FlashesFromContext(r.Context())
	if len(flashes) > 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     security.FlashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	page := web.Page{Title: title, Flashes: flashes, Data: data}
	if err := p.renderer.Render(w, http.StatusOK, name, page); err != nil {
		log.Printf("ERROR: Rendering page %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// redirectWithFlash queues a message for the next rendered page and redirects.
// Messages not yet shown are carried along.
func (p *Pages) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, category, message string) {
	flashes := append(slices.Clone(middleware.FlashesFromContext(r.Context())), security.Flash{Category: category, Message: message})
	token, err := security.EncodeFlashes(flashes, p.flashTTL)
	if err != nil {
		log.Printf("ERROR: Encoding flash %q: %v", message, err)
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     security.FlashCookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(p.flashTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// referrerOr returns the local path of the Referer header, or fallback when
// there is none. The host is dropped, and a path starting with "//" would be
// read as another host, so it falls back too.
func referrerOr(r *http.Request, fallback string) string {
	ref := r.Referer()
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// missingForm reports whether any of the named form fields is empty.
func missingForm(r *http.Request, fields ...string) bool {
	for _, f := range fields {
		if r.FormValue(f) == "" {
			return true
		}
	}
	return false
}

// formInts parses the named form fields as integers.
func formInts(r *http.Request, fields ...string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(f)))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// formError turns a service error into a message for the user. Validation
// failures get the form's own message; anything else is logged.
func formError(err error, required string) string {
	if errors.Is(err, common.ErrBadRequest) {
		return required
	}
	log.Printf("ERROR: Handling form: %v", err)
	return "Something went wrong, please try again."
}

func urlParamInt(r *http.Request, key string) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, key))
	return n, err == nil
}
