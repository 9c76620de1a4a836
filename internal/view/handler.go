package view

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/navigation"
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const sessionKey = "view_session"

// Page is everything the page template needs for one render.
type Page struct {
	View         string
	Mounted      []string
	ManageMode   bool
	Records      []leave.LeaveResponse
	Detail       *DetailPage
	Form         []FieldValue
	ScrollTop    int
	HistoryDepth int
	DeletePrompt string
}

type Handler struct {
	service   leave.Service
	sessions  *Sessions
	cookie    string
	applicant string
	tmpl      *template.Template
	logger    *zap.Logger
}

type Options struct {
	CookieName    string
	ApplicantName string
}

func NewHandler(service leave.Service, sessions *Sessions, opts Options, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("view.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("view.handler")
	}
	if opts.CookieName == "" {
		opts.CookieName = "leave_session"
	}
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"has": func(list []string, v string) bool {
			for _, x := range list {
				if x == v {
					return true
				}
			}
			return false
		},
	}).ParseFS(templateFS, "templates/*.tmpl"))

	return &Handler{
		service:   service,
		sessions:  sessions,
		cookie:    opts.CookieName,
		applicant: opts.ApplicantName,
		tmpl:      tmpl,
		logger:    l,
	}
}

// Session resolves the caller's session from its cookie, issuing a new one
// if needed, and serializes the request against it.
func (h *Handler) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(h.cookie)
		sess, created := h.sessions.Get(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(h.cookie, sess.ID, 0, "/", "", false, true)
		}

		ctx := contextutil.WithSessionID(c.Request.Context(), sess.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(sessionKey, sess)

		sess.mu.Lock()
		defer sess.mu.Unlock()
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet(sessionKey).(*Session)
}

func (h *Handler) redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Index(c *gin.Context) {
	sess := sessionFrom(c)
	ctx := c.Request.Context()
	nav := sess.Nav

	// The detail payload is a snapshot taken at select time. Re-read it so a
	// forward navigation never shows a record that was deleted meanwhile.
	var detail *DetailPage
	if nav.View() == navigation.Detail {
		if rec, ok := nav.Selected(); ok {
			fresh, err := h.service.GetByID(ctx, rec.ID)
			switch {
			case err == nil:
				detail = NewDetailPage(fresh, h.applicant)
			case errors.Is(err, leaveerrors.ErrLeaveNotFound):
				h.logger.Info("selected leave gone, returning to list", zap.String("leave_id", rec.ID))
				nav.Back()
			default:
				h.logger.Error("render detail failed", zap.String("leave_id", rec.ID), zap.Error(err))
				c.String(http.StatusInternalServerError, "unable to load leave record")
				return
			}
		}
	}

	records, err := h.service.List(ctx)
	if err != nil {
		h.logger.Error("render list failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "unable to load leave records")
		return
	}

	page := Page{
		View:         nav.View().Tag(),
		ManageMode:   nav.ManageMode(),
		Records:      records,
		ScrollTop:    nav.ScrollTop(),
		HistoryDepth: sess.History.Depth(),
		DeletePrompt: leave.DeletePrompt,
	}
	for _, v := range nav.Mounted() {
		page.Mounted = append(page.Mounted, v.Tag())
	}

	switch nav.View() {
	case navigation.Detail:
		page.Detail = detail
	case navigation.Form:
		page.Form = sess.Form.Fields()
	}

	c.Render(http.StatusOK, render.HTML{Template: h.tmpl, Name: "page", Data: page})
}

func (h *Handler) Select(c *gin.Context) {
	sess := sessionFrom(c)
	id := c.Param("id")

	rec, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Warn("select leave failed", zap.String("leave_id", id), zap.Error(err))
		h.redirectHome(c)
		return
	}
	sess.Nav.Select(rec)
	h.redirectHome(c)
}

func (h *Handler) Apply(c *gin.Context) {
	sess := sessionFrom(c)
	if sess.Nav.Apply() {
		sess.Form.Reset()
	}
	h.redirectHome(c)
}

func (h *Handler) Back(c *gin.Context) {
	sessionFrom(c).Nav.Back()
	h.redirectHome(c)
}

// PopState relays the browser's own back/forward buttons into the
// session's history so the server-side view follows the browser.
func (h *Handler) PopState(c *gin.Context) {
	sess := sessionFrom(c)
	switch strings.ToLower(c.PostForm("direction")) {
	case "forward":
		sess.History.Forward()
	default:
		sess.History.Back()
	}
	h.redirectHome(c)
}

func (h *Handler) Manage(c *gin.Context) {
	sessionFrom(c).Nav.ToggleManage()
	h.redirectHome(c)
}

// Scroll records the secondary panel's scroll offset so a re-render keeps
// the position.
func (h *Handler) Scroll(c *gin.Context) {
	var req struct {
		Top int `form:"top" json:"top"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	sessionFrom(c).Nav.SetScrollTop(req.Top)
	c.Status(http.StatusNoContent)
}

// UpdateForm stores the edited draft and recomputes the duration.
func (h *Handler) UpdateForm(c *gin.Context) {
	sess := sessionFrom(c)
	if sess.Nav.View() != navigation.Form {
		h.redirectHome(c)
		return
	}

	var req leave.CreateLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("bind form draft failed", zap.Error(err))
		h.redirectHome(c)
		return
	}
	if sess.Form.Update(req) {
		h.logger.Debug("form duration recomputed", zap.String("duration", sess.Form.Draft().Duration))
	}
	h.redirectHome(c)
}

func (h *Handler) Submit(c *gin.Context) {
	sess := sessionFrom(c)
	if sess.Nav.View() != navigation.Form {
		h.redirectHome(c)
		return
	}

	var req leave.CreateLeaveRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("bind form submit failed", zap.Error(err))
		h.redirectHome(c)
		return
	}
	sess.Form.Update(req)

	if _, err := h.service.Create(c.Request.Context(), sess.Form.Draft()); err != nil {
		h.logger.Error("submit leave failed", zap.Error(err))
		h.redirectHome(c)
		return
	}
	sess.Form.Reset()
	sess.Nav.Submitted()
	h.redirectHome(c)
}

func (h *Handler) Cancel(c *gin.Context) {
	sessionFrom(c).Nav.Cancel()
	h.redirectHome(c)
}

// Delete removes a record from the list's manage mode. The browser's
// confirm() answer arrives as confirm=yes.
func (h *Handler) Delete(c *gin.Context) {
	sess := sessionFrom(c)
	if sess.Nav.View() != navigation.List || !sess.Nav.ManageMode() {
		h.redirectHome(c)
		return
	}

	id := c.Param("id")
	answer := leave.Answer(c.PostForm("confirm") == "yes")
	if _, err := h.service.Delete(c.Request.Context(), id, answer); err != nil {
		h.logger.Error("delete leave failed", zap.String("leave_id", id), zap.Error(err))
	}
	h.redirectHome(c)
}
