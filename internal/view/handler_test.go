package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"go-leave/internal/leave"
	"go-leave/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// browser keeps the session cookie between requests, like a real tab.
type browser struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == "leave_session" {
			b.cookie = c
		}
	}
	return w
}

func (b *browser) post(path string, form url.Values) {
	b.t.Helper()
	w := b.do(http.MethodPost, path, form)
	assert.Equal(b.t, http.StatusSeeOther, w.Code)
	assert.Equal(b.t, "/", w.Header().Get("Location"))
}

func (b *browser) page() string {
	b.t.Helper()
	w := b.do(http.MethodGet, "/", nil)
	assert.Equal(b.t, http.StatusOK, w.Code)
	return w.Body.String()
}

var depthPattern = regexp.MustCompile(`var depth =\s*(\d+)\s*;`)

// historyDepth is the number of entries the rendered page asks the browser
// to keep behind the current one.
func historyDepth(t *testing.T, body string) int {
	t.Helper()
	m := depthPattern.FindStringSubmatch(body)
	if !assert.Len(t, m, 2, "page has no history depth") {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	assert.NoError(t, err)
	return n
}

func setupUI(t *testing.T) (*browser, leave.Service) {
	t.Helper()
	svc := leave.NewService(
		leave.NewMemoryRepository(leave.DemoRecords("Liu Yihong")...),
		leave.ServiceConfig{Now: func() time.Time { return time.Date(2026, 5, 4, 8, 30, 0, 0, time.Local) }},
		zap.NewNop(),
	)
	h := view.NewHandler(svc, view.NewSessions(time.Hour, zap.NewNop()), view.Options{ApplicantName: "Liu Yihong"}, zap.NewNop())

	r := gin.New()
	view.RegisterRoutes(r, h)
	return &browser{t: t, router: r}, svc
}

func TestUI_ListIsInitialView(t *testing.T) {
	b, _ := setupUI(t)

	body := b.page()

	assert.NotNil(t, b.cookie)
	assert.Contains(t, body, "National Day")
	assert.Contains(t, body, `action="/ui/apply"`)
	assert.NotContains(t, body, "Leave information")
	assert.NotContains(t, body, "New leave request")
}

func TestUI_SelectThenBack(t *testing.T) {
	b, _ := setupUI(t)
	b.page()

	b.post("/ui/select/2", nil)
	body := b.page()
	assert.Contains(t, body, "Leave information")
	assert.Contains(t, body, "8 days 0 hours 43 minutes")
	assert.Contains(t, body, "stamp-passed")
	assert.Contains(t, body, "2025-09-30 16:48")

	b.post("/ui/back", nil)
	body = b.page()
	assert.NotContains(t, body, "Leave information")
}

func TestUI_BrowserBackMatchesBackButton(t *testing.T) {
	b, _ := setupUI(t)
	b.page()

	b.post("/ui/select/1", nil)
	assert.Contains(t, b.page(), "stamp-audit")

	b.post("/ui/popstate", url.Values{"direction": {"back"}})
	assert.NotContains(t, b.page(), "Leave information")

	b.post("/ui/popstate", url.Values{"direction": {"forward"}})
	assert.Contains(t, b.page(), "Leave information")
}

func TestUI_SelectUnknownStaysOnList(t *testing.T) {
	b, _ := setupUI(t)
	b.page()

	b.post("/ui/select/does-not-exist", nil)
	assert.NotContains(t, b.page(), "Leave information")
}

func TestUI_ApplyEditSubmit(t *testing.T) {
	b, svc := setupUI(t)
	b.page()

	b.post("/ui/apply", nil)
	assert.Contains(t, b.page(), "New leave request")

	b.post("/ui/form", url.Values{
		"type":       {"Sick"},
		"start_time": {"2025-09-27 07:00:00"},
		"end_time":   {"2025-09-27 21:00:00"},
	})
	body := b.page()
	assert.Contains(t, body, `value="0 days 14 hours 0 minutes"`)

	b.post("/ui/submit", url.Values{
		"type":       {"Sick"},
		"reason":     {"Dentist"},
		"status":     {"approved"},
		"start_time": {"2025-09-27 07:00:00"},
		"end_time":   {"2025-09-27 21:00:00"},
		"duration":   {"0 days 14 hours 0 minutes"},
	})
	body = b.page()
	assert.NotContains(t, body, "New leave request")

	list, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, list, 4)
	assert.Equal(t, "Dentist", list[0].Reason)
	assert.Equal(t, leave.StatusSubmitted, list[0].Status)
	assert.Equal(t, "2026-05-04 08:30:00", list[0].ApplyTime)
	assert.Equal(t, "0 days 14 hours 0 minutes", list[0].Duration)
}

func TestUI_EmptySubmitIsAccepted(t *testing.T) {
	b, svc := setupUI(t)
	b.page()

	b.post("/ui/apply", nil)
	b.post("/ui/submit", url.Values{})

	list, _ := svc.List(context.Background())
	assert.Len(t, list, 4)
	assert.Equal(t, leave.StatusSubmitted, list[0].Status)
}

func TestUI_Cancel(t *testing.T) {
	b, svc := setupUI(t)
	b.page()

	b.post("/ui/apply", nil)
	b.post("/ui/cancel", url.Values{"reason": {"never mind"}})

	assert.NotContains(t, b.page(), "New leave request")
	list, _ := svc.List(context.Background())
	assert.Len(t, list, 3)
}

func TestUI_SubmitOutsideFormIsIgnored(t *testing.T) {
	b, svc := setupUI(t)
	b.page()

	b.post("/ui/submit", url.Values{"reason": {"sneaky"}})

	list, _ := svc.List(context.Background())
	assert.Len(t, list, 3)
}

func TestUI_ManageDelete(t *testing.T) {
	t.Run("declined keeps record", func(t *testing.T) {
		b, svc := setupUI(t)
		b.page()

		b.post("/ui/manage", nil)
		assert.Contains(t, b.page(), `action="/ui/delete/2"`)

		b.post("/ui/delete/2", url.Values{"confirm": {"no"}})
		list, _ := svc.List(context.Background())
		assert.Len(t, list, 3)
	})

	t.Run("confirmed removes record", func(t *testing.T) {
		b, svc := setupUI(t)
		b.page()

		b.post("/ui/manage", nil)
		b.post("/ui/delete/2", url.Values{"confirm": {"yes"}})

		list, _ := svc.List(context.Background())
		assert.Len(t, list, 2)
		for _, r := range list {
			assert.NotEqual(t, "2", r.ID)
		}
		assert.NotContains(t, b.page(), "National Day")
	})

	t.Run("delete outside manage mode is ignored", func(t *testing.T) {
		b, svc := setupUI(t)
		b.page()

		b.post("/ui/delete/2", url.Values{"confirm": {"yes"}})
		list, _ := svc.List(context.Background())
		assert.Len(t, list, 3)
	})

	t.Run("back leaves manage mode", func(t *testing.T) {
		b, _ := setupUI(t)
		b.page()

		b.post("/ui/manage", nil)
		assert.Contains(t, b.page(), ">Done<")

		b.post("/ui/back", nil)
		assert.Contains(t, b.page(), ">Manage<")
	})
}

func TestUI_SessionsAreIsolated(t *testing.T) {
	b1, _ := setupUI(t)
	b1.page()
	b1.post("/ui/select/2", nil)

	b2 := &browser{t: t, router: b1.router}
	assert.NotContains(t, b2.page(), "Leave information")
	assert.Contains(t, b1.page(), "Leave information")
}

func TestUI_Scroll(t *testing.T) {
	b, _ := setupUI(t)
	b.page()
	b.post("/ui/select/2", nil)

	w := b.do(http.MethodPost, "/ui/scroll", url.Values{"top": {"240"}})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, b.page(), `data-scroll="240"`)

	b.post("/ui/back", nil)
	b.post("/ui/select/1", nil)
	assert.Contains(t, b.page(), `data-scroll="0"`)
}

func TestUI_HistoryDepthTracksBrowserStack(t *testing.T) {
	b, _ := setupUI(t)
	assert.Equal(t, 0, historyDepth(t, b.page()))

	b.post("/ui/select/2", nil)
	assert.Equal(t, 1, historyDepth(t, b.page()))

	b.post("/ui/back", nil)
	assert.Equal(t, 0, historyDepth(t, b.page()))

	b.post("/ui/popstate", url.Values{"direction": {"back"}})
	assert.Equal(t, 0, historyDepth(t, b.page()))

	b.post("/ui/select/1", nil)
	assert.Equal(t, 1, historyDepth(t, b.page()))

	b.post("/ui/popstate", url.Values{"direction": {"back"}})
	b.post("/ui/apply", nil)
	assert.Equal(t, 1, historyDepth(t, b.page()))

	b.post("/ui/submit", url.Values{"reason": {"Trip"}})
	assert.Equal(t, 0, historyDepth(t, b.page()))
}

func TestUI_BackControlsUseBrowserHistory(t *testing.T) {
	b, _ := setupUI(t)

	body := b.page()
	assert.Contains(t, body, `aria-label="Back" data-history-back`)
	assert.Contains(t, body, "history.back()")
	assert.Contains(t, body, "location.replace")

	b.post("/ui/apply", nil)
	body = b.page()
	assert.Contains(t, body, `formaction="/ui/cancel" formnovalidate data-history-back`)
	assert.Contains(t, body, `class="primary" data-then-back`)
}

func TestUI_ForwardIntoDeletedRecordShowsList(t *testing.T) {
	b, svc := setupUI(t)
	b.page()

	b.post("/ui/select/2", nil)
	b.post("/ui/back", nil)
	b.post("/ui/manage", nil)
	b.post("/ui/delete/2", url.Values{"confirm": {"yes"}})
	b.post("/ui/manage", nil)

	_, err := svc.GetByID(context.Background(), "2")
	assert.Error(t, err)

	b.post("/ui/popstate", url.Values{"direction": {"forward"}})
	body := b.page()

	assert.NotContains(t, body, "Leave information")
	assert.NotContains(t, body, "National Day")
	assert.Equal(t, 0, historyDepth(t, body))
}

func TestUI_DetailShowsCurrentRecord(t *testing.T) {
	b, _ := setupUI(t)
	b.page()

	b.post("/ui/select/3", nil)
	body := b.page()

	assert.Contains(t, body, "Leave information")
	assert.Contains(t, body, "Errands in town")
	assert.Contains(t, body, "stamp-audit")
}
