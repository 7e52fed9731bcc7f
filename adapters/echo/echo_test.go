package govukecho

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pthm/govuk"
	"github.com/pthm/govuk/components"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	errs []error
}

func (r *recordingObserver) ObserveRender(err error, _ time.Duration) {
	r.errs = append(r.errs, err)
}

func contactForm() func(c echo.Context) error {
	return func(c echo.Context) error {
		return Render(c, govuk.With(components.Form(components.FormProps{Action: "/contact"}),
			govuk.With(components.Input(components.InputProps{Name: "name"}),
				govuk.With(components.Label(components.LabelProps{}), govuk.Text("Name")),
			),
		))
	}
}

func TestMount(t *testing.T) {
	e := echo.New()
	a := Mount(e)

	if a == nil {
		t.Fatal("Mount returned nil adapter")
	}
}

func TestMountWithKey(t *testing.T) {
	e := echo.New()
	key := make([]byte, 32)
	a := Mount(e, WithKey(key), WithSealedState(true))

	if a == nil {
		t.Fatal("Mount returned nil adapter")
	}
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("/app")
	MountGroup(g)
	g.GET("/contact", contactForm())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/contact", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<input class="govuk-input" id="name" name="name" type="text">`) {
		t.Fatalf("missing input in %s", rec.Body.String())
	}
}

func TestRenderSetsContentType(t *testing.T) {
	e := echo.New()
	Mount(e)
	e.GET("/contact", contactForm())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))

	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestPostRedirectGetCarriesModelState(t *testing.T) {
	e := echo.New()
	Mount(e, WithKey([]byte("0123456789abcdef0123456789abcdef")))
	e.GET("/contact", contactForm())
	e.POST("/contact", func(c echo.Context) error {
		state := govuk.NewModelState().
			SetValue("name", c.FormValue("name")).
			AddError("name", "Enter your name")
		if err := SaveModelState(c, state); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/contact")
	})

	post := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=%3Cb%3E"))
	post.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, post)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("POST status = %d, want 303", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 || cookies[len(cookies)-1].Name != govuk.ModelStateCookie {
		t.Fatalf("POST did not set %s: %v", govuk.ModelStateCookie, cookies)
	}

	get := httptest.NewRequest(http.MethodGet, "/contact", nil)
	get.AddCookie(cookies[len(cookies)-1])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, get)

	body := rec.Body.String()
	for _, want := range []string{
		`<div class="govuk-error-summary" data-module="govuk-error-summary">`,
		`<a href="#name">Enter your name</a>`,
		`value="&lt;b&gt;"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("GET body missing %q:\n%s", want, body)
		}
	}
	if got := rec.Header().Get("Set-Cookie"); !strings.Contains(got, "Max-Age=0") {
		t.Errorf("GET should clear the state cookie, Set-Cookie = %q", got)
	}
}

func TestTamperedCookieIsDiscarded(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	e := echo.New()
	Mount(e, WithLogger(zap.New(core)))
	e.GET("/contact", func(c echo.Context) error {
		if !ModelState(c).IsValid() {
			t.Error("tampered state should be replaced by an empty one")
		}
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req.AddCookie(&http.Cookie{Name: govuk.ModelStateCookie, Value: "bm90LXNpZ25lZA.c2ln"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if n := logs.FilterMessage("discarding model state cookie").Len(); n != 1 {
		t.Fatalf("logged %d warnings, want 1", n)
	}
}

func TestRenderFailureWritesNothing(t *testing.T) {
	obs := &recordingObserver{}
	core, logs := observer.New(zap.ErrorLevel)
	e := echo.New()
	Mount(e, WithObserver(obs), WithLogger(zap.New(core)))
	e.GET("/broken", func(c echo.Context) error {
		return Render(c, components.Hint(components.HintProps{}))
	})
	e.GET("/ok", contactForm())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "govuk") {
		t.Fatalf("partial output leaked: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if len(obs.errs) != 2 {
		t.Fatalf("observed %d renders, want 2", len(obs.errs))
	}
	var missing *govuk.MissingParentContextError
	if !errors.As(obs.errs[0], &missing) {
		t.Fatalf("first render error = %v, want MissingParentContextError", obs.errs[0])
	}
	if obs.errs[1] != nil {
		t.Fatalf("second render error = %v, want nil", obs.errs[1])
	}

	entries := logs.FilterMessage("render failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d render failures, want 1", len(entries))
	}
	if kind := entries[0].ContextMap()["kind"]; kind != "missing_parent_context" {
		t.Fatalf("kind = %v", kind)
	}
}

func TestSaveModelStateOutsideMount(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

	if err := SaveModelState(c, govuk.NewModelState()); !errors.Is(err, ErrNotMounted) {
		t.Fatalf("err = %v, want ErrNotMounted", err)
	}
	if Traversal(c) != nil {
		t.Fatal("expected no traversal outside mounted routes")
	}
}

func TestRenderWithoutMount(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := Render(c, components.BackLink(components.BackLinkProps{Href: "/"})); err != nil {
		t.Fatal(err)
	}
	if got := rec.Body.String(); got != `<a class="govuk-back-link" href="/">Back</a>` {
		t.Fatalf("body = %q", got)
	}
}
