package scribe

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContactForm binds and validates a contact submission. Email is optional but
// must be well-formed when present; the notifier falls back to the configured
// account when it is absent.
type ContactForm struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"omitempty,email"`
	Phone   string `form:"phone" validate:"required"`
	Message string `form:"message" validate:"required"`
}

var validate = validator.New()

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	page := Paginate(posts, pageNumber(c.QueryParam("page")), a.Config.PostsPerPage)
	return Render(c, a.Views.Home(page))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About())
}

func (a *App) handleContact(c echo.Context) error {
	flashes := adminSession(c).Flashes()
	return Render(c, a.Views.Contact(ContactForm{}, nil, flashes, CsrfToken(c)))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	var form ContactForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if errs := validateContact(form); len(errs) > 0 {
		return Render(c, a.Views.Contact(form, errs, nil, CsrfToken(c)))
	}

	msg := ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
	}
	if err := a.Store.CreateContact(c.Request().Context(), &msg); err != nil {
		return err
	}

	// The row is durable at this point; mail delivery happens off the
	// request path and a transport failure cannot lose the submission.
	a.notifyContact(msg)

	if err := adminSession(c).AddFlash("Thanks for submitting your details. We will get back to you soon"); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/contact")
}

// validateContact maps validator failures to per-field messages for the form.
func validateContact(form ContactForm) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	errs := make(map[string]string)
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		errs["form"] = "Invalid submission"
		return errs
	}
	for _, fe := range invalid {
		switch fe.Field() {
		case "Name":
			errs["name"] = "Name is required"
		case "Phone":
			errs["phone"] = "Phone is required"
		case "Message":
			errs["message"] = "Message is required"
		case "Email":
			errs["email"] = "Email address is not valid"
		}
	}
	return errs
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Store.GetPostBySlug(c.Request().Context(), slug)
	if err != nil {
		if IsNotFound(err) {
			// An unknown slug is a valid, silently-rendered empty state.
			return Render(c, a.Views.Post(nil))
		}
		return err
	}
	return Render(c, a.Views.Post(&post))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
