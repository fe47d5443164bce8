package controller

import (
	"net/http"

	"github.com/jbeshir/article-board/internal/command"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/jbeshir/article-board/internal/transport/web/view"
)

type Login struct {
	Site   Site
	Cookie SessionCookie
	Logger command.Command[command.LoginUserRequest, domain.Session]
}

type loginPage struct {
	view.Base
	Errors   map[string]string
	Next     string
	Username string
}

func (c Login) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := loginPage{Next: r.URL.Query().Get("next")}
	status := http.StatusOK

	if r.Method == http.MethodPost {
		page.Next = r.PostFormValue("next")
		page.Username = r.PostFormValue("username")

		session, err := c.Logger.Execute(ctx, command.LoginUserRequest{
			Username:  page.Username,
			Password:  r.PostFormValue("password"),
			SessionID: domain.SessionIDFromContext(ctx),
		})
		fields, invalid := validationFields(err)
		switch {
		case err == nil:
			c.Cookie.Set(w, session)
			http.Redirect(w, r, safeNext(page.Next), http.StatusFound)
			return
		case invalid:
			page.Errors = fields
			status = http.StatusBadRequest
		default:
			c.Site.writeError(w, r, err)
			return
		}
	}

	var err error
	page.Base, err = c.Site.base(r, "Log in")
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, status, "login", page)
}

type Registration struct {
	Site       Site
	Registerer command.Command[domain.RegistrationInput, int64]
}

type registrationPage struct {
	view.Base
	Errors   map[string]string
	Username string
}

func (c Registration) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var page registrationPage
	status := http.StatusOK

	if r.Method == http.MethodPost {
		page.Username = r.PostFormValue("username")

		_, err := c.Registerer.Execute(ctx, domain.RegistrationInput{
			Username:             page.Username,
			Password:             r.PostFormValue("password1"),
			PasswordConfirmation: r.PostFormValue("password2"),
		})
		fields, invalid := validationFields(err)
		switch {
		case err == nil:
			http.Redirect(w, r, "/login/", http.StatusFound)
			return
		case invalid:
			page.Errors = fields
			status = http.StatusBadRequest
		default:
			c.Site.writeError(w, r, err)
			return
		}
	}

	var err error
	page.Base, err = c.Site.base(r, "Register")
	if err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Site.render(w, r, status, "registration", page)
}

type Logout struct {
	Site   Site
	Cookie SessionCookie
	Ender  command.Command[string, command.Empty]
}

func (c Logout) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := c.Ender.Execute(ctx, domain.SessionIDFromContext(ctx)); err != nil {
		c.Site.writeError(w, r, err)
		return
	}

	c.Cookie.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
