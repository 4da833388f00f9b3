package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/goliatone/go-router/flash"
)

// RegisterAuthRoutes mounts the login, registration, and logout routes
func RegisterAuthRoutes[T any](app router.Router[T], opts ...AuthControllerOption) {

	controller := NewAuthController(opts...)

	app.
		Get(controller.Routes.Login,
			controller.LoginShow,
		).
		SetName("sign-in.get")

	app.
		Post(
			controller.Routes.Login,
			controller.LoginPost,
		).
		SetName("sign-in.post")

	app.Get(controller.Routes.Logout, controller.LogOut).SetName("sign-out.get")

	app.Get(controller.Routes.Register, controller.RegistrationShow).
		SetName("register.get")
	app.Post(controller.Routes.Register, controller.RegistrationCreate).
		SetName("register.post")
}

type AuthControllerRoutes struct {
	Login    string
	Logout   string
	Register string
}

type AuthControllerViews struct {
	Login    string
	Register string
}

type AuthController struct {
	Debug        bool
	Logger       Logger
	Auther       Authenticator
	Sessions     *SessionManager
	Routes       *AuthControllerRoutes
	Views        *AuthControllerViews
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:       defLogger{},
		ErrorHandler: defaultErrHandler,
		Routes: &AuthControllerRoutes{
			Login:    "/login",
			Logout:   "/logout",
			Register: "/register",
		},
		Views: &AuthControllerViews{
			Login:    "login",
			Register: "register",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Sessions == nil {
		panic("Missing SessionManager in auth controller...")
	}

	return c
}

func WithControllerAuther(auther Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithControllerSessions(sessions *SessionManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Sessions = sessions
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

func (a *AuthController) LoginShow(ctx router.Context) error {
	return ctx.Render(a.Views.Login, router.ViewContext{
		"errors": map[string]string{},
		"record": nil,
	})
}

// LoginRequest payload
type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	if a.Debug {
		fmt.Println("======= AUTH LOGIN ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("=========================")
	}

	result, err := a.Auther.Login(ctx.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("login error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	if result.Failed() {
		return ctx.Render(a.Views.Login, router.ViewContext{
			"errors": result.Errors.Map(),
			"record": payload,
		})
	}

	return result.Redirect.Apply(ctx)
}

func (a *AuthController) LogOut(ctx router.Context) error {
	return a.Sessions.Logout(ctx.Header("Cookie")).Apply(ctx)
}

func (a *AuthController) RegistrationShow(ctx router.Context) error {
	return ctx.Render(a.Views.Register, router.ViewContext{
		"errors": map[string]string{},
		"record": nil,
	})
}

// RegistrationCreatePayload is the form paylaod
type RegistrationCreatePayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (a *AuthController) RegistrationCreate(ctx router.Context) error {
	payload := new(RegistrationCreatePayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("register user parse payload: ", "error", err)
		return flash.WithError(ctx, router.ViewContext{
			"error_message":  err.Error(),
			"system_message": "Error parsing body",
		}).Status(fiber.StatusBadRequest).Render(a.Views.Register, router.ViewContext{
			"errors": map[string]string{"form": "Failed to parse form"},
			"record": payload,
		})
	}

	result, err := a.Auther.Register(ctx.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("register user error: ", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	if result.Failed() {
		return ctx.Render(a.Views.Register, router.ViewContext{
			"errors": result.Errors.Map(),
			"record": payload,
		})
	}

	return result.Redirect.Apply(ctx)
}

func defaultErrHandler(c router.Context, err error) error {
	return c.Render("errors/500", router.ViewContext{
		"message": err.Error(),
	})
}
