package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/iocli"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

//go:generate moq -out session_mock.go . SessionService

// SessionService — операции менеджера сессии, нужные командам CLI
type SessionService interface {
	Login(ctx context.Context, email, password string) (*api.TokenResponse, error)
	Register(ctx context.Context, email, password, confirmPassword string) (*auth.RegisterResult, error)
	FetchUserData(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Session() auth.Session
	Claims() (*auth.Claims, error)
}

var _ SessionService = (*auth.Manager)(nil)

// ErrUnknownCommand возвращается для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

var errNotAuthenticated = errors.New("not authenticated. Please run 'notekeeper login' first")

type Cli struct {
	io      iocli.IO
	session SessionService
	notes   data.Service
	clock   clockwork.Clock
}

func New(out iocli.IO, session SessionService, notes data.Service, clock clockwork.Clock) *Cli {
	return &Cli{
		io:      out,
		session: session,
		notes:   notes,
		clock:   clock,
	}
}

// Run выполняет команду args[0] с аргументами args[1:]
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "list":
		return c.runList(ctx)
	case "get":
		return c.runGet(ctx, rest)
	case "add":
		return c.runAdd(ctx, rest)
	case "delete":
		return c.runDelete(ctx, rest)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	PrintUsage(c.io)
}

// PrintUsage печатает справку по командам в w
func PrintUsage(w io.Writer) {
	_ = template.Must(template.New("usage").Parse(usageTemplate)).Execute(w, nil)
}

// requireSession возвращает ошибку, если сессии нет
func (c *Cli) requireSession() error {
	if !c.session.Session().Authenticated() {
		return errNotAuthenticated
	}
	return nil
}

func (c *Cli) render(tmpl string, v any) {
	t := template.Must(template.New("out").Funcs(templateFuncs).Parse(tmpl))
	if err := t.Execute(c.io, v); err != nil {
		c.io.Printf("failed to render output: %v\n", err)
	}
}
