package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/gophtodo/internal/config"
	"github.com/dmitrijs2005/gophtodo/internal/logging"
	"github.com/dmitrijs2005/gophtodo/internal/repositories/todos"
	"github.com/dmitrijs2005/gophtodo/internal/repositories/users"
)

type App struct {
	users    users.Repository
	todos    todos.Repository
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	style    styles
	userName string

	// passwordFd is the descriptor password prompts read without echo when it
	// is a terminal. -1 disables no-echo reads.
	passwordFd int
}

// NewApp builds an App reading stdin and writing stdout, with both stores
// placed where cfg says.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	as := users.NewJSONRepository(cfg.UsersPath(), log)
	ts := todos.NewJSONRepository(cfg.TodosPath(), log)

	a := newApp(as, ts, os.Stdin, os.Stdout, log)
	a.passwordFd = int(os.Stdin.Fd())
	return a
}

func newApp(us users.Repository, ts todos.Repository, r io.Reader, w io.Writer, log logging.Logger) *App {
	return &App{
		users:      us,
		todos:      ts,
		log:        log,
		reader:     bufio.NewReader(r),
		out:        w,
		style:      newStyles(w),
		passwordFd: -1,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// Run shows the pre-login menu until the user exits or input ends.
// End of input is a normal way to leave and yields a nil error.
func (a *App) Run(ctx context.Context) error {
	err := a.preLoginLoop(ctx)
	if errors.Is(err, io.EOF) {
		a.log.Debug(ctx, "input closed")
		return nil
	}
	return err
}
