// Command lifeassist is a terminal front-end for the LifeAssist goals API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lifeassist/goals/internal/app"
	"github.com/lifeassist/goals/internal/pkg/config"
	"github.com/lifeassist/goals/pkg/logger"
)

const usage = `usage: lifeassist <command> [flags]

commands:
  register     -email E -password P
  login        -email E -password P
  logout
  whoami
  goals        [-filter Q] [-sort name|asc|desc]
  completed
  add-goal     -title T [-step S]...
  toggle-step  -goal ID -step N [-step N]... [-undo] [-confirm]
  complete     -goal ID
  profile      [-username U] [-description D]
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.Production(),
		Service: "lifeassist",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lifeassist: %v\n", err)
		os.Exit(1)
	}

	err = run(a, os.Args[1:], os.Stdout)
	a.Close()

	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "lifeassist: %s\n\n%s", exitMessage(err), usage)
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "lifeassist: %s\n", exitMessage(err))
		os.Exit(1)
	}
}

func run(a *app.App, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	a.Main.Initialize()
	a.Main.Wait()
	a.Main.Acknowledge()
	return cmd(a, args[1:], out)
}
