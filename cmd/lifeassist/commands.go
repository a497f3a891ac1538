package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lifeassist/goals/internal/app"
	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/viewstate"
)

type command func(a *app.App, args []string, out io.Writer) error

var commands = map[string]command{
	"register":    cmdRegister,
	"login":       cmdLogin,
	"logout":      cmdLogout,
	"whoami":      cmdWhoami,
	"goals":       cmdGoals,
	"completed":   cmdCompleted,
	"add-goal":    cmdAddGoal,
	"toggle-step": cmdToggleStep,
	"complete":    cmdComplete,
	"profile":     cmdProfile,
}

// stringList collects a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// intList collects a repeatable integer flag.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*l = append(*l, n)
	return nil
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	return nil
}

func credentialFlags(name string, args []string) (email, password string, err error) {
	fs := newFlags(name)
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&password, "password", "", "account password")
	err = parse(fs, args)
	return email, password, err
}

// mainResult waits for the main holder and turns an error phase into an error.
func mainResult(a *app.App) error {
	a.Main.Wait()
	s := a.Main.State()
	defer a.Main.Acknowledge()
	if s.Phase == viewstate.PhaseError {
		return s.Err
	}
	return nil
}

func requireLogin(a *app.App) error {
	if !a.Main.State().LoggedIn {
		return fmt.Errorf("not logged in, run: lifeassist login -email E -password P")
	}
	return nil
}

func refresh(a *app.App) error {
	if err := a.Main.FetchUserData(); err != nil {
		return err
	}
	return mainResult(a)
}

func cmdRegister(a *app.App, args []string, out io.Writer) error {
	email, password, err := credentialFlags("register", args)
	if err != nil {
		return err
	}
	if err := a.Auth.Register(email, password); err != nil {
		return err
	}
	a.Auth.Wait()
	s := a.Auth.State()
	if s.Phase == viewstate.PhaseError {
		return s.Err
	}
	fmt.Fprintln(out, s.Message)
	return nil
}

func cmdLogin(a *app.App, args []string, out io.Writer) error {
	email, password, err := credentialFlags("login", args)
	if err != nil {
		return err
	}
	if err := a.Auth.Login(email, password); err != nil {
		return err
	}
	a.Auth.Wait()
	s := a.Auth.State()
	if s.Phase == viewstate.PhaseError {
		return s.Err
	}
	fmt.Fprintf(out, "Logged in as %s (%s)\n", s.User.Username, s.User.Email)
	return nil
}

func cmdLogout(a *app.App, _ []string, out io.Writer) error {
	if err := a.Main.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged out")
	return nil
}

func cmdWhoami(a *app.App, _ []string, out io.Writer) error {
	if err := requireLogin(a); err != nil {
		return err
	}
	u := a.Main.State().Data.User
	fmt.Fprintf(out, "%s <%s>\n", displayName(u), u.Email)
	if u.Description != "" {
		fmt.Fprintln(out, u.Description)
	}
	return nil
}

func cmdGoals(a *app.App, args []string, out io.Writer) error {
	fs := newFlags("goals")
	query := fs.String("filter", "", "case-insensitive title filter")
	sortFlag := fs.String("sort", "name", "name, asc or desc")
	if err := parse(fs, args); err != nil {
		return err
	}
	mode, err := domain.ParseSortMode(*sortFlag)
	if err != nil {
		return err
	}
	if err := requireLogin(a); err != nil {
		return err
	}
	if err := refresh(a); err != nil {
		return err
	}
	printGoals(out, a.Main.Goals(*query, mode))
	return nil
}

func cmdCompleted(a *app.App, _ []string, out io.Writer) error {
	if err := requireLogin(a); err != nil {
		return err
	}
	if err := a.Completed.Fetch(); err != nil {
		return err
	}
	a.Completed.Wait()
	s := a.Completed.State()
	if s.Phase == viewstate.PhaseError {
		return s.Err
	}
	printGoals(out, s.Goals)
	return nil
}

func cmdAddGoal(a *app.App, args []string, out io.Writer) error {
	fs := newFlags("add-goal")
	title := fs.String("title", "", "goal title")
	var steps stringList
	fs.Var(&steps, "step", "step title (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := requireLogin(a); err != nil {
		return err
	}
	if err := a.Main.PrepareAndSubmitGoal(*title, steps); err != nil {
		return err
	}
	if err := mainResult(a); err != nil {
		return err
	}
	fmt.Fprintf(out, "Goal %q saved, %d goals total\n", strings.TrimSpace(*title), len(a.Main.State().Data.Goals))
	return nil
}

// cmdToggleStep marks steps locally; only -confirm sends anything to the server.
func cmdToggleStep(a *app.App, args []string, out io.Writer) error {
	fs := newFlags("toggle-step")
	goalID := fs.String("goal", "", "goal id")
	undo := fs.Bool("undo", false, "mark the steps pending instead")
	confirm := fs.Bool("confirm", false, "complete the goal when every step is done")
	var steps intList
	fs.Var(&steps, "step", "zero-based step index (repeatable)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("%w: toggle-step needs at least one -step", errUsage)
	}
	if err := requireLogin(a); err != nil {
		return err
	}
	if err := refresh(a); err != nil {
		return err
	}

	prompt := false
	for _, i := range steps {
		p, err := a.Main.ToggleStep(*goalID, i, !*undo)
		if err != nil {
			return err
		}
		prompt = p
	}
	g, _ := a.Main.State().Data.FindGoal(*goalID)
	fmt.Fprintf(out, "%s: %s steps done\n", g.Title, g.Progress())

	if !prompt {
		return nil
	}
	if !*confirm {
		fmt.Fprintln(out, "All steps are done. Re-run with -confirm to complete the goal.")
		return nil
	}
	if err := a.Main.ConfirmGoalCompletion(*goalID); err != nil {
		return err
	}
	if err := mainResult(a); err != nil {
		return err
	}
	fmt.Fprintf(out, "Goal %q completed\n", g.Title)
	return nil
}

func cmdComplete(a *app.App, args []string, out io.Writer) error {
	fs := newFlags("complete")
	goalID := fs.String("goal", "", "goal id")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := requireLogin(a); err != nil {
		return err
	}
	if err := refresh(a); err != nil {
		return err
	}
	if err := a.Main.PrepareAndUpdateGoalStatus(*goalID, domain.StatusCompleted); err != nil {
		return err
	}
	if err := mainResult(a); err != nil {
		return err
	}
	fmt.Fprintln(out, "Goal completed")
	return nil
}

func cmdProfile(a *app.App, args []string, out io.Writer) error {
	fs := newFlags("profile")
	username := fs.String("username", "", "display name")
	description := fs.String("description", "", "short bio")
	if err := parse(fs, args); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["username"] && !set["description"] {
		return fmt.Errorf("%w: profile needs -username or -description", errUsage)
	}
	if err := requireLogin(a); err != nil {
		return err
	}
	// The description is always replaced, so keep the current one unless asked.
	if !set["description"] {
		*description = a.Main.State().Data.User.Description
	}
	if err := a.Main.UpdateProfile(*username, *description); err != nil {
		return err
	}
	if err := mainResult(a); err != nil {
		return err
	}
	u := a.Main.State().Data.User
	fmt.Fprintf(out, "Profile updated: %s\n", displayName(u))
	return nil
}

func displayName(u domain.User) string {
	if u.Username == "" {
		return domain.DefaultUsername
	}
	return u.Username
}

func printGoals(out io.Writer, goals []domain.Goal) {
	if len(goals) == 0 {
		fmt.Fprintln(out, "No goals")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tSTEPS\tCREATED")
	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Status, g.Progress(), domain.FormatTimestamp(g.CreatedAt))
	}
	_ = tw.Flush()
}

// exitMessage is the line printed for a failed command.
func exitMessage(err error) string {
	if errors.Is(err, errUsage) {
		return err.Error()
	}
	return domain.Message(err)
}
