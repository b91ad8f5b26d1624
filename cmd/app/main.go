package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/marathon/internal/config"
	"github.com/akyairhashvil/marathon/internal/database"
	"github.com/akyairhashvil/marathon/internal/models"
	"github.com/akyairhashvil/marathon/internal/plan"
	"github.com/akyairhashvil/marathon/internal/report"
	"github.com/akyairhashvil/marathon/internal/schedule"
	"github.com/akyairhashvil/marathon/internal/store"
	"github.com/akyairhashvil/marathon/internal/tui"
	"github.com/akyairhashvil/marathon/internal/util"
)

const usage = `usage: marathon [command]

commands:
  (none)                      open the interactive app
  init -race DATE -tier TIER  create a plan without the interactive setup
  stats                       print plan progress
  plans                       list available training plans
  export [-encrypt] [file]    write a JSON backup
  import <file>               restore a JSON backup
  report [dir]                write a PDF of the plan
  version                     print the version
`

type app struct {
	ctx            context.Context
	cfg            config.Config
	db             *database.Database
	store          *store.Store
	out            io.Writer
	interactive    bool
	readPassphrase func(prompt string) (string, error)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	paths := util.DefaultPaths(config.AppName)
	cfg, err := config.Load(paths.Data, paths.Reports)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error loading config: %v\n", err)
		return 1
	}

	logCloser, err := util.SetupLogFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error opening the log: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	ctx := context.Background()
	a, err := newApp(ctx, cfg, os.Stdout)
	if err != nil {
		util.LogError("open app", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer a.close()
	a.interactive = term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))

	if err := a.dispatch(args); err != nil {
		util.LogError("command", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func newApp(ctx context.Context, cfg config.Config, out io.Writer) (*app, error) {
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	a := &app{
		ctx:            ctx,
		cfg:            cfg,
		db:             db,
		store:          store.New(db),
		out:            out,
		readPassphrase: promptPassphrase,
	}
	if err := a.seedPreferences(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	util.LogError("close database", a.db.Close())
}

// seedPreferences applies the configured units and theme until the user has
// onboarded and owns the stored preferences.
func (a *app) seedPreferences() error {
	current, err := a.store.Config(a.ctx)
	if err != nil || current.IsOnboarded {
		return err
	}
	if current.Units != a.cfg.UI.Units {
		if _, err := a.store.SetUnits(a.ctx, a.cfg.UI.Units); err != nil {
			return err
		}
	}
	if current.Theme != a.cfg.UI.Theme {
		if _, err := a.store.SetTheme(a.ctx, a.cfg.UI.Theme); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) dispatch(args []string) error {
	if len(args) == 0 {
		if !a.interactive {
			return a.printStats()
		}
		return a.runTUI()
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "init":
		return a.initPlan(rest)
	case "stats":
		return a.printStats()
	case "plans":
		return a.printPlans()
	case "export":
		return a.export(rest)
	case "import":
		return a.importBackup(rest)
	case "report":
		return a.writeReport(rest)
	case "version":
		fmt.Fprintf(a.out, "marathon %s\n", tui.AppVersion)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}
	return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
}

func (a *app) runTUI() error {
	model := tui.NewMainModel(a.ctx, a.store, tui.Options{
		ReportsDir: a.cfg.Reports.Dir,
		Backups:    a.db,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *app) initPlan(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(a.out)
	race := fs.String("race", "", "race date (YYYY-MM-DD)")
	tierName := fs.String("tier", string(models.TierNovice1), "training plan tier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	raceDate, err := util.ParseDate(*race)
	if err != nil {
		return fmt.Errorf("invalid -race %q: want YYYY-MM-DD", *race)
	}
	tier, err := schedule.ParseTier(*tierName)
	if err != nil {
		return err
	}
	today := a.store.Today()
	if raceDate.Before(today) {
		return fmt.Errorf("race date %s is in the past", util.FormatDate(raceDate))
	}

	p, err := a.store.Onboard(a.ctx, raceDate, tier)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created %s plan: %s to %s\n", p.PlanName, p.StartDate, p.RaceDate)
	if plan.TooSoon(raceDate, today) {
		fmt.Fprintf(a.out, "Warning: only %d weeks until race day; the plan assumes %d.\n",
			plan.WeeksUntil(raceDate, today), config.PlanWeeks)
	}
	return nil
}

func (a *app) printStats() error {
	p, err := a.store.Plan(a.ctx)
	if errors.Is(err, store.ErrNoPlan) {
		fmt.Fprintln(a.out, "No training plan yet. Run `marathon` or `marathon init` to create one.")
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := a.store.Config(a.ctx)
	if err != nil {
		return err
	}
	today := a.store.Today()
	s, err := a.store.Stats(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s, race %s\n", p.PlanName, p.RaceDate)
	fmt.Fprintf(a.out, "Week %d of %d, %d days to go\n", s.CurrentWeek, len(p.Weeks), s.DaysUntilRace)
	fmt.Fprintf(a.out, "Completed %d of %d workouts (%d%%), %d skipped\n",
		s.CompletedWorkouts, s.TotalWorkouts, s.CompletionRate, s.SkippedWorkouts)
	fmt.Fprintf(a.out, "Streak %d, longest %d\n", s.CurrentStreak, s.LongestStreak)
	fmt.Fprintf(a.out, "Distance %s of %s\n",
		tui.FormatDistance(s.TotalCompletedMiles, cfg.Units), tui.FormatDistance(s.TotalPlannedMiles, cfg.Units))

	w, _, err := a.store.TodayWorkout(a.ctx)
	if err != nil {
		return err
	}
	if w != nil {
		fmt.Fprintf(a.out, "Today (%s): %s %s\n", util.FormatDate(today), tui.FormatStatus(*w), w.Title)
	}
	return nil
}

func (a *app) printPlans() error {
	for _, meta := range schedule.Plans() {
		fmt.Fprintf(a.out, "%-14s %-15s %d runs/week, peak %d mi\n", meta.ID, meta.Name, meta.RunsPerWeek, meta.PeakMileage)
	}
	return nil
}

func (a *app) export(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	encrypt := fs.Bool("encrypt", false, "encrypt the backup with a passphrase")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := database.ExportOptions{EncryptOutput: *encrypt}
	if *encrypt {
		pass, err := a.readPassphrase("Backup passphrase: ")
		if err != nil {
			return err
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			return err
		}
		opts.Passphrase = pass
	}
	payload, err := a.db.ExportBackup(a.ctx, opts)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	if path == "" {
		path = filepath.Join(a.cfg.Reports.Dir, tui.BackupFileName(util.FormatDate(a.store.Today()), *encrypt))
	}
	if path == "-" {
		_, err := a.out.Write(payload)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Backup written to %s\n", path)
	return nil
}

func (a *app) importBackup(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: marathon import <file>")
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	if !database.IsEncryptedBackup(payload) {
		if err := a.db.ImportBackup(a.ctx, payload, ""); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Backup restored.")
		return nil
	}

	for tries := 0; tries < config.MaxPassphraseAttempts; tries++ {
		pass, err := a.readPassphrase("Backup passphrase: ")
		if err != nil {
			return err
		}
		if pass == "" {
			return database.ErrBackupEncrypted
		}
		err = a.db.ImportBackup(a.ctx, payload, pass)
		if errors.Is(err, database.ErrWrongPassphrase) {
			fmt.Fprintln(a.out, "Wrong passphrase.")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Backup restored.")
		return nil
	}
	return database.ErrWrongPassphrase
}

func (a *app) writeReport(args []string) error {
	p, err := a.store.Plan(a.ctx)
	if err != nil {
		return err
	}
	cfg, err := a.store.Config(a.ctx)
	if err != nil {
		return err
	}
	stats, err := a.store.Stats(a.ctx)
	if err != nil {
		return err
	}
	dir := a.cfg.Reports.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	path, err := report.WriteFile(dir, p, stats, cfg.Units)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report written to %s\n", path)
	return nil
}

func promptPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
