package selector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"

	"go.ntppool.org/common/logger"

	"go.aira.dev/staffing/airadb"
	"go.aira.dev/staffing/config"
)

// Selector proposes program teams from a roster
type Selector struct {
	log      *slog.Logger
	metrics  *Metrics
	settings Settings
}

// NewSelector returns a Selector using settings. metrics may be nil.
func NewSelector(log *slog.Logger, settings Settings, metrics *Metrics) *Selector {
	if log == nil {
		log = slog.Default()
	}
	return &Selector{
		log:      log,
		metrics:  metrics,
		settings: settings,
	}
}

// Settings returns the selection rules in use
func (sl *Selector) Settings() Settings {
	return sl.settings
}

type (
	ProposeCmd struct {
		Category string `arg:"" help:"Program category, e.g. Social"`
		Scale    int    `arg:"" help:"Program scale (1 small, 2 medium, 3 large, 4 extra large)"`
		Month    int    `arg:"" help:"Target month (1-12)"`

		Duo     bool   `help:"Staff a scale 1 program with a lead and one support"`
		Seed    uint64 `help:"Random seed for a reproducible proposal (0 picks one)"`
		Explain bool   `help:"Print the weights of every draw"`

		Save        bool      `help:"Record the proposed team in the database"`
		ProgramName string    `name:"program-name" help:"Program name to save the team under"`
		Date        time.Time `format:"2006-01-02" help:"Program date (YYYY-MM-DD) to save the team with"`
	}
	SimulateCmd struct {
		Category string `arg:"" help:"Program category"`
		Scale    int    `arg:"" help:"Program scale"`
		Month    int    `arg:"" help:"Target month (1-12)"`

		Duo     bool   `help:"Staff a scale 1 program with a lead and one support"`
		Trials  int    `default:"1000" help:"Number of proposals to simulate"`
		Seed    uint64 `help:"Random seed (0 picks one)"`
		Verbose bool   `flag:"verbose" short:"v" help:"Enable verbose debug logging"`
	}
)

func (cmd *ProposeCmd) Help() string {
	return heredoc.Doc(`
		Proposes a team for a program. Every eligible RA starts with ten
		tickets and loses three for every past program shared with someone
		already on the team, keeping at least one.

		Members in a reserve tier, and members who already staffed two
		programs in the target month, are not eligible.

		Example:

		  aira propose Social 2 3 --seed 42 --explain
	`)
}

func (cmd *ProposeCmd) request() Request {
	return Request{
		Category: cmd.Category,
		Scale:    cmd.Scale,
		Month:    time.Month(cmd.Month),
		Duo:      cmd.Duo,
	}
}

func (cmd *ProposeCmd) Run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	sl := NewSelector(log, settings, nil)

	// reject bad input before connecting
	if err := cmd.validate(sl); err != nil {
		return err
	}

	dbconn, err := airadb.OpenConfig(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbconn.Close()

	db := airadb.NewWrappedQuerier(airadb.New(dbconn))

	return cmd.execute(ctx, sl, NewDBSource(db), db, os.Stdout)
}

func (cmd *ProposeCmd) validate(sl *Selector) error {
	if _, err := sl.Requirement(cmd.request()); err != nil {
		return err
	}
	if cmd.Save {
		if strings.TrimSpace(cmd.ProgramName) == "" {
			return invalidInput("--save requires --program-name")
		}
		if cmd.Date.IsZero() {
			return invalidInput("--save requires --date")
		}
		if cmd.Date.Month() != time.Month(cmd.Month) {
			return invalidInput("--date %s is not in month %d", cmd.Date.Format(time.DateOnly), cmd.Month)
		}
	}
	return nil
}

func (cmd *ProposeCmd) execute(ctx context.Context, sl *Selector, src Source, db airadb.QuerierTx, w io.Writer) error {
	if err := cmd.validate(sl); err != nil {
		return err
	}

	rng, seed := NewRand(cmd.Seed)

	p, err := sl.Propose(ctx, src, cmd.request(), rng)
	if err != nil {
		return err
	}

	printProposal(w, p, seed, cmd.Explain)

	if !cmd.Save || p.Outcome == OutcomeEmpty {
		return nil
	}

	programID, err := SaveProposal(ctx, db, p, ProgramInfo{
		Name: cmd.ProgramName,
		Date: cmd.Date,
	})
	if err != nil {
		return fmt.Errorf("failed to save proposal: %w", err)
	}

	prog, err := db.GetProgram(ctx, programID)
	if err != nil {
		return fmt.Errorf("failed to read back program %d: %w", programID, err)
	}

	sl.log.InfoContext(ctx, "proposal saved",
		"proposalID", p.ID.String(),
		"programID", prog.ProgramID)
	fmt.Fprintf(w, "\n✓ Saved as program %d (%s, %s, semester %s)\n",
		prog.ProgramID, prog.ProgramName,
		prog.ProgramDate.Time.Format(time.DateOnly), prog.SemesterHeld.String)

	return nil
}

func (cmd *SimulateCmd) request() Request {
	return Request{
		Category: cmd.Category,
		Scale:    cmd.Scale,
		Month:    time.Month(cmd.Month),
		Duo:      cmd.Duo,
	}
}

func (cmd *SimulateCmd) Run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	// Set debug level if verbose is enabled
	if cmd.Verbose {
		debugHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		log = slog.New(debugHandler)
		ctx = logger.NewContext(ctx, log)
	}

	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	sl := NewSelector(log, settings, nil)

	// reject bad input before connecting
	if err := cmd.validate(sl); err != nil {
		return err
	}

	dbconn, err := airadb.OpenConfig(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbconn.Close()

	db := airadb.NewWrappedQuerier(airadb.New(dbconn))

	return cmd.execute(ctx, sl, NewDBSource(db), os.Stdout)
}

func (cmd *SimulateCmd) validate(sl *Selector) error {
	if cmd.Trials < 1 {
		return invalidInput("--trials must be at least 1, got %d", cmd.Trials)
	}
	_, err := sl.Requirement(cmd.request())
	return err
}

func (cmd *SimulateCmd) execute(ctx context.Context, sl *Selector, src Source, w io.Writer) error {
	if err := cmd.validate(sl); err != nil {
		return err
	}

	log := logger.FromContext(ctx)

	log.InfoContext(ctx, "starting selection simulation",
		"category", cmd.Category,
		"trials", cmd.Trials,
		"verbose", cmd.Verbose)

	snap, err := LoadSnapshot(ctx, src)
	if err != nil {
		return err
	}

	rng, seed := NewRand(cmd.Seed)

	report, err := sl.Simulate(ctx, snap, cmd.request(), cmd.Trials, rng)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	report.Seed = seed

	printSimulation(w, report)

	return nil
}

// NewRand returns a generator for seed, picking a seed when it is zero
func NewRand(seed uint64) (*rand.Rand, uint64) {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
