package setup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/logging"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/sfcli"
)

// StepRecorder receives timing observations for executed steps. It is
// satisfied by the instrumentation metrics recorder; a nil recorder disables
// recording.
type StepRecorder interface {
	RecordSetupStep(ctx context.Context, step, status string, duration time.Duration)
}

// Wizard orchestrates the Salesforce setup sequence. A single Wizard is
// shared by all invocations; it guards against two runs racing the CLI's
// credential store under the same alias.
type Wizard struct {
	client   *sfcli.Client
	recorder StepRecorder

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewWizard creates a wizard driving the given Salesforce CLI client.
func NewWizard(client *sfcli.Client) *Wizard {
	return &Wizard{
		client:   client,
		inFlight: make(map[string]bool),
	}
}

// SetStepRecorder attaches a metrics recorder for step durations.
func (w *Wizard) SetStepRecorder(r StepRecorder) {
	w.recorder = r
}

// Run executes the setup sequence: check CLI, install when missing, login,
// verify. Steps run strictly in order; the first failure halts the run and
// becomes the last recorded step. The install step is skipped entirely (not
// recorded) when the CLI is already present.
//
// Run blocks for the whole sequence; the login step in particular waits for
// an externally controlled browser flow with no timeout of its own. An error
// is returned only when another run for the same alias is already in flight;
// every other outcome is expressed in the Result.
func (w *Wizard) Run(ctx context.Context) (result *Result, err error) {
	alias := w.client.Alias()
	if !w.acquire(alias) {
		return nil, fmt.Errorf("a setup run for alias %q is already in progress", alias)
	}
	defer w.release(alias)

	runID := uuid.NewString()
	log := logging.WithRunID(slog.Default(), runID)
	log.Debug("setup run starting", logging.Alias(alias))

	result = &Result{RunID: runID}

	// Unexpected failures must surface as a failed result, not crash the
	// process serving the MCP connection.
	defer func() {
		if r := recover(); r != nil {
			log.Error("setup run panicked", slog.Any("panic", r))
			if n := len(result.Steps); n > 0 && result.Steps[n-1].Status == StepRunning {
				result.Steps[n-1].fail("Setup Failed")
			}
			result.Success = false
			result.Connection = nil
		}
	}()

	// Step: presence check. A missing CLI is not a failure here, it only
	// routes through the install step.
	check := result.begin(StepCheckCLI)
	installed := w.checkCLI(ctx, log, check)

	if !installed {
		install := result.begin(StepInstallCLI)
		if !w.installCLI(ctx, log, install) {
			return result, nil
		}
	}

	login := result.begin(StepLogin)
	if !w.login(ctx, log, login) {
		return result, nil
	}

	verify := result.begin(StepVerify)
	org := w.verify(ctx, log, verify)
	if org == nil {
		return result, nil
	}

	result.Success = true
	result.Connection = &Connection{
		Username:    org.Username,
		InstanceURL: org.InstanceURL,
		OrgID:       org.OrgID,
		Alias:       alias,
	}
	log.Debug("setup run complete", logging.Alias(alias), slog.String("username", org.Username))
	return result, nil
}

func (w *Wizard) checkCLI(ctx context.Context, log *slog.Logger, step *Step) bool {
	start := time.Now()
	chk := w.client.CheckInstalled(ctx)
	if chk.Installed {
		step.complete(fmt.Sprintf("Salesforce CLI already installed (%s)", chk.Version))
	} else {
		step.complete("Salesforce CLI not found, installing")
	}
	w.record(ctx, step, time.Since(start))
	log.Debug("presence check finished", logging.Step(step.Name), slog.Bool("installed", chk.Installed))
	return chk.Installed
}

func (w *Wizard) installCLI(ctx context.Context, log *slog.Logger, step *Step) bool {
	start := time.Now()
	version, err := w.client.Install(ctx)
	if err != nil {
		step.fail(err.Error())
		w.record(ctx, step, time.Since(start))
		log.Debug("install failed", logging.Step(step.Name), logging.Err(err))
		return false
	}
	step.complete(fmt.Sprintf("Installed Salesforce CLI (%s)", version))
	w.record(ctx, step, time.Since(start))
	log.Debug("install finished", logging.Step(step.Name), slog.String("version", version))
	return true
}

func (w *Wizard) login(ctx context.Context, log *slog.Logger, step *Step) bool {
	start := time.Now()
	if err := w.client.Login(ctx); err != nil {
		step.fail(err.Error())
		w.record(ctx, step, time.Since(start))
		log.Debug("login failed", logging.Step(step.Name), logging.Err(err))
		return false
	}
	step.complete(fmt.Sprintf("Logged in, credentials stored under alias %q", w.client.Alias()))
	w.record(ctx, step, time.Since(start))
	log.Debug("login finished", logging.Step(step.Name))
	return true
}

func (w *Wizard) verify(ctx context.Context, log *slog.Logger, step *Step) *sfcli.OrgInfo {
	start := time.Now()
	org, err := w.client.DescribeOrg(ctx)
	if err != nil {
		step.fail(err.Error())
		w.record(ctx, step, time.Since(start))
		log.Debug("verification failed", logging.Step(step.Name), logging.Err(err))
		return nil
	}
	step.complete(fmt.Sprintf("Connected as %s", org.Username))
	w.record(ctx, step, time.Since(start))
	log.Debug("verification finished", logging.Step(step.Name), slog.String("username", org.Username))
	return org
}

func (w *Wizard) record(ctx context.Context, step *Step, d time.Duration) {
	if w.recorder == nil {
		return
	}
	w.recorder.RecordSetupStep(ctx, step.Name, string(step.Status), d)
}

func (w *Wizard) acquire(alias string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight[alias] {
		return false
	}
	w.inFlight[alias] = true
	return true
}

func (w *Wizard) release(alias string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.inFlight, alias)
}
