package setup

// StepStatus is the lifecycle state of a single wizard step.
type StepStatus string

const (
	// StepRunning means the step has started and not yet concluded.
	StepRunning StepStatus = "running"

	// StepComplete means the step finished successfully.
	StepComplete StepStatus = "complete"

	// StepFailed means the step failed and terminated the run.
	StepFailed StepStatus = "failed"
)

// Step names, in the fixed order the wizard may execute them.
const (
	StepCheckCLI   = "Checking Salesforce CLI"
	StepInstallCLI = "Installing Salesforce CLI"
	StepLogin      = "Logging in to Salesforce"
	StepVerify     = "Verifying connection"
)

// Step is one entry in the wizard's progress log. It is created with status
// running and mutated in place when the step concludes; Message is set once
// the status finalizes.
type Step struct {
	// Ordinal is the 1-based position in the executed sequence.
	Ordinal int

	// Name is the fixed step name.
	Name string

	// Status is the current lifecycle state.
	Status StepStatus

	// Message describes the outcome, set when the step concludes.
	Message string
}

// Connection holds the details of a verified org connection.
type Connection struct {
	Username    string
	InstanceURL string
	OrgID       string
	Alias       string
}

// Result is the outcome of one wizard run. It is built incrementally during
// the run and has no persistence beyond the invocation.
type Result struct {
	// RunID identifies this run. The same ID is attached to every debug
	// line the run emits, so audit records and logs can be correlated.
	RunID string

	// Steps are the executed steps in order. When a step failed it is the
	// last entry; steps after it were never created.
	Steps []*Step

	// Success is true if and only if every step reached complete.
	Success bool

	// Connection is set only on success.
	Connection *Connection
}

// begin appends a new running step and returns it.
func (r *Result) begin(name string) *Step {
	s := &Step{
		Ordinal: len(r.Steps) + 1,
		Name:    name,
		Status:  StepRunning,
	}
	r.Steps = append(r.Steps, s)
	return s
}

// complete finalizes a step as successful.
func (s *Step) complete(message string) {
	s.Status = StepComplete
	s.Message = message
}

// fail finalizes a step as failed.
func (s *Step) fail(message string) {
	s.Status = StepFailed
	s.Message = message
}
