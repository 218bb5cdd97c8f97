package sfcli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/config"
	"github.com/jake-hebert/connect-to-salesforce-mcp/internal/shell"
)

// fakeRunner resolves commands against canned responses by substring match,
// in registration order. It records every command it sees.
type fakeRunner struct {
	responses []fakeResponse
	commands  []string
}

type fakeResponse struct {
	match  string
	result shell.Result
	err    error
}

func (f *fakeRunner) on(match string, result shell.Result, err error) {
	f.responses = append(f.responses, fakeResponse{match: match, result: result, err: err})
}

func (f *fakeRunner) Run(_ context.Context, command string) (shell.Result, error) {
	f.commands = append(f.commands, command)
	for _, r := range f.responses {
		if strings.Contains(command, r.match) {
			return r.result, r.err
		}
	}
	return shell.Result{ExitCode: 127, Stderr: "command not found"}, nil
}

func testConfig() config.Config {
	return config.Config{
		InstanceURL: "https://login.salesforce.com",
		OrgAlias:    "mcp-org",
	}
}

func TestCheckInstalled(t *testing.T) {
	tests := []struct {
		name          string
		result        shell.Result
		err           error
		wantInstalled bool
		wantVersion   string
	}{
		{
			name:          "installed with version",
			result:        shell.Result{Stdout: "@salesforce/cli/2.1.0 linux-x64 node-v20.0.0\n"},
			wantInstalled: true,
			wantVersion:   "@salesforce/cli/2.1.0 linux-x64 node-v20.0.0",
		},
		{
			name:          "non-zero exit means not installed",
			result:        shell.Result{ExitCode: 127, Stderr: "sf: command not found"},
			wantInstalled: false,
		},
		{
			name:          "execution error means not installed",
			err:           errors.New("sh: no such file"),
			wantInstalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			runner.on("sf --version", tt.result, tt.err)
			client := NewClient(runner, testConfig())

			check := client.CheckInstalled(context.Background())
			if check.Installed != tt.wantInstalled {
				t.Errorf("CheckInstalled() installed = %v, want %v", check.Installed, tt.wantInstalled)
			}
			if check.Version != tt.wantVersion {
				t.Errorf("CheckInstalled() version = %q, want %q", check.Version, tt.wantVersion)
			}
		})
	}
}

func TestInstall(t *testing.T) {
	t.Run("successful install confirms version", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.on("npm install -g @salesforce/cli", shell.Result{}, nil)
		runner.on("sf --version", shell.Result{Stdout: "@salesforce/cli/2.1.0\n"}, nil)
		client := NewClient(runner, testConfig())

		version, err := client.Install(context.Background())
		if err != nil {
			t.Fatalf("Install() unexpected error = %v", err)
		}
		if version != "@salesforce/cli/2.1.0" {
			t.Errorf("Install() version = %q, want confirmed version", version)
		}
	})

	t.Run("npm failure is surfaced", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.on("npm install", shell.Result{ExitCode: 1, Stderr: "EACCES: permission denied"}, nil)
		client := NewClient(runner, testConfig())

		_, err := client.Install(context.Background())
		if err == nil {
			t.Fatal("Install() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "EACCES") {
			t.Errorf("Install() error = %v, want underlying npm error text", err)
		}

		var cliErr *CLIError
		if !errors.As(err, &cliErr) || cliErr.Op != "install" {
			t.Errorf("Install() error = %v, want *CLIError with op install", err)
		}
	})

	t.Run("install succeeds but CLI still missing", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.on("npm install", shell.Result{}, nil)
		runner.on("sf --version", shell.Result{ExitCode: 127}, nil)
		client := NewClient(runner, testConfig())

		_, err := client.Install(context.Background())
		if err == nil {
			t.Fatal("Install() expected error when CLI absent after install")
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("builds login command from config", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.on("sf org login web", shell.Result{}, nil)
		client := NewClient(runner, testConfig())

		if err := client.Login(context.Background()); err != nil {
			t.Fatalf("Login() unexpected error = %v", err)
		}

		if len(runner.commands) != 1 {
			t.Fatalf("Login() ran %d commands, want 1", len(runner.commands))
		}
		cmd := runner.commands[0]
		for _, want := range []string{
			"--instance-url https://login.salesforce.com",
			"--alias mcp-org",
			"--set-default",
		} {
			if !strings.Contains(cmd, want) {
				t.Errorf("Login() command = %q, want it to contain %q", cmd, want)
			}
		}
	})

	t.Run("non-zero exit is a login error", func(t *testing.T) {
		runner := &fakeRunner{}
		runner.on("sf org login web", shell.Result{ExitCode: 1, Stderr: "user cancelled"}, nil)
		client := NewClient(runner, testConfig())

		err := client.Login(context.Background())
		if err == nil {
			t.Fatal("Login() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "user cancelled") {
			t.Errorf("Login() error = %v, want underlying CLI error text", err)
		}
	})
}

func TestDescribeOrg(t *testing.T) {
	connectedDoc := `{"status":0,"result":{"connectedStatus":"Connected","username":"a@b.com","instanceUrl":"https://x","id":"00Dxx"}}`

	tests := []struct {
		name      string
		result    shell.Result
		wantErr   error
		errString string
		wantOrg   *OrgInfo
	}{
		{
			name:    "connected org",
			result:  shell.Result{Stdout: connectedDoc},
			wantOrg: &OrgInfo{Username: "a@b.com", InstanceURL: "https://x", OrgID: "00Dxx"},
		},
		{
			name:    "leading garbage before JSON",
			result:  shell.Result{Stdout: "garbage text " + connectedDoc},
			wantOrg: &OrgInfo{Username: "a@b.com", InstanceURL: "https://x", OrgID: "00Dxx"},
		},
		{
			name:    "status zero but disconnected",
			result:  shell.Result{Stdout: `{"status":0,"result":{"connectedStatus":"Disconnected"}}`},
			wantErr: ErrNotConnected,
		},
		{
			name:    "non-zero status",
			result:  shell.Result{Stdout: `{"status":1,"result":{"connectedStatus":"Connected"}}`},
			wantErr: ErrNotConnected,
		},
		{
			name:      "no JSON in output",
			result:    shell.Result{Stdout: "No authorization information found"},
			errString: "parse failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			runner.on("sf org display", tt.result, nil)
			client := NewClient(runner, testConfig())

			org, err := client.DescribeOrg(context.Background())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DescribeOrg() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.errString != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errString) {
					t.Fatalf("DescribeOrg() error = %v, want error containing %q", err, tt.errString)
				}
				return
			}
			if err != nil {
				t.Fatalf("DescribeOrg() unexpected error = %v", err)
			}
			if *org != *tt.wantOrg {
				t.Errorf("DescribeOrg() = %+v, want %+v", org, tt.wantOrg)
			}
		})
	}
}

func TestDescribeOrg_TargetsConfiguredAlias(t *testing.T) {
	runner := &fakeRunner{}
	runner.on("sf org display", shell.Result{Stdout: `{"status":1}`}, nil)
	client := NewClient(runner, testConfig())

	_, _ = client.DescribeOrg(context.Background())

	if len(runner.commands) != 1 || !strings.Contains(runner.commands[0], "--target-org mcp-org") {
		t.Errorf("DescribeOrg() commands = %v, want --target-org mcp-org", runner.commands)
	}
}
