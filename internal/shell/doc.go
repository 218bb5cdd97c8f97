// Package shell abstracts execution of external command lines through the
// operating system shell.
//
// The Runner interface returns a uniform {exit code, stdout, stderr} result
// for every invocation, which keeps orchestration code free of os/exec
// details and makes it mockable in tests. All platform branching (cmd /C vs
// sh -c, NUL vs /dev/null redirection) lives in this package.
package shell
