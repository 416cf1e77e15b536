package script

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/ersonp/jackut/internal/application/handlers"
	"github.com/ersonp/jackut/internal/domain/entities"
)

var reVariable = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// args holds the resolved arguments of a step. Missing keys read as "".
type args map[string]string

func (a args) get(key string) string {
	return a[key]
}

// Failure describes a step whose outcome didn't match the script.
type Failure struct {
	Line    int
	Command string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d (%s): %s", f.Line, f.Command, f.Message)
}

// Result summarizes a script run.
type Result struct {
	Steps    int
	Passed   int
	Failures []Failure
}

// OK reports whether every step passed.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Runner executes steps against a facade. Variables assigned by one step
// are visible to every later step of the same runner.
type Runner struct {
	facade *handlers.Facade
	log    *zap.Logger
	vars   map[string]string
}

// NewRunner creates a runner over facade.
func NewRunner(facade *handlers.Facade, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		facade: facade,
		log:    log,
		vars:   make(map[string]string),
	}
}

// Commands lists the supported command names.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunFile parses and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer file.Close()

	steps, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return r.Run(ctx, steps), nil
}

// Run executes steps in order. A failing step is recorded and the run continues.
func (r *Runner) Run(ctx context.Context, steps []Step) *Result {
	result := &Result{Steps: len(steps)}
	for _, step := range steps {
		if msg := r.exec(ctx, step); msg != "" {
			failure := Failure{Line: step.Line, Command: step.Command, Message: msg}
			r.log.Debug("step failed", zap.Int("line", step.Line), zap.String("command", step.Command), zap.String("reason", msg))
			result.Failures = append(result.Failures, failure)
			continue
		}
		result.Passed++
	}
	return result
}

// exec runs one step and returns a failure message, or "" when it passed.
func (r *Runner) exec(ctx context.Context, step Step) string {
	cmd, ok := commands[step.Command]
	if !ok {
		return fmt.Sprintf("unknown command %q", step.Command)
	}

	resolved := make(args, len(step.Args))
	for key, value := range step.Args {
		v, err := r.expand(value)
		if err != nil {
			return err.Error()
		}
		resolved[key] = v
	}
	expected, err := r.expand(step.Expect)
	if err != nil {
		return err.Error()
	}

	got, err := cmd(ctx, r.facade, resolved)

	switch {
	case step.ExpectError != "":
		if err == nil {
			return fmt.Sprintf("expected error %s, got success (%q)", step.ExpectError, got)
		}
		if kind := entities.KindOf(err); kind != step.ExpectError {
			return fmt.Sprintf("expected error %s, got %s: %v", step.ExpectError, kind, err)
		}
		return ""
	case err != nil:
		return fmt.Sprintf("unexpected error %s: %v", entities.KindOf(err), err)
	case step.HasExpect && got != expected:
		return fmt.Sprintf("expected %q, got %q", expected, got)
	}

	if step.Assign != "" {
		r.vars[step.Assign] = got
	}
	return ""
}

// expand substitutes ${name} references with assigned variables.
func (r *Runner) expand(s string) (string, error) {
	var missing string
	out := reVariable.ReplaceAllStringFunc(s, func(ref string) string {
		name := reVariable.FindStringSubmatch(ref)[1]
		v, ok := r.vars[name]
		if !ok && missing == "" {
			missing = name
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("undefined variable %q", missing)
	}
	return out, nil
}
