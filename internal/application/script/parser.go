// Package script replays line-oriented acceptance scripts against a Facade.
//
// Each non-blank line that doesn't start with '#' is one step:
//
//	createUser login=alice password=pw name="Alice Smith"
//	s1=openSession login=alice password=pw
//	requestFriend session=${s1} friend=bob
//	expect true isFriend login=alice friend=bob
//	expectError EnemyBlocked sendNote session=${s1} recipient=carol note=hi
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Step is one parsed script line.
type Step struct {
	Line    int
	Command string
	Args    map[string]string

	// Assign names the variable receiving the command result.
	Assign string
	// Expect holds the expected rendered result when HasExpect is set.
	Expect    string
	HasExpect bool
	// ExpectError holds the expected error kind.
	ExpectError string
}

// Parse reads a script.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		step, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		step.Line = lineNum
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

func parseLine(line string) (Step, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return Step{}, err
	}

	var step Step
	switch head := tokens[0]; {
	case head == "expect":
		if len(tokens) < 3 {
			return Step{}, fmt.Errorf("expect needs a value and a command")
		}
		step.Expect, step.HasExpect = tokens[1], true
		tokens = tokens[2:]
	case head == "expectError":
		if len(tokens) < 3 {
			return Step{}, fmt.Errorf("expectError needs an error kind and a command")
		}
		step.ExpectError = tokens[1]
		tokens = tokens[2:]
	case strings.Contains(head, "="):
		name, cmd, _ := strings.Cut(head, "=")
		if name == "" || cmd == "" {
			return Step{}, fmt.Errorf("malformed assignment %q", head)
		}
		step.Assign = name
		tokens[0] = cmd
	}

	step.Command = tokens[0]
	step.Args = make(map[string]string, len(tokens)-1)
	for _, tok := range tokens[1:] {
		key, value, ok := strings.Cut(tok, "=")
		if !ok || key == "" {
			return Step{}, fmt.Errorf("argument %q is not key=value", tok)
		}
		step.Args[key] = value
	}
	return step, nil
}

// tokenize splits line on whitespace. Double quotes group text and are
// dropped; \" and \\ escape inside quotes.
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inQuote bool
		started bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuote && r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\'):
			i++
			current.WriteRune(runes[i])
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if started {
		tokens = append(tokens, current.String())
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty line")
	}
	return tokens, nil
}
