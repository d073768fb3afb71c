// Package greeter is a small consumer of the rop packages: it validates
// names, aggregates the results and renders greetings or a failure report.
package greeter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/solo"
)

const Formal = "formal"

type Greeter struct {
	setting string
}

func New(setting string) *Greeter {
	return &Greeter{setting: setting}
}

func (g *Greeter) Greet(name string) string {
	if g.setting == Formal {
		return fmt.Sprintf("Hello, Mr. %s.", name)
	}
	return fmt.Sprintf("Hey %s.", name)
}

// ValidateName trims name and reports every rule it breaks.
func ValidateName(name string) rop.Outcome[string, []string] {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return rop.Failed[string]([]string{"name must not be blank"})
	}

	var problems []string
	if strings.IndexFunc(trimmed, unicode.IsDigit) >= 0 {
		problems = append(problems, fmt.Sprintf("name %q must not contain digits", trimmed))
	}
	if len(trimmed) > 64 {
		problems = append(problems, fmt.Sprintf("name %q is longer than 64 characters", trimmed))
	}
	if len(problems) > 0 {
		return rop.Failed[string](problems)
	}
	return rop.Succeeded[string, []string](trimmed)
}

// Welcome greets every name, or fails with every validation problem found.
func (g *Greeter) Welcome(names ...string) rop.Outcome[[]string, []string] {
	if len(names) == 0 {
		return rop.Failed[[]string]([]string{"no names given"})
	}

	validated := make([]rop.Outcome[string, []string], 0, len(names))
	for _, n := range names {
		validated = append(validated, ValidateName(n))
	}

	return solo.Map(solo.Aggregate(validated...), func(valid []string) []string {
		greetings := make([]string, 0, len(valid))
		for _, n := range valid {
			greetings = append(greetings, g.Greet(n))
		}
		return greetings
	})
}

// Report renders a Welcome outcome as the text shown to the user.
func Report(o rop.Outcome[[]string, []string]) string {
	return solo.Either(solo.MapBoth(o,
		func(greetings []string) string { return strings.Join(greetings, "\n") },
		func(problems []string) string { return "invalid input: " + strings.Join(problems, "; ") },
	))
}
