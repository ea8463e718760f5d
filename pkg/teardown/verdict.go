package teardown

import (
	"fmt"
	"strings"
)

// Check names, in evaluation order.
const (
	CheckStash           = "stashes"
	CheckUnpushedCommits = "unpushed commits"
	CheckUnstagedChanges = "unstaged changes"
	CheckUnpushedTags    = "unpushed tags"
)

// Reason is a failed check with the raw output of the probe that failed it.
type Reason struct {
	Check  string
	Output string
	// Failed is set when the check could not run; Output then describes the failure.
	Failed bool
}

// Verdict is the outcome of a teardown evaluation. The zero value is Clean.
type Verdict struct {
	Blocked bool
	Reasons []Reason
}

// Clean reports whether the project directory may be removed.
func (v Verdict) Clean() bool {
	return !v.Blocked
}

// Error renders a blocked verdict as an ErrTeardownBlocked error. It returns nil for a clean verdict.
func (v Verdict) Error(project string) error {
	if !v.Blocked {
		return nil
	}

	var b strings.Builder
	for _, reason := range v.Reasons {
		output := strings.TrimRight(reason.Output, "\n")
		if reason.Failed {
			fmt.Fprintf(&b, "\nCould not check %s for %q:\n%s\n", reason.Check, project, output)
			continue
		}
		fmt.Fprintf(&b, "\nThere are %s left for %q! Please, take a look:\n%s\n", reason.Check, project, output)
	}

	return fmt.Errorf("%w:%s\nPush your local changes or use \"-f\" flag to drop them",
		ErrTeardownBlocked, b.String())
}
