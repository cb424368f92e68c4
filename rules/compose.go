package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fenci-dev/fenci/util"
)

// ErrDependencyCycle is returned when the selected rules (plus their forced
// dependencies) form a dependency cycle. This is a configuration fault and
// is surfaced instead of silently resolved.
var ErrDependencyCycle = errors.New("rules: dependency cycle")

// ConflictRecord documents a rule skipped during conflict resolution.
type ConflictRecord struct {
	Rule   string `json:"rule"`
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Result is the composer output: the token sequence, the rules actually
// applied in application order, and any conflict records.
type Result struct {
	Tokens    []string         `json:"tokens"`
	Applied   []string         `json:"appliedRules"`
	Conflicts []ConflictRecord `json:"conflicts"`
}

// Compose applies the selected rules to text. Conflicting subordinate rules
// are dropped with a record, declared dependencies are force-included
// transitively, and the survivors run split-group first then remove-group,
// each ordered by ascending priority. The same (text, selected) pair always
// yields the same result.
func Compose(text string, selected []ID, opts Options) (Result, error) {
	res := Result{Conflicts: []ConflictRecord{}}

	chosen := make(map[ID]bool, len(selected))
	for _, id := range selected {
		if descriptor(id) != nil {
			chosen[id] = true
		}
	}

	// 1. Conflict resolution: the subordinate rule yields and is skipped.
	for _, desc := range Catalogue {
		if !chosen[desc.ID] {
			continue
		}
		for _, winner := range desc.YieldsTo {
			if chosen[winner] {
				delete(chosen, desc.ID)
				res.Conflicts = append(res.Conflicts, ConflictRecord{
					Rule:   desc.ID.String(),
					Action: "skipped",
					Reason: fmt.Sprintf("%s makes %s a no-op", winner, desc.ID),
				})
				break
			}
		}
	}

	// 2. Dependency resolution: force-include transitively, detect cycles.
	if err := resolveDeps(chosen, descriptor); err != nil {
		return Result{}, err
	}

	// 3. Ordering: split group before remove group, each by priority.
	var order []*Descriptor
	for i := range Catalogue {
		if chosen[Catalogue[i].ID] {
			order = append(order, &Catalogue[i])
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Group != order[j].Group {
			return order[i].Group < order[j].Group
		}
		return order[i].Priority < order[j].Priority
	})

	res.Applied = make([]string, 0, len(order))
	for _, desc := range order {
		res.Applied = append(res.Applied, desc.ID.String())
	}

	// 4. Fold, flattening after every step and discarding empty strings.
	if util.IsBlank(text) {
		res.Tokens = []string{}
		return res, nil
	}
	tokens := []string{text}
	for _, desc := range order {
		var next []string
		for _, el := range tokens {
			for _, out := range desc.Transform(el, opts) {
				if out != "" {
					next = append(next, out)
				}
			}
		}
		tokens = next
	}
	if tokens == nil {
		tokens = []string{}
	}
	res.Tokens = tokens
	return res, nil
}

// resolveDeps force-includes every transitive dependency of the chosen
// rules, walking descriptors through lookup so the dependency graph is
// swappable under test.
func resolveDeps(chosen map[ID]bool, lookup func(ID) *Descriptor) error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[ID]int, len(Catalogue))

	var visit func(id ID) error
	visit = func(id ID) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w involving %s", ErrDependencyCycle, id)
		case done:
			return nil
		}
		state[id] = visiting
		desc := lookup(id)
		if desc != nil {
			for _, dep := range desc.DependsOn {
				chosen[dep] = true
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		state[id] = done
		return nil
	}

	for i := range Catalogue {
		if chosen[Catalogue[i].ID] {
			if err := visit(Catalogue[i].ID); err != nil {
				return err
			}
		}
	}
	return nil
}
