package replicate

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/biomodelkit/mex/internal/model"
	"github.com/biomodelkit/mex/internal/rewrite"
)

// ErrNothingToDo is returned for a 1x1 grid: one copy is the seed model.
var ErrNothingToDo = errors.New("nothing to do: a single copy equals the seed model")

// timeNow is swapped out in tests.
var timeNow = time.Now

// Options tunes a replication run.
type Options struct {
	// SourceName appears in the provenance note, usually the seed file
	// name. Falls back to the seed model's name when empty.
	SourceName string
	// Logger receives per-cell progress and skipped-event warnings.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Replicate builds a new model holding Rows x Cols suffixed copies of
// seed. Each cell is constructed in four phases: entity skeletons,
// reactions, expressions, events. The seed is never modified.
func Replicate(seed *model.Model, g Grid, opts Options) (*model.Model, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Cells() == 1 {
		return nil, ErrNothingToDo
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	source := opts.SourceName
	if source == "" {
		source = seed.Name()
	}

	idx := rewrite.NewIndex(
		seed.ParameterNames(),
		seed.CompartmentNames(),
		seed.SpeciesNames(),
		seed.ReactionNames(),
	)

	// events with a time-only trigger are detected once, not per cell
	skipEvents := make(map[string]bool)
	for _, e := range seed.Events() {
		if !rewrite.ReferencesElement(e.Trigger, idx) {
			skipEvents[e.Name] = true
			logger.Warn("skipping time-triggered event, not replicated", "event", e.Name)
		}
	}

	desc := g.Description()
	out := model.New(
		fmt.Sprintf("%s of %s", desc, seed.Name()),
		provenanceNotes(seed.Notes(), desc, source),
		seed.Units(),
	)
	out.SetMiriam(annotate(seed.Miriam()))

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			suffix := g.Suffix(r, c)
			logger.Debug("building replica", "row", r+1, "col", c+1, "suffix", suffix)
			if err := buildCell(out, seed, idx, suffix, skipEvents); err != nil {
				return nil, fmt.Errorf("replica %d,%d: %w", r+1, c+1, err)
			}
		}
	}
	return out, nil
}

// buildCell runs the four construction phases for one replica. The phase
// order is load-bearing: expressions may reference any sibling entity of
// the same cell, so every skeleton and reaction must exist before phase 3.
func buildCell(out, seed *model.Model, idx *rewrite.Index, suffix string, skipEvents map[string]bool) error {
	if err := addSkeletons(out, seed, suffix); err != nil {
		return err
	}
	if err := addReactions(out, seed, suffix); err != nil {
		return err
	}
	if err := wireExpressions(out, seed, idx, suffix); err != nil {
		return err
	}
	return addEvents(out, seed, idx, suffix, skipEvents)
}

// addSkeletons creates every parameter, compartment and species with its
// literal attributes only. No expression is set yet.
func addSkeletons(out, seed *model.Model, suffix string) error {
	for _, p := range seed.Parameters() {
		err := out.AddParameter(model.Parameter{
			Name:         p.Name + suffix,
			Type:         model.Fixed,
			InitialValue: p.InitialValue,
			Unit:         p.Unit,
		})
		if err != nil {
			return err
		}
	}
	for _, c := range seed.Compartments() {
		typ := c.Type
		if typ.HasExpression() {
			typ = model.Fixed
		}
		err := out.AddCompartment(model.Compartment{
			Name:           c.Name + suffix,
			Type:           typ,
			InitialSize:    c.InitialSize,
			Unit:           c.Unit,
			Dimensionality: c.Dimensionality,
		})
		if err != nil {
			return err
		}
	}
	for _, s := range seed.Species() {
		typ := s.Type
		if typ.HasExpression() {
			typ = model.Fixed
		}
		err := out.AddSpecies(model.Species{
			Name:                 s.Name + suffix,
			Compartment:          s.Compartment + suffix,
			Type:                 typ,
			InitialConcentration: s.InitialConcentration,
			Unit:                 s.Unit,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// addReactions rewrites each reaction's scheme and mapping and creates it.
// Scheme species and mapping targets all exist from phase 1.
func addReactions(out, seed *model.Model, suffix string) error {
	for _, r := range seed.Reactions() {
		err := out.AddReaction(model.Reaction{
			Name:     r.Name + suffix,
			Scheme:   rewrite.Scheme(r.Scheme, suffix),
			Mapping:  r.Mapping.WithSuffix(suffix),
			Function: r.Function,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// wireExpressions applies rewritten initial expressions, and for
// assignment/ode entities the rewritten expression together with the type.
func wireExpressions(out, seed *model.Model, idx *rewrite.Index, suffix string) error {
	for _, p := range seed.Parameters() {
		if p.InitialExpression != "" {
			ie, err := rewrite.Expression(p.InitialExpression, suffix, idx)
			if err != nil {
				return fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			if err := out.SetParameterInitialExpression(p.Name+suffix, ie); err != nil {
				return err
			}
		}
		if p.Type.HasExpression() {
			ex, err := rewrite.Expression(p.Expression, suffix, idx)
			if err != nil {
				return fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			if err := out.SetParameterExpression(p.Name+suffix, p.Type, ex); err != nil {
				return err
			}
		}
	}
	for _, c := range seed.Compartments() {
		if c.InitialExpression != "" {
			ie, err := rewrite.Expression(c.InitialExpression, suffix, idx)
			if err != nil {
				return fmt.Errorf("compartment %q: %w", c.Name, err)
			}
			if err := out.SetCompartmentInitialExpression(c.Name+suffix, ie); err != nil {
				return err
			}
		}
		if c.Type.HasExpression() {
			ex, err := rewrite.Expression(c.Expression, suffix, idx)
			if err != nil {
				return fmt.Errorf("compartment %q: %w", c.Name, err)
			}
			if err := out.SetCompartmentExpression(c.Name+suffix, c.Type, ex); err != nil {
				return err
			}
		}
	}
	for _, s := range seed.Species() {
		if s.InitialExpression != "" {
			ie, err := rewrite.Expression(s.InitialExpression, suffix, idx)
			if err != nil {
				return fmt.Errorf("species %q: %w", s.Name, err)
			}
			if err := out.SetSpeciesInitialExpression(s.Name+suffix, ie); err != nil {
				return err
			}
		}
		if s.Type.HasExpression() {
			ex, err := rewrite.Expression(s.Expression, suffix, idx)
			if err != nil {
				return fmt.Errorf("species %q: %w", s.Name, err)
			}
			if err := out.SetSpeciesExpression(s.Name+suffix, s.Type, ex); err != nil {
				return err
			}
		}
	}
	return nil
}

// addEvents replicates events whose trigger references at least one model
// element. Time-only triggers would have to be unified once across the
// whole grid with assignments targeting every replica; that semantics is
// not settled, so such events are skipped with a warning.
func addEvents(out, seed *model.Model, idx *rewrite.Index, suffix string, skipEvents map[string]bool) error {
	for _, e := range seed.Events() {
		if skipEvents[e.Name] {
			continue
		}
		trigger, err := rewrite.Expression(e.Trigger, suffix, idx)
		if err != nil {
			return fmt.Errorf("event %q: trigger: %w", e.Name, err)
		}
		assignments := make([]model.EventAssignment, len(e.Assignments))
		for i, a := range e.Assignments {
			expr, err := rewrite.Expression(a.Expression, suffix, idx)
			if err != nil {
				return fmt.Errorf("event %q: assignment to %q: %w", e.Name, a.Target, err)
			}
			assignments[i] = model.EventAssignment{
				Target:     a.Target + suffix,
				Expression: expr,
			}
		}
		err = out.AddEvent(model.Event{
			Name:        e.Name + suffix,
			Trigger:     trigger,
			Assignments: assignments,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// annotate copies the seed annotation and appends the current time to its
// modification history.
func annotate(miriam model.Miriam) model.Miriam {
	out := miriam.Clone()
	out.Modifications = append(out.Modifications, timeNow())
	return out
}
