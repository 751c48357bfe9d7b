package gen

// Requirement names a (component kind, tag) pair a Step needs present in
// the Context before it runs.
type Requirement struct {
	Kind string
	Tag  string
}

// StageEnumerator is a lazy, single-consumer iterator over a step's
// pause points. Each Next call performs one more unit of work (placing a
// room, carving a connection, running one cellular-automata iteration) and
// reports whether more work remains. A Next call may return the regenerate
// signal built by ErrRegenerate, which the Generator's safe driver
// recognizes and recovers from; any other non-nil error is a programmer
// error and propagates unrecovered.
//
// No pack repository exposes a debugger-facing pause-point iterator;
// built from spec.md section 4.4/5's description of GetStageEnumerator, in
// the idiomatic Go shape of an explicit Next()-based iterator rather than a
// channel (steps are single-consumer and synchronous, so a channel would
// add goroutine lifecycle management spec.md section 5 explicitly rules
// out: "no generation step may be run concurrently with another").
type StageEnumerator interface {
	// Next performs one stage. It returns (false, nil) when the step has
	// finished.
	Next() (bool, error)
}

// Step is a single unit of map generation: it declares the components it
// requires, then drives a StageEnumerator to completion.
type Step interface {
	// Name identifies the step in error messages and as the "producing
	// step" tag recorded on items it appends to context lists.
	Name() string
	// Requirements lists the (kind, tag) pairs that must already be
	// present in the context before this step runs.
	Requirements() []Requirement
	// Stages validates requirements and returns a lazy enumerator of this
	// step's pause points. It returns a *MissingComponentError if a
	// required component is absent.
	Stages(ctx *Context) (StageEnumerator, error)
}

// ValidateRequirements checks that every requirement in reqs is present in
// ctx, returning the first *MissingComponentError encountered.
func ValidateRequirements(ctx *Context, stepName string, reqs []Requirement) error {
	for _, r := range reqs {
		if _, ok := ctx.GetFirst(r.Kind, r.Tag); !ok {
			return &MissingComponentError{Step: stepName, Type: r.Kind, Tag: r.Tag}
		}
	}
	return nil
}

// Perform validates step's requirements and drives its stage enumerator to
// completion, returning the first error (including a regenerate signal)
// encountered.
func Perform(step Step, ctx *Context) error {
	en, err := step.Stages(ctx)
	if err != nil {
		return err
	}
	for {
		more, err := en.Next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// funcEnumerator adapts a plain function returning an error into a
// single-stage StageEnumerator, for steps whose work is naturally a single
// call (the
// one-pass steps: rectangle filler, area finder, door finder, duplicate
// remover, list appender).
type funcEnumerator struct {
	fn   func() error
	done bool
}

func singleStage(fn func() error) StageEnumerator {
	return &funcEnumerator{fn: fn}
}

func (f *funcEnumerator) Next() (bool, error) {
	if f.done {
		return false, nil
	}
	f.done = true
	if err := f.fn(); err != nil {
		return false, err
	}
	return false, nil
}
