package gen

// Generator collects steps and drives them over a Context, either directly
// or through the retry-on-regenerate safe entry points spec.md section 6
// names: config_and_generate_safe and config_and_get_stage_enumerator_safe.
//
// Grounded on the teacher's rl.MapGen "configure a struct of fields, then
// call a single method that walks the whole pipeline" shape, generalized
// from one fixed algorithm to an ordered list of pluggable Step values.
type Generator struct {
	width, height int
	steps         []Step
}

// NewGenerator returns a generator targeting a width x height map, with no
// steps yet registered.
func NewGenerator(width, height int) *Generator {
	return &Generator{width: width, height: height}
}

// AddStep appends step to the pipeline, to run after every step already
// added.
func (g *Generator) AddStep(step Step) {
	g.steps = append(g.steps, step)
}

// Generate runs every registered step in order against ctx, stopping at
// the first error (including an unrecovered regenerate signal — callers
// wanting automatic retry should use ConfigAndGenerateSafe instead).
func (g *Generator) Generate(ctx *Context) error {
	for _, step := range g.steps {
		if err := Perform(step, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ConfigAndGenerateSafe clears the generator's step list, runs configure to
// register a fresh set of steps, builds a fresh Context, and calls
// Generate — retrying the whole configure+generate cycle from scratch
// whenever a step raises the regenerate signal, up to maxAttempts times
// (maxAttempts <= 0 means unlimited). It returns the finished Context, or
// a *MapGenerationFailedError when the retry budget is exhausted.
func (g *Generator) ConfigAndGenerateSafe(configure func(g *Generator), maxAttempts int) (*Context, error) {
	var lastErr error
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		g.steps = nil
		configure(g)
		ctx, err := NewContext(g.width, g.height)
		if err != nil {
			return nil, err
		}
		err = g.Generate(ctx)
		if err == nil {
			return ctx, nil
		}
		if !isRegenerate(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, &MapGenerationFailedError{Attempts: maxAttempts, LastErr: lastErr}
}

// GetStageEnumerator returns a single enumerator that walks every
// registered step's own enumerator in sequence, for debuggers that want to
// single-step the whole pipeline.
func (g *Generator) GetStageEnumerator(ctx *Context) StageEnumerator {
	return &pipelineEnumerator{steps: g.steps, ctx: ctx}
}

type pipelineEnumerator struct {
	steps   []Step
	ctx     *Context
	idx     int
	current StageEnumerator
}

func (p *pipelineEnumerator) Next() (bool, error) {
	for {
		if p.current == nil {
			if p.idx >= len(p.steps) {
				return false, nil
			}
			en, err := p.steps[p.idx].Stages(p.ctx)
			if err != nil {
				return false, err
			}
			p.current = en
		}
		more, err := p.current.Next()
		if err != nil {
			return false, err
		}
		if more {
			return true, nil
		}
		p.current = nil
		p.idx++
	}
}

// SafeStageEnumerator is the enumerator ConfigAndGetStageEnumeratorSafe
// returns. Context reflects the context currently being written into,
// which changes identity across a regenerate-triggered retry — callers
// must call Context() after each Next rather than caching the pointer.
type SafeStageEnumerator struct {
	gen         *Generator
	configure   func(g *Generator)
	maxAttempts int
	attempt     int
	ctx         *Context
	inner       StageEnumerator
}

// Context returns the context currently backing the enumerator.
func (s *SafeStageEnumerator) Context() *Context {
	return s.ctx
}

// ConfigAndGetStageEnumeratorSafe mirrors ConfigAndGenerateSafe but returns
// a single-step-driven enumerator instead of eagerly running the pipeline,
// re-configuring from scratch whenever the enumerator yields a regenerate
// signal up to maxAttempts times.
func (g *Generator) ConfigAndGetStageEnumeratorSafe(configure func(g *Generator), maxAttempts int) (*SafeStageEnumerator, error) {
	g.steps = nil
	configure(g)
	ctx, err := NewContext(g.width, g.height)
	if err != nil {
		return nil, err
	}
	inner := g.GetStageEnumerator(ctx)
	return &SafeStageEnumerator{gen: g, configure: configure, maxAttempts: maxAttempts, ctx: ctx, inner: inner}, nil
}

func (s *SafeStageEnumerator) Next() (bool, error) {
	for {
		more, err := s.inner.Next()
		if err == nil {
			return more, nil
		}
		if !isRegenerate(err) {
			return false, err
		}
		s.attempt++
		if s.maxAttempts > 0 && s.attempt >= s.maxAttempts {
			return false, &MapGenerationFailedError{Attempts: s.maxAttempts, LastErr: err}
		}
		s.gen.steps = nil
		s.configure(s.gen)
		ctx, cerr := NewContext(s.gen.width, s.gen.height)
		if cerr != nil {
			return false, cerr
		}
		s.ctx = ctx
		s.inner = s.gen.GetStageEnumerator(ctx)
	}
}
