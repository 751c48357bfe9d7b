package gen

// ListAppender copies every item from a source ItemList into a destination
// ItemList, re-tagging each with this step's own name as producer. Used to
// fold an intermediate list (e.g. MazeConnections) into a long-lived one
// (e.g. Tunnels), per spec.md section 6's component table entry:
// "MazeConnections | intermediate -> appender".
type ListAppender struct {
	name          string
	srcKind       string
	srcTag        string
	dstKind       string
	dstTag        string
	clearSource   bool
}

// NewListAppender returns a ListAppender moving items from (srcKind,
// srcTag) into (dstKind, dstTag). If clearSource is true the source list is
// emptied after copying.
func NewListAppender(name, srcKind, srcTag, dstKind, dstTag string, clearSource bool) *ListAppender {
	return &ListAppender{name: name, srcKind: srcKind, srcTag: srcTag, dstKind: dstKind, dstTag: dstTag, clearSource: clearSource}
}

func (s *ListAppender) Name() string { return s.name }

func (s *ListAppender) Requirements() []Requirement {
	return []Requirement{{Kind: s.srcKind, Tag: s.srcTag}}
}

func (s *ListAppender) Stages(ctx *Context) (StageEnumerator, error) {
	if err := ValidateRequirements(ctx, s.name, s.Requirements()); err != nil {
		return nil, err
	}
	src, err := ctx.ItemList(s.name, s.srcKind, s.srcTag)
	if err != nil {
		return nil, err
	}
	dst := ctx.ItemListOrNew(s.dstKind, s.dstTag)
	return singleStage(func() error {
		for _, it := range src.Items() {
			dst.Append(it, s.name)
		}
		if s.clearSource {
			src.RemoveIf(func(interface{}) bool { return true })
		}
		return nil
	}), nil
}
