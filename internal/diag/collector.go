package diag

// Collector accumulates the diagnostics of a single render call.
// Each stage gets its own bag; Flush returns lex diagnostics first, then parse,
// then resolve, each stage ordered by source position.
// A Collector is not safe for concurrent use and must not outlive its call.
type Collector struct {
	lex     *Bag
	parse   *Bag
	resolve *Bag
	other   *Bag
}

func NewCollector() *Collector {
	return &Collector{
		lex:     NewBag(0),
		parse:   NewBag(0),
		resolve: NewBag(0),
		other:   NewBag(0),
	}
}

// Report routes d to the bag of the stage owning its code.
func (c *Collector) Report(d Diagnostic) {
	c.bag(d.Code.Stage()).Add(d)
}

func (c *Collector) bag(stage Stage) *Bag {
	switch stage {
	case StageLex:
		return c.lex
	case StageParse:
		return c.parse
	case StageResolve:
		return c.resolve
	}
	return c.other
}

// Stage returns the diagnostics collected so far for one stage, unsorted.
func (c *Collector) Stage(stage Stage) []Diagnostic {
	return c.bag(stage).Items()
}

func (c *Collector) Len() int {
	return c.lex.Len() + c.parse.Len() + c.resolve.Len() + c.other.Len()
}

// Flush merges the stage bags into one ordered bag.
// limit caps the result, 0 keeps everything.
func (c *Collector) Flush(limit int) *Bag {
	out := NewBag(0)
	for _, b := range []*Bag{c.lex, c.parse, c.resolve, c.other} {
		b.Sort()
		out.Merge(b)
	}
	if limit > 0 && out.Len() > limit {
		out.items = out.items[:limit]
	}
	out.max = limit
	return out
}
