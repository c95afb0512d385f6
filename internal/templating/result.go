package templating

import "sort"

// Result is the outcome of a substitution over a string or a document.
type Result struct {
	// Replaced is true when at least one token resolved to a value.
	Replaced bool

	// Missing holds the dotted paths of tokens that did not resolve.
	Missing map[string]struct{}
}

func (r *Result) addMissing(path string) {
	if r.Missing == nil {
		r.Missing = make(map[string]struct{})
	}
	r.Missing[path] = struct{}{}
}

// Merge folds other into r: Replaced is OR-ed and Missing is the union.
func (r *Result) Merge(other Result) {
	r.Replaced = r.Replaced || other.Replaced
	for path := range other.Missing {
		r.addMissing(path)
	}
}

// MissingParameters returns the missing paths in lexical order.
func (r Result) MissingParameters() []string {
	out := make([]string, 0, len(r.Missing))
	for path := range r.Missing {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Err returns a [*MissingParametersError] when any parameter was missing.
func (r Result) Err() error {
	if len(r.Missing) == 0 {
		return nil
	}
	return &MissingParametersError{Parameters: r.MissingParameters()}
}
