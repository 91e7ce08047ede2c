package tools

// Kind tags a dispatch result. The rendered text is identical for some
// kinds (an empty repository and an unavailable one produce the same
// message); the tag is what keeps them distinguishable to internal callers
// and tests.
type Kind int

const (
	KindOK Kind = iota
	KindUnknownTool
	KindMissingArgument
	KindRepoUnavailable
	KindFileNotFound
	KindReadFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindUnknownTool:
		return "unknown_tool"
	case KindMissingArgument:
		return "missing_argument"
	case KindRepoUnavailable:
		return "repo_unavailable"
	case KindFileNotFound:
		return "file_not_found"
	case KindReadFailure:
		return "read_failure"
	default:
		return "invalid"
	}
}

// Result is the outcome of one tool invocation: a tag plus the single text
// segment shown to the caller. Text is always populated, whatever the tag.
type Result struct {
	Kind Kind
	Text string
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool {
	return r.Kind == KindOK
}

// Segments renders the result for the transport. Every result is exactly
// one text segment; the transport never sees zero or multiple segments.
func (r Result) Segments() []string {
	return []string{r.Text}
}
