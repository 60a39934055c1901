package pathkit

import "strings"

// Segment is one element of a ConcatPaths argument list: either a single
// path fragment (Part) or a sequence of fragments (List) that is expanded
// in place. The union replaces the array-or-scalar variadic convention
// some callers may know from other path helpers, making the single level
// of flattening explicit in the type system.
type Segment interface {
	appendFragments(dst []string) []string
}

// Part wraps a single path fragment.
func Part(fragment string) Segment {
	return partSegment(fragment)
}

// List wraps a sequence of path fragments. ConcatPaths expands the
// sequence exactly one level: each element joins the fragment list
// as-is, and elements are never flattened further.
func List(fragments ...string) Segment {
	return listSegment(fragments)
}

type partSegment string

func (p partSegment) appendFragments(dst []string) []string {
	return append(dst, string(p))
}

type listSegment []string

func (l listSegment) appendFragments(dst []string) []string {
	return append(dst, l...)
}

// ConcatPaths joins path fragments into a single normalized path.
// Fragments are joined with "/", runs of consecutive separators collapse
// to one, and a single trailing separator is stripped unless the result
// is empty or the root "/". No filesystem access and no lexical cleaning
// happen: "." and ".." fragments pass through untouched.
//
// ConcatPaths() returns "".
func ConcatPaths(segments ...Segment) string {
	fragments := make([]string, 0, len(segments))
	for _, segment := range segments {
		fragments = segment.appendFragments(fragments)
	}
	return joinFragments(fragments)
}

// JoinPaths is ConcatPaths for the common case where every fragment is a
// plain string.
func JoinPaths(fragments ...string) string {
	return joinFragments(fragments)
}

func joinFragments(fragments []string) string {
	joined := strings.Join(fragments, "/")

	var b strings.Builder
	b.Grow(len(joined))
	prevSlash := false
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}

	result := b.String()
	// Keep the slash only when it is the whole path (the root).
	if len(result) > 1 && result[len(result)-1] == '/' {
		result = result[:len(result)-1]
	}
	return result
}
