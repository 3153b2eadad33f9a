// Package pages resolves requested page ranges against a document and
// partitions them between workers.
package pages

import (
	"errors"
	"fmt"
	"math"
)

// NoEnd marks a range without an upper bound.
const NoEnd uint = math.MaxUint

var (
	ErrEmptyDocument   = errors.New("document has no pages")
	ErrStartOutOfRange = errors.New("start page out of range")
	ErrStartAfterEnd   = errors.New("start page exceeds end page")
	ErrEndOutOfRange   = errors.New("end page out of range")
)

// Range is an inclusive, 1-based span of pages.
type Range struct {
	Start uint
	End   uint
}

func (r Range) String() string {
	if r.End == NoEnd {
		return fmt.Sprintf("%d-", r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Bounded reports whether the range has an explicit end page.
func (r Range) Bounded() bool {
	return r.End != NoEnd
}

// Len returns the number of pages covered, 0 for an inverted range. The
// full-width range {0, NoEnd} saturates at NoEnd.
func (r Range) Len() uint {
	if r.Start > r.End {
		return 0
	}
	if r.Start == 0 && r.End == NoEnd {
		return NoEnd
	}
	return r.End - r.Start + 1
}

// Resolve checks r against a document of pageCount pages. An unbounded end
// is clamped to the last page; an explicit end past it is an error.
func (r Range) Resolve(pageCount uint) (Range, error) {
	if pageCount == 0 {
		return Range{}, ErrEmptyDocument
	}
	if r.Start == 0 || r.Start > pageCount {
		return Range{}, fmt.Errorf("%w: %d (1-%d)", ErrStartOutOfRange, r.Start, pageCount)
	}
	end := r.End
	if end == NoEnd {
		end = pageCount
	}
	if r.Start > end {
		return Range{}, fmt.Errorf("%w: %d > %d", ErrStartAfterEnd, r.Start, end)
	}
	if end > pageCount {
		return Range{}, fmt.Errorf("%w: %d (1-%d)", ErrEndOutOfRange, end, pageCount)
	}
	return Range{Start: r.Start, End: end}, nil
}

// Split divides r into contiguous, ordered chunks, one per worker. Every
// worker gets an equal share and the last one also takes the remainder.
// The worker count is capped at the number of pages so no chunk is empty.
func (r Range) Split(workers int) []Range {
	n := r.Len()
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if uint(workers) > n {
		workers = int(n)
	}

	per := n / uint(workers)
	chunks := make([]Range, 0, workers)
	for i := 0; i < workers; i++ {
		start := r.Start + per*uint(i)
		end := start + per - 1
		if i == workers-1 {
			end = r.End
		}
		chunks = append(chunks, Range{Start: start, End: end})
	}
	return chunks
}
