package vector

import (
	"container/heap"
	"slices"
	"sort"
)

// pendingSegment is a segment waiting to be inserted into the active list,
// described relative to the sweep point that will become its start.
type pendingSegment struct {
	winding int
	p1      Point
}

func (ps pendingSegment) toSegment(p0 Point) LineSegment {
	return NewLineSegment(p0, ps.p1)
}

// compare orders two pending segments emanating from the same point p0 by
// the angle they leave it at, using the other segment's end point as a probe
// against the extended line of each.
func (ps pendingSegment) compare(other pendingSegment, p0 Point) (ordering int, ok bool) {
	cmp, ok := ps.p1.Compare(other.p1)
	if !ok {
		return 0, false
	}
	if cmp <= 0 {
		c, ok := other.toSegment(p0).CompareToPoint(ps.p1)
		if !ok {
			return 0, false
		}
		return -c, true
	}
	return ps.toSegment(p0).CompareToPoint(other.p1)
}

func (ps pendingSegment) overlaps(other pendingSegment, p0 Point) bool {
	c, ok := ps.compare(other, p0)
	return ok && c == 0
}

// splice merges other into ps (same outgoing direction), returning a
// follow-up event for the part of whichever segment extends further, if any.
func (ps *pendingSegment) splice(other pendingSegment) (event, bool) {
	if cmp, _ := other.p1.Compare(ps.p1); cmp < 0 {
		*ps, other = other, *ps
	}
	ps.winding += other.winding
	if ps.p1.Equal(other.p1) {
		return event{}, false
	}
	oc := other
	return event{point: ps.p1, pendingSegment: &oc}, true
}

// activeSegment is a segment currently crossing the sweep line, ordered in
// Trapezoidator.activeSegments from lowest to highest Y at the sweep X.
type activeSegment struct {
	winding     int
	segment     LineSegment
	upperRegion region
}

func splitFront(seg *activeSegment, p Point) (activeSegment, bool) {
	p0 := seg.segment.P0
	if p.Equal(p0) {
		return activeSegment{}, false
	}
	old := activeSegment{winding: seg.winding, segment: NewLineSegment(p0, p), upperRegion: seg.upperRegion}
	seg.segment.P0 = p
	return old, true
}

func splitBack(seg *activeSegment, p Point) (pendingSegment, bool) {
	p1 := seg.segment.P1
	if p.Equal(p1) {
		return pendingSegment{}, false
	}
	seg.segment.P1 = p
	return pendingSegment{winding: seg.winding, p1: p1}, true
}

// region describes the fill state of the strip immediately above an active
// segment, under the non-zero winding rule.
type region struct {
	isInside bool
	winding  int
}

// event is a sweep-queue entry: an incident point, and (for segment starts)
// the pending segment that begins there.
type event struct {
	point          Point
	pendingSegment *pendingSegment
}

// eventHeap is a min-heap of events in sweep order (by Point, ties broken
// arbitrarily — callers merge same-point events themselves).
type eventHeap []event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].point.Less(h[j].point) }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Trapezoidator decomposes closed polygon contours into trapezoids under the
// non-zero winding rule via a left-to-right sweep over an event queue and an
// active-segment list kept sorted by Y at the current sweep X.
//
// A Trapezoidator can be reused across calls to Trapezoidate; each call
// resets its internal queue and active list.
type Trapezoidator struct {
	eventQueue     eventHeap
	activeSegments []activeSegment
}

// NewTrapezoidator returns an empty Trapezoidator.
func NewTrapezoidator() *Trapezoidator {
	return &Trapezoidator{}
}

// Trapezoidate decomposes path into trapezoids, calling f once per trapezoid
// in sweep order. It stops early — returning false — if f returns false, or
// if path contains a degenerate (NaN) segment. Contours must be well formed:
// every LineTo/Close must be preceded by a MoveTo opening its contour; a
// malformed path panics.
func (t *Trapezoidator) Trapezoidate(path LinePathIterator, f func(Trapezoid) bool) bool {
	t.eventQueue = t.eventQueue[:0]
	t.activeSegments = t.activeSegments[:0]

	var initialPoint, currentPoint Point
	started := false
	aborted := false
	path.ForEach(func(cmd LinePathCommand) bool {
		switch cmd.Kind {
		case LineMoveTo:
			initialPoint = cmd.P
			currentPoint = cmd.P
			started = true
		case LineLineTo:
			if !started {
				panic("vector: LineTo before MoveTo")
			}
			p0 := currentPoint
			currentPoint = cmd.P
			if t.pushEventsForSegment(NewLineSegment(p0, cmd.P)) {
				aborted = true
				return false
			}
		case LineClose:
			if !started {
				panic("vector: Close before MoveTo")
			}
			p0 := currentPoint
			currentPoint = initialPoint
			if t.pushEventsForSegment(NewLineSegment(p0, initialPoint)) {
				aborted = true
				return false
			}
		}
		return true
	})
	if aborted {
		return false
	}

	rightSegments := make([]pendingSegment, 0, 8)
	trapezoidSegments := make([]activeSegment, 0, 8)
	for {
		point, exists := t.popEventsForPoint(&rightSegments)
		if !exists {
			break
		}
		cont := t.handleEventsForPoint(point, &rightSegments, &trapezoidSegments, f)
		rightSegments = rightSegments[:0]
		trapezoidSegments = trapezoidSegments[:0]
		if !cont {
			return false
		}
	}
	return true
}

// pushEventsForSegment normalizes segment into sweep order (smaller point
// first) and pushes its two endpoint events. It returns true if the segment
// is degenerate in a way the sweep cannot handle (NaN endpoints), signaling
// the caller to abort.
func (t *Trapezoidator) pushEventsForSegment(segment LineSegment) bool {
	cmp, ok := segment.P0.Compare(segment.P1)
	if !ok {
		return true
	}
	var winding int
	var p0, p1 Point
	switch {
	case cmp < 0:
		winding, p0, p1 = 1, segment.P0, segment.P1
	case cmp == 0:
		return false
	default:
		winding, p0, p1 = -1, segment.P1, segment.P0
	}
	ps := pendingSegment{winding: winding, p1: p1}
	heap.Push(&t.eventQueue, event{point: p0, pendingSegment: &ps})
	heap.Push(&t.eventQueue, event{point: p1})
	return false
}

// popEventsForPoint pops every event at the next sweep point, collecting any
// pending segments that start there, and returns that point.
func (t *Trapezoidator) popEventsForPoint(rightSegments *[]pendingSegment) (Point, bool) {
	if t.eventQueue.Len() == 0 {
		return Point{}, false
	}
	first := heap.Pop(&t.eventQueue).(event)
	if first.pendingSegment != nil {
		*rightSegments = append(*rightSegments, *first.pendingSegment)
	}
	for t.eventQueue.Len() > 0 && t.eventQueue[0].point.Equal(first.point) {
		next := heap.Pop(&t.eventQueue).(event)
		if next.pendingSegment != nil {
			*rightSegments = append(*rightSegments, *next.pendingSegment)
		}
	}
	return first.point, true
}

func (t *Trapezoidator) handleEventsForPoint(
	point Point,
	rightSegments *[]pendingSegment,
	trapezoidSegments *[]activeSegment,
	f func(Trapezoid) bool,
) bool {
	start, end := t.findIncidentSegmentRange(point)

	if seg, ok := t.findLowerTrapezoidSegment(point, start); ok {
		*trapezoidSegments = append(*trapezoidSegments, seg)
	}

	start, end = t.removeIncidentSegments(point, start, end, rightSegments, trapezoidSegments)
	t.sortRightSegments(point, rightSegments)
	end = t.insertRightSegments(point, end, *rightSegments)

	if seg, ok := t.findUpperTrapezoidSegment(point, end); ok {
		*trapezoidSegments = append(*trapezoidSegments, seg)
	}

	return t.generateTrapezoids(*trapezoidSegments, f)
}

// findIncidentSegmentRange returns the range of activeSegments whose line
// passes through point (neither strictly above nor strictly below it).
func (t *Trapezoidator) findIncidentSegmentRange(point Point) (start, end int) {
	start = len(t.activeSegments)
	for i, seg := range t.activeSegments {
		if cmp, _ := seg.segment.CompareToPoint(point); cmp >= 0 {
			start = i
			break
		}
	}
	end = 0
	for i := len(t.activeSegments) - 1; i >= 0; i-- {
		if cmp, _ := t.activeSegments[i].segment.CompareToPoint(point); cmp <= 0 {
			end = i + 1
			break
		}
	}
	return start, end
}

func (t *Trapezoidator) findLowerTrapezoidSegment(point Point, incidentStart int) (activeSegment, bool) {
	if incidentStart == 0 || !t.activeSegments[incidentStart-1].upperRegion.isInside {
		return activeSegment{}, false
	}
	intersection, ok := t.activeSegments[incidentStart-1].segment.IntersectWithVerticalLine(point.X)
	if !ok {
		return activeSegment{}, false
	}
	return splitFront(&t.activeSegments[incidentStart-1], intersection)
}

// removeIncidentSegments drains [start:end) out of activeSegments, splitting
// each back to point and keeping the non-degenerate remainder as a
// trapezoid-boundary segment.
func (t *Trapezoidator) removeIncidentSegments(
	point Point,
	start, end int,
	rightSegments *[]pendingSegment,
	trapezoidSegments *[]activeSegment,
) (int, int) {
	for i := start; i < end; i++ {
		seg := t.activeSegments[i]
		if ps, ok := splitBack(&seg, point); ok {
			*rightSegments = append(*rightSegments, ps)
		}
		if seg.segment.P0.X != seg.segment.P1.X {
			*trapezoidSegments = append(*trapezoidSegments, seg)
		}
	}
	t.activeSegments = append(t.activeSegments[:start], t.activeSegments[end:]...)
	return start, start
}

// sortRightSegments sorts the segments leaving point by angle and merges any
// that coincide, pushing a follow-up event for whichever part extends
// further when two merged segments diverge later.
func (t *Trapezoidator) sortRightSegments(point Point, rightSegments *[]pendingSegment) {
	rs := *rightSegments
	sort.Slice(rs, func(i, j int) bool {
		c, _ := rs[i].compare(rs[j], point)
		return c < 0
	})
	idx0 := 0
	for idx1 := 1; idx1 < len(rs); idx1++ {
		r1 := rs[idx1]
		if rs[idx0].overlaps(r1, point) {
			if ev, ok := (&rs[idx0]).splice(r1); ok {
				heap.Push(&t.eventQueue, ev)
			}
		} else {
			idx0++
			rs[idx0] = r1
		}
	}
	*rightSegments = rs[:idx0+1]
}

// insertRightSegments inserts rightSegments into activeSegments at
// incidentEnd, accumulating winding from the segment below to derive each
// new segment's upperRegion. It returns the new incident-range end.
func (t *Trapezoidator) insertRightSegments(point Point, incidentEnd int, rightSegments []pendingSegment) int {
	lowerRegion := region{}
	if incidentEnd > 0 {
		lowerRegion = t.activeSegments[incidentEnd-1].upperRegion
	}
	inserted := make([]activeSegment, len(rightSegments))
	for i, rs := range rightSegments {
		winding := lowerRegion.winding + rs.winding
		upperRegion := region{isInside: winding != 0, winding: winding}
		inserted[i] = activeSegment{winding: rs.winding, segment: NewLineSegment(point, rs.p1), upperRegion: upperRegion}
		lowerRegion = upperRegion
	}
	t.activeSegments = slices.Insert(t.activeSegments, incidentEnd, inserted...)
	return incidentEnd + len(rightSegments)
}

func (t *Trapezoidator) findUpperTrapezoidSegment(point Point, incidentEnd int) (activeSegment, bool) {
	if incidentEnd == 0 || !t.activeSegments[incidentEnd-1].upperRegion.isInside {
		return activeSegment{}, false
	}
	intersection, ok := t.activeSegments[incidentEnd].segment.IntersectWithVerticalLine(point.X)
	if !ok {
		return activeSegment{}, false
	}
	if ps, split := splitBack(&t.activeSegments[incidentEnd], intersection); split {
		psCopy := ps
		heap.Push(&t.eventQueue, event{point: intersection, pendingSegment: &psCopy})
	}
	return t.activeSegments[incidentEnd], true
}

func (t *Trapezoidator) generateTrapezoids(trapezoidSegments []activeSegment, f func(Trapezoid) bool) bool {
	for i := 0; i+1 < len(trapezoidSegments); i++ {
		lower := trapezoidSegments[i]
		if !lower.upperRegion.isInside {
			continue
		}
		upper := trapezoidSegments[i+1]
		tz := Trapezoid{
			Xs: [2]float32{lower.segment.P0.X, lower.segment.P1.X},
			Ys: [4]float32{lower.segment.P0.Y, lower.segment.P1.Y, upper.segment.P0.Y, upper.segment.P1.Y},
		}
		if !f(tz) {
			return false
		}
	}
	return true
}
