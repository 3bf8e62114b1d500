package voronoi

// siteRef identifies a beach-line boundary endpoint: either a real site
// (by its frozen index into the sites slice) or one of the two beach-line
// sentinels marking −∞/+∞. Replaces the source's nullptr checks with a
// proper sum type, per the open question in the design notes.
type siteRef struct {
	idx int
}

const (
	leftSentinelIdx  = -1
	rightSentinelIdx = -2
)

var (
	leftSentinel  = siteRef{idx: leftSentinelIdx}
	rightSentinel = siteRef{idx: rightSentinelIdx}
)

func siteAt(i int) siteRef {
	return siteRef{idx: i}
}

func (r siteRef) isLeftSentinel() bool {
	return r.idx == leftSentinelIdx
}

func (r siteRef) isRightSentinel() bool {
	return r.idx == rightSentinelIdx
}

func (r siteRef) isSite() bool {
	return r.idx >= 0
}
