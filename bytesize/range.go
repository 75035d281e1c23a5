package bytesize

// Range is an inclusive span of byte sizes.
type Range struct {
	Start ByteSize
	Stop  ByteSize
}

// NewRange returns the range [start, stop].
func NewRange(start, stop ByteSize) Range {
	return Range{Start: start, Stop: stop}
}

// RangeFrom returns [start, Max].
func RangeFrom(start ByteSize) Range {
	return Range{Start: start, Stop: Max}
}

// RangeTo returns [0, stop].
func RangeTo(stop ByteSize) Range {
	return Range{Stop: stop}
}

// Contains reports whether b lies in r.
func (r Range) Contains(b ByteSize) bool {
	return r.Start <= b && b <= r.Stop
}

// Empty reports whether r contains no sizes at all.
func (r Range) Empty() bool {
	return r.Start > r.Stop
}

func (r Range) String() string {
	return "[" + r.Start.String() + ", " + r.Stop.String() + "]"
}
