package cpusetup

import "bytes"

// Find returns the offset just past every occurrence of marker in buf, in
// ascending order. Overlapping occurrences are all reported.
func Find(buf []byte, marker []byte) []int {
	if len(marker) == 0 {
		return nil
	}

	var offsets []int
	pos := 0
	for {
		i := bytes.Index(buf[pos:], marker)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, pos+i+len(marker))
		pos += i + 1
	}
}

type Change struct {
	Offset int
	Before Record
	After  Record
}

func (c Change) Modified() bool {
	return c.Before != c.After
}

func SetEnableHwp(value uint8) func(*Record) {
	return func(r *Record) {
		r.EnableHwp = value
	}
}

// Patch applies set to every record that follows marker in buf. All records
// are bounds checked first: on error buf is left untouched.
func Patch(buf []byte, marker []byte, set func(*Record)) ([]Change, error) {
	offsets := Find(buf, marker)
	for _, m := range offsets {
		if err := checkBounds(buf, m); err != nil {
			return nil, err
		}
	}

	changes := make([]Change, 0, len(offsets))
	for _, m := range offsets {
		r, err := Decode(buf, m)
		if err != nil {
			return nil, err
		}

		c := Change{
			Offset: m,
			Before: r,
		}
		set(&r)
		c.After = r

		if err := r.Encode(buf, m); err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}

	return changes, nil
}
