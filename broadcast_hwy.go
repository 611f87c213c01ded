package prescan

import (
	"github.com/ajroetker/go-highway/hwy"
)

// addConstBroadcast adds a constant running offset to every element of a
// segment in place: seg[i] = offset + seg[i]. This is Stage 3 of the
// segmented sum scan, which is a pure streaming add and vectorizes
// cleanly.
func addConstBroadcast[T hwy.Floats](offset T, seg []T) {
	size := len(seg)
	vOff := hwy.Set(offset)

	hwy.ProcessWithTail[T](size,
		func(off int) {
			v := hwy.Load(seg[off:])
			hwy.Store(hwy.Add(vOff, v), seg[off:])
		},
		func(off, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, seg[off:])
			hwy.MaskStore(mask, hwy.Add(vOff, v), seg[off:])
		},
	)
}
