package textgrid

import "strings"

// Baseline declares a column whose values line up on the first occurrence of
// sep. The text before sep is right aligned and the remainder is left
// aligned, so every row's separator lands in the same position:
//
//	textgrid.Baseline(f, "b", ".", func(r Row) string { return r.B })
//
//	  b    |
//	-------|
//	 1.02  |
//	  .1   |
//	 3.45  |
func Baseline[T any](f *Formatter[T], header any, sep string, get func(T) string) {
	Group(f, header, func(f *Formatter[T]) {
		Content(f, func(t T) any {
			s := get(t)
			if i := strings.Index(s, sep); i >= 0 {
				s = s[:i]
			}
			return NewCell(s).Right()
		})
		Content(f, func(t T) any {
			s := get(t)
			i := strings.Index(s, sep)
			if i < 0 {
				return nil
			}
			return NewCell(s[i:]).Left()
		})
	})
}

// Floats declares leaves that align numeric strings on the decimal point and
// the exponent marker. The integer part is stretch flagged, so under a
// spanning header the extra width pads the left edge rather than the right:
//
//	 123.45     |
//	   9.5 e -1 |
func Floats[T any](f *Formatter[T], get func(T) string) {
	split := func(t T) (s string, dot, e int) {
		s = get(t)
		e = strings.LastIndexAny(s, "eE")
		if e < 0 {
			e = len(s)
		}
		dot = strings.Index(s, ".")
		if dot < 0 || dot > e {
			dot = e
		}
		return s, dot, e
	}
	Content(f.Stretch(), func(t T) any {
		s, dot, _ := split(t)
		return NewCell(s[:dot]).Right()
	})
	Content(f, func(t T) any {
		s, dot, e := split(t)
		if dot == e {
			return nil
		}
		return NewCell(s[dot:e]).Left()
	})
	Content(f, func(t T) any {
		s, _, e := split(t)
		if e == len(s) {
			return nil
		}
		return NewCell(" " + s[e:e+1] + " ").Center()
	})
	Content(f, func(t T) any {
		s, _, e := split(t)
		if e >= len(s) {
			return nil
		}
		return NewCell(s[e+1:]).Right()
	})
}

// FloatColumn declares a header over [Floats] leaves.
func FloatColumn[T any](f *Formatter[T], header any, get func(T) string) {
	Group(f, header, func(f *Formatter[T]) {
		Floats(f, get)
	})
}
