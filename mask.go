// Package pixelsprite generates pixel-art sprites from structural masks.
package pixelsprite

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"
)

// Mask codes.
const (
	Border       = -1 // always border
	Empty        = 0  // always empty
	BodyOrEmpty  = 1  // body or empty, 50/50
	BorderOrBody = 2  // border or body, 50/50
)

// Body is the resolved value of a filled cell. It shares the value of
// BodyOrEmpty; after resolution the ambiguous meaning no longer applies.
const Body = 1

// Mask is an immutable structural template.
type Mask struct {
	w, h    int
	data    []int // row-major, len = w*h
	mirrorX bool
	mirrorY bool
}

// FromArray builds a mask from rows of codes indexed [row][col].
// The grid is copied.
func FromArray(grid [][]int, mirrorX, mirrorY bool) (*Mask, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, &ParseError{Line: 1, Msg: "empty mask"}
	}
	w, h := len(grid[0]), len(grid)
	m := &Mask{
		w:       w,
		h:       h,
		data:    make([]int, 0, w*h),
		mirrorX: mirrorX,
		mirrorY: mirrorY,
	}
	for y, row := range grid {
		if len(row) != w {
			return nil, &ParseError{
				Line: y + 1,
				Msg:  fmt.Sprintf("row has %d cells, want %d", len(row), w),
			}
		}
		for x, v := range row {
			if !validCode(v) {
				return nil, &ParseError{Line: y + 1, Field: x + 1, Msg: fmt.Sprintf("invalid code %d", v)}
			}
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// FromSource parses comma-separated integer rows, one row per line.
// Blank lines are ignored.
func FromSource(r io.Reader, mirrorX, mirrorY bool) (*Mask, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, &ParseError{Line: line, Field: i + 1, Msg: fmt.Sprintf("not an integer: %q", f), Err: err}
			}
			if !validCode(v) {
				return nil, &ParseError{Line: line, Field: i + 1, Msg: fmt.Sprintf("invalid code %d", v)}
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{
				Line: line,
				Msg:  fmt.Sprintf("row has %d cells, want %d", len(row), len(rows[0])),
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Line: line, Msg: "empty mask"}
	}
	return FromArray(rows, mirrorX, mirrorY)
}

func validCode(v int) bool {
	return v >= Border && v <= BorderOrBody
}

func (m *Mask) Width() int    { return m.w }
func (m *Mask) Height() int   { return m.h }
func (m *Mask) MirrorX() bool { return m.mirrorX }
func (m *Mask) MirrorY() bool { return m.mirrorY }

// At returns the code at column x, row y.
func (m *Mask) At(x, y int) int {
	return m.data[labelOffset(m.w, x, y)]
}

// Size returns the mask dimensions.
func (m *Mask) Size() image.Point {
	return image.Pt(m.w, m.h)
}

// OutputSize returns the working grid dimensions, doubled on mirrored axes.
func (m *Mask) OutputSize() image.Point {
	w, h := m.w, m.h
	if m.mirrorX {
		w *= 2
	}
	if m.mirrorY {
		h *= 2
	}
	return image.Pt(w, h)
}
