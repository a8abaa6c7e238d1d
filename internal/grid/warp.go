package grid

import (
	"fmt"
	"image"
	"math"
)

// Quad is a quadrilateral ordered top-left, top-right, bottom-right,
// bottom-left.
type Quad [4]image.Point

// OrderCorners arranges four arbitrary points into Quad order.
//
// The top-left corner minimizes x+y and the bottom-right maximizes it;
// the top-right maximizes x-y and the bottom-left minimizes it. This
// holds for any quadrilateral that is not rotated close to 45 degrees,
// which screenshots never are.
func OrderCorners(pts [4]image.Point) Quad {
	var q Quad
	q[0], q[1], q[2], q[3] = pts[0], pts[0], pts[0], pts[0]
	for _, p := range pts {
		if p.X+p.Y < q[0].X+q[0].Y {
			q[0] = p
		}
		if p.X-p.Y > q[1].X-q[1].Y {
			q[1] = p
		}
		if p.X+p.Y > q[2].X+q[2].Y {
			q[2] = p
		}
		if p.X-p.Y < q[3].X-q[3].Y {
			q[3] = p
		}
	}
	return q
}

// Side returns the length of the quad's longest edge, rounded up.
// The rectified square uses this so no measured edge is downsampled.
func (q Quad) Side() int {
	side := 0.0
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		dx := float64(q[j].X - q[i].X)
		dy := float64(q[j].Y - q[i].Y)
		side = math.Max(side, math.Hypot(dx, dy))
	}
	return int(math.Ceil(side))
}

// Rectify maps the quadrilateral region of img onto an axis-aligned
// square whose side equals the quad's longest edge.
//
// A homography from destination to source coordinates is computed from
// the four corner correspondences, then every destination pixel is
// inverse-mapped and bilinearly sampled. Destination pixels that map
// outside the source image are left black.
func Rectify(img image.Image, q Quad) (*image.RGBA, error) {
	side := q.Side()
	if side < 2 {
		return nil, fmt.Errorf("degenerate quad %v", q)
	}

	s := float64(side - 1)
	dst := [4][2]float64{{0, 0}, {s, 0}, {s, s}, {0, s}}
	src := [4][2]float64{}
	for i, p := range q {
		src[i] = [2]float64{float64(p.X), float64(p.Y)}
	}

	h, err := homography(dst, src)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			sx, sy := h.apply(float64(x), float64(y))
			r, g, b, a, ok := sampleBilinear(img, sx, sy)
			if !ok {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = a
		}
	}
	return out, nil
}

// hmatrix is a 3x3 projective transform with h22 fixed to 1.
type hmatrix [8]float64

func (h hmatrix) apply(x, y float64) (float64, float64) {
	w := h[6]*x + h[7]*y + 1
	return (h[0]*x + h[1]*y + h[2]) / w, (h[3]*x + h[4]*y + h[5]) / w
}

// homography solves for the transform taking each from[i] to to[i].
//
// The four correspondences give eight linear equations in the eight
// unknown matrix entries; they are solved directly by Gaussian
// elimination with partial pivoting.
func homography(from, to [4][2]float64) (hmatrix, error) {
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := from[i][0], from[i][1]
		u, v := to[i][0], to[i][1]
		a[2*i] = [9]float64{x, y, 1, 0, 0, 0, -x * u, -y * u, u}
		a[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -x * v, -y * v, v}
	}

	for col := 0; col < 8; col++ {
		pivot := col
		for row := col + 1; row < 8; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return hmatrix{}, fmt.Errorf("singular corner configuration")
		}
		a[col], a[pivot] = a[pivot], a[col]

		for row := 0; row < 8; row++ {
			if row == col {
				continue
			}
			f := a[row][col] / a[col][col]
			for k := col; k < 9; k++ {
				a[row][k] -= f * a[col][k]
			}
		}
	}

	var h hmatrix
	for i := 0; i < 8; i++ {
		h[i] = a[i][8] / a[i][i]
	}
	return h, nil
}

// sampleBilinear interpolates the four pixels around (x, y). Returns
// ok=false when the sample point lies outside the image.
func sampleBilinear(img image.Image, x, y float64) (r, g, b, a uint8, ok bool) {
	bounds := img.Bounds()
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	if x0 < bounds.Min.X || y0 < bounds.Min.Y || x0+1 >= bounds.Max.X || y0+1 >= bounds.Max.Y {
		// Clamp exact-edge samples, reject the rest.
		if x0 < bounds.Min.X-1 || y0 < bounds.Min.Y-1 || x0 > bounds.Max.X-1 || y0 > bounds.Max.Y-1 {
			return 0, 0, 0, 0, false
		}
		x0 = clamp(x0, bounds.Min.X, bounds.Max.X-2)
		y0 = clamp(y0, bounds.Min.Y, bounds.Max.Y-2)
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	blend := func(c00, c10, c01, c11 uint32) uint8 {
		top := float64(c00)*(1-fx) + float64(c10)*fx
		bot := float64(c01)*(1-fx) + float64(c11)*fx
		return uint8(uint32(top*(1-fy)+bot*fy) >> 8)
	}

	r00, g00, b00, a00 := img.At(x0, y0).RGBA()
	r10, g10, b10, a10 := img.At(x0+1, y0).RGBA()
	r01, g01, b01, a01 := img.At(x0, y0+1).RGBA()
	r11, g11, b11, a11 := img.At(x0+1, y0+1).RGBA()

	return blend(r00, r10, r01, r11),
		blend(g00, g10, g01, g11),
		blend(b00, b10, b01, b11),
		blend(a00, a10, a01, a11),
		true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
