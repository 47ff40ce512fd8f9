package main

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/batch"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/mathutil"
	"github.com/murmur-wheel/ray-tracing-in-one-weekend/internal/raster"
)

// view is the direction every pattern looks along: into the screen.
var view = mathutil.Vec3{0, 0, -1}

var (
	skyTop    = mathutil.Vec3{0.5, 0.7, 1.0}
	skyBottom = mathutil.Vec3{1, 1, 1}
)

// card maps pixels to normalized screen coordinates in [-1, 1], y up.
type card struct {
	cols, rows int
	jitter     bool
	tilt       mathutil.Mat3
}

func (c card) screen(col, row int, src mathutil.Source) (x, y float32) {
	jx, jy := float32(0.5), float32(0.5)
	if c.jitter {
		jx, jy = src.Float32(), src.Float32()
	}
	x = 2*(float32(col)+jx)/float32(c.cols) - 1
	y = 1 - 2*(float32(row)+jy)/float32(c.rows)
	return x, y
}

// hemisphere returns the outward normal of a unit hemisphere facing the
// viewer at (x, y), or false outside its silhouette.
func (c card) hemisphere(x, y float32) (mathutil.Vec3, bool) {
	r2 := x*x + y*y
	if r2 >= 1 {
		return mathutil.Vec3{}, false
	}
	return c.tilt.MulVec3(mathutil.Vec3{x, y, math32.Sqrt(1 - r2)}), true
}

func sky(dir mathutil.Vec3) mathutil.Vec3 {
	t := 0.5 * (dir.Normalize().Y() + 1)
	return skyBottom.Lerp(skyTop, t)
}

func normals(c card) batch.Shader {
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		n, ok := c.hemisphere(c.screen(col, row, src))
		if !ok {
			return mathutil.Vec3{}
		}
		return n.AddScalar(1).Scale(0.5)
	}
}

// fresnel shows Schlick reflectance in red, the refracted ray's depth in blue
// and, in green, where light leaving the material escapes rather than
// reflecting totally.
func fresnel(c card, refIdx float32) batch.Shader {
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		n, ok := c.hemisphere(c.screen(col, row, src))
		if !ok {
			return mathutil.Vec3{}
		}
		cosine := -view.Dot(n)
		var out mathutil.Vec3
		out[0] = mathutil.Schlick(math32.Abs(cosine), refIdx)
		// Leaving the material: the ray heads back toward the viewer and
		// meets the inward-facing normal.
		if exit, ok := mathutil.Refract(view.Neg(), n.Neg(), refIdx); ok {
			out[1] = 0.25 + 0.75*math32.Abs(exit.Z())
		}
		if enter, ok := mathutil.Refract(view, n, 1/refIdx); ok {
			out[2] = math32.Abs(enter.Z())
		}
		return out
	}
}

// diffuse lights the hemisphere with the sky through one bounce of a
// Lambertian-style scatter.
func diffuse(c card) batch.Shader {
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		x, y := c.screen(col, row, src)
		n, ok := c.hemisphere(x, y)
		if !ok {
			return sky(mathutil.Vec3{x, y, -1})
		}
		scattered := n.Add(mathutil.RandomInUnitSphere(src))
		return sky(scattered).Scale(0.5)
	}
}

func gradient(c card) batch.Shader {
	aspect := float32(c.cols) / float32(c.rows)
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		x, y := c.screen(col, row, src)
		r := c.tilt.MulRay(mathutil.NewRay(mathutil.Vec3{}, mathutil.Vec3{x * aspect, y, -1}))
		return sky(r.Direction)
	}
}

// envmap draws a mirrored hemisphere reflecting a lat-long environment image.
func envmap(c card, env *raster.Bitmap) batch.Shader {
	return func(col, row int, src mathutil.Source) mathutil.Vec3 {
		x, y := c.screen(col, row, src)
		var dir mathutil.Vec3
		if n, ok := c.hemisphere(x, y); ok {
			dir = mathutil.Reflect(view, n)
		} else {
			dir = mathutil.Vec3{x, y, -1}.Normalize()
		}
		u := 0.5 + math32.Atan2(dir.X(), -dir.Z())/(2*math32.Pi)
		v := math32.Acos(max(-1, min(1, dir.Y()))) / math32.Pi
		return env.Sample(u, v)
	}
}

func buildShader(pattern string, c card, refIdx float32, env *raster.Bitmap) (batch.Shader, error) {
	switch pattern {
	case "normals":
		return normals(c), nil
	case "fresnel":
		return fresnel(c, refIdx), nil
	case "sphere":
		return diffuse(c), nil
	case "gradient":
		return gradient(c), nil
	case "envmap":
		if env == nil {
			return nil, fmt.Errorf("envmap pattern needs an environment image")
		}
		return envmap(c, env), nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
}
