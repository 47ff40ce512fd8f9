package mathutil

import "github.com/chewxy/math32"

// Reflect mirrors v about the surface normal n. n is expected to be unit length.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n using Snell's law, where
// niOverNt is the ratio of refractive indices (incident over transmitted).
// It returns false on total internal reflection; the returned vector is then
// the zero value and must not be used.
func Refract(v, n Vec3, niOverNt float32) (Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return Vec3{}, false
	}
	refracted := uv.Sub(n.Scale(dt)).Scale(niOverNt).Sub(n.Scale(math32.Sqrt(discriminant)))
	return refracted, true
}

// Schlick approximates Fresnel reflectance for the given cosine of the
// incidence angle and refractive index.
func Schlick(cosine, refIdx float32) float32 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
