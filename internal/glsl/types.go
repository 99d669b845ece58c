package glsl

var builtinTypes = func() map[string]bool {
	types := map[string]bool{
		"void": true, "bool": true, "int": true, "uint": true, "float": true, "double": true,
	}
	for _, n := range []string{"2", "3", "4"} {
		for _, p := range []string{"", "i", "u", "b", "d"} {
			types[p+"vec"+n] = true
		}
		types["mat"+n] = true
		types["dmat"+n] = true
		for _, m := range []string{"2", "3", "4"} {
			types["mat"+n+"x"+m] = true
			types["dmat"+n+"x"+m] = true
		}
	}
	samplers := []string{
		"1D", "2D", "3D", "Cube", "1DArray", "2DArray", "CubeArray",
		"2DRect", "Buffer", "2DMS", "2DMSArray",
	}
	for _, s := range samplers {
		types["sampler"+s] = true
		types["isampler"+s] = true
		types["usampler"+s] = true
	}
	for _, s := range []string{"1DShadow", "2DShadow", "CubeShadow", "1DArrayShadow", "2DArrayShadow", "2DRectShadow", "CubeArrayShadow"} {
		types["sampler"+s] = true
	}
	return types
}()

var qualifiers = map[string]bool{
	"in": true, "out": true, "inout": true, "uniform": true, "const": true,
	"flat": true, "smooth": true, "noperspective": true, "centroid": true,
	"invariant": true, "highp": true, "mediump": true, "lowp": true,
}

var precisions = map[string]bool{"highp": true, "mediump": true, "lowp": true}

var removedQualifiers = map[string]bool{"attribute": true, "varying": true}

var supportedVersions = map[int]bool{
	100: true, 110: true, 120: true, 130: true, 140: true, 150: true,
	300: true, 310: true, 320: true,
	330: true, 400: true, 410: true, 420: true, 430: true, 440: true, 450: true, 460: true,
}

// BuiltinType reports whether name is a built-in GLSL type rather than a
// user struct.
func BuiltinType(name string) bool {
	return builtinTypes[name] && name != "void"
}
