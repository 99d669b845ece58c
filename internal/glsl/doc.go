// Package glsl is a small GLSL front end. It understands the subset of the
// language needed to check shaders for syntax errors and to extract their
// global interface (inputs, outputs, uniforms and functions). It does not
// type check function bodies.
package glsl
