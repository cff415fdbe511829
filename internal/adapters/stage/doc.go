// Package stage implements the individual text transformation stages of the
// comment cleaning pipeline. Each stage is a pure, total string transform;
// ordering is owned by the pipeline package, not by the stages themselves.
//
// Contraction expansion must run before symbol stripping and stopword
// removal: it splits a contracted negator ("didn't") into tokens that the
// negator table can protect. Markup and emoji handling run before lowercasing
// and symbol stripping so they can rely on original casing and Unicode
// properties.
package stage
