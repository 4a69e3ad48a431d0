// Package geomfile reads and writes shape-description files. The files are
// HCL: material, solid and volume blocks whose numeric attributes may
// reference named dimension tokens. Tokens are bound through an
// hcl.EvalContext, so substitution happens on the parsed syntax tree — a
// token is a whole variable, never a substring — and a token referenced by
// the file but not supplied by the caller is a SubstitutionError.
package geomfile
