// Package soya binds command line arguments to typed Go values.
//
// The type of each field decides how its option is declared and how
// repeated occurrences accumulate: scalars keep the last occurrence,
// slices keep every occurrence in order, pointers are optional, and
// infer.Result keeps conversion failures as data. Struct tags refine the
// declaration with names, aliases, positions and help text.
//
// The building blocks are usable on their own: core holds the option
// records and the parser, infer derives configurations from types and
// folds occurrences into fields, derive binds whole structs by reflection.
package soya

//go:generate gomarkdoc ./ -o docs/soya.md
