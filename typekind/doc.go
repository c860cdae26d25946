// Package typekind is the type registry shared by the sort, search, and
// shuffle engines.
//
// A Kind is resolved once at the API boundary from a textual identifier
// (e.g. "i32", "f64", "cstr") and carries everything the engines need to
// operate on raw element buffers: the fixed byte width of an element and,
// for kinds with a defined total order, an ascending three-way comparator.
//
// # Supported Identifiers
//
//	Signed integers    i8, i16, i32, i64
//	Unsigned integers  u8, u16, u32, u64
//	Floating point     f32, f64
//	Text               cstr, char
//	Boolean            bool
//	Native width       size
//	Integer aliases    hex, oct, bin, datetime, duration (width only)
//	Reserved           any, null (no support)
//
// Resolution is a pure function of the identifier: unknown identifiers map
// to Invalid, which reports width 0 and a nil comparator. Nothing in this
// package fails any other way.
package typekind
