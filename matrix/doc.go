// SPDX-License-Identifier: MIT

// Package matrix provides named, fixed-shape matrices of uint32 values and the
// small set of operations the shell exposes over them.
//
// The matrix package provides:
//
//   - Matrix: a row-major uint32 buffer with a name, an explicit lifecycle
//     (New allocates, Destroy releases) and bounds-checked At/Set.
//   - Equal, Duplicate, Add: element-wise operations with up-front shape
//     validation; a rejected call never touches storage.
//   - Shift: in-place bitwise shift left or right.
//   - Randomize: fill with rng.Uint32()%end + start from a seeded stream.
//   - Format/String: the console dump used by the display command.
//
// All arithmetic is uint32 and wraps on overflow. Errors are the sentinels in
// errors.go; match them with errors.Is.
package matrix
