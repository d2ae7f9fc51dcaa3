// SPDX-License-Identifier: MIT

// Package codec persists a single matrix in a flat binary layout.
//
//	[u32 name_length][name][u32 rows][u32 cols][rows*cols u32][0xFF]
//
// Integers use the host byte order. There is no magic number, version tag or
// checksum; files are trusted local data. Encode/Decode work on byte slices,
// Save/Load bind them to a path and report failures as *IOError with a
// coarse Kind (permission, in use, bad descriptor, exists, not found,
// truncated) for diagnostics.
package codec
