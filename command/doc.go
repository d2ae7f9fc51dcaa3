// SPDX-License-Identifier: MIT

// Package command turns input lines into matrix operations.
//
// A Parser splits one line into a Command (a bounded token list). A
// Dispatcher maps the first token to a registered verb, checks the exact
// argument count and runs the handler against a registry.Registry. Handlers
// print user-facing results and diagnostics to the Dispatcher's writer and
// return an error; a failed command never ends the session.
//
// Built-in verbs:
//
//	display <name>
//	create <name> <rows> <cols>
//	add <name1> <name2> <out>
//	duplicate <name> <out>
//	equal <name1> <name2>
//	shift <name> <l|r> <amount>
//	read <path>
//	write <name>
//	random <name> <start> <end>
//	list
//	help
//	exit
package command
