// SPDX-License-Identifier: MIT
// Package: edmindex/ranges

// Package ranges tokenizes the multi-argument strings used to describe row
// ranges and sizes ("1 100", "1,50 60,100", "10\t100\t10") and groups them
// into 1-based, inclusive (start, stop) segments.
//
// Tokens are separated by any run of space, tab, comma or newline. Token
// order is significant: pairs are formed by consecutive grouping
// (tok0,tok1), (tok2,tok3), …
package ranges
