// Package report renders rank mappings for human consumption.
//
// Two renderings are provided:
//
//   - Text: the classic console layout — a title line, then one
//     "  page: 0.1234" line per page in lexicographic order, ranks fixed
//     to four decimals.
//   - Markdown: a GitHub-flavored document with one table per result,
//     suitable for pasting into issues or docs.
//
// Both renderings are deterministic: pages always appear in lexicographic
// order, so identical inputs produce identical output bytes.
//
// Presentation only — nothing here alters the rank mappings it is given.
package report
