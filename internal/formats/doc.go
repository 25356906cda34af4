// Package formats holds the pure helpers that work on a probed format list:
// best-audio selection plus the split, recommendation, filter and sort used
// by the advanced window's tables.
package formats
