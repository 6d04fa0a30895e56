// Package dictfile reads and writes counted word-list files.
//
// A counted file is UTF-8 text whose first line is the decimal number of
// the lines that follow, one entry per line:
//
//	3
//	полетели_VERB
//	дом_NOUN
//	быстро_ADV
//
// Pure I/O: paths or readers in, plain Go values out. No analyzer or
// database dependencies.
package dictfile
