// Package huffcodec implements a matched Huffman encoder and decoder for
// arbitrary byte streams.
//
// A compressed stream consists of a fixed-size Header, a post-order dump of
// the Huffman tree, and the LSB-first packed codes for each input byte.  The
// decoder needs nothing besides the stream itself to reconstruct the input.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffcodec
