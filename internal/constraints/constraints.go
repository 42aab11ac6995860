// Package constraints provides type constraints shared by the header packages.
package constraints

// Byteseq is a header name or value given either as a string or as raw bytes.
type Byteseq interface {
	~string | ~[]byte
}
