// Package types contains the protocol value types shared by the header and message packages.
package types

//go:generate go tool errtrace -w .
