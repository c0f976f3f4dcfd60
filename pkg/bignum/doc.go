// Package bignum is the multi-precision integer collaborator described in
// the core's external-interfaces section: a narrow, deliberately small
// surface over an arbitrary-precision integer library, so the rest of the
// module can be written against an interface rather than math/big directly.
package bignum
