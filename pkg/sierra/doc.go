/*
Package sierra holds the compiled program representation produced by the external compiler.

A Program is a pass-through payload: it is validated by structural decoding
against the program schema (program.openapi.yaml) and then re-emitted exactly
as received, modulo insignificant whitespace. Nothing in this module reads or
rebuilds its fields.
*/
package sierra
