// Package decl loads flag-table declarations from YAML documents.
//
// A declaration names the storage kind and lists the flag entries in
// order. Each entry's bits are an expression: |-joined terms, where a
// term is either an integer literal (0x hex, 0b binary, 0o octal or
// decimal) or the name of a previously declared entry. Entries without
// a name are anonymous. For example:
//
//	storage: uint32
//	flags:
//	  - name: READ
//	    bits: 0x1
//	  - name: WRITE
//	    bits: 0x2
//	  - name: RW
//	    bits: READ | WRITE
//	  - bits: 0x80
//
// Load and Parse produce a storage-agnostic Document; Build resolves
// the expressions and binds the table to a concrete storage type,
// checking that it matches the declared kind.
package decl
