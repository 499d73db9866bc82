/*
Package ports defines the driven ports (interfaces) of the compile path.

# Key Interfaces

  - Compiler: Turns a compile target into the serialized program representation.
    The process adapter runs the real toolchain; the memory adapter serves
    precompiled outputs.
*/
package ports
