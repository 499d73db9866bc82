/*
Package domain contains the core vocabulary shared by the compile and merge paths.

It is kept free of I/O: values here describe what is requested (layouts,
compile options) and how failures are categorised, never how files or
processes are accessed.

# Key Entities

  - Layout: The tag telling a downstream consumer how to interpret a merged document.
  - CompileOptions: The switches handed to the external compiler toolchain.
  - Error categories: Sentinel errors (ErrUsage, ErrCompilation, ...) and Classify.
*/
package domain
