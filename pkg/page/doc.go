/*
Package page provides a reference-counted handle to a physical memory page.

A Handle starts with a count of one. Retain adds a reference and Release drops one;
when the last reference goes away the page is handed back to its FreeList if it was
created as returnable, otherwise the handle is simply destroyed. Using a handle whose
count already reached zero is a programming error and panics with
domain.ErrInvariantViolation.
*/
package page
