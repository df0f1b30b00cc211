// Package registry maps command names and their shortcut aliases to
// clipboard transformations. The table is built once at startup and then
// only read; names and aliases share a single namespace.
package registry
