// Package catalog loads operation descriptors from YAML documents and
// watches them for changes.
//
// A Source yields the full descriptor set on Load and, through Watch, emits
// an Event with the freshly reloaded set whenever the underlying files
// change. FileSource reads a single YAML file or a directory of them
// (multi-document files are supported); MemorySource serves a fixed set for
// tests and embedding.
package catalog
