// Package driver dispatches a single HDA* search to the message-passing
// or shared-memory engine based on hda.Options.Variant. It exists solely
// to keep hda (the shared contract) free of an import on either variant
// package, since both variants already import hda for its shared types.
package driver
