package driver

import (
	"fmt"

	"github.com/katalvlaran/hdastar/graph"
	"github.com/katalvlaran/hdastar/hda"
	"github.com/katalvlaran/hdastar/hda/messagepassing"
	"github.com/katalvlaran/hdastar/hda/sharedmemory"
)

// Search runs a single HDA* search from source to dest over g, using the
// engine variant named by opts.Variant.
func Search(g *graph.Graph, source, dest hda.NodeId, opts ...hda.Option) (hda.Result, error) {
	cfg := hda.Resolve(opts...)

	switch cfg.Variant {
	case hda.VariantMessagePassing:
		return messagepassing.Run(g, source, dest, cfg)
	case hda.VariantSharedMemory:
		return sharedmemory.Run(g, source, dest, cfg)
	default:
		return hda.Result{}, fmt.Errorf("driver: unknown variant %d", cfg.Variant)
	}
}
