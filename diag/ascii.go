package diag

import "github.com/aie-routing/routectl/routing"

// ASCIIGrid renders the ASCII grid view of the path from src to dst,
// grounded on _XAie_drawRoute/XAie_RoutesReveal.
func ASCIIGrid(inst *routing.Instance, src, dst routing.TileLoc) (string, error) {
	return inst.RoutesReveal(src, dst)
}
