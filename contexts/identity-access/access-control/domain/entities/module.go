package entities

// Module identifies one protected administrative area. The set is closed:
// adding an area means extending this enum and the evaluator's rule table,
// never inferring modules dynamically.
type Module string

const (
	ModuleProducts   Module = "products"
	ModuleCategories Module = "categories"
	ModuleInventory  Module = "inventory"
	ModuleOrders     Module = "orders"
	ModuleUsers      Module = "users"
	ModuleTax        Module = "tax"
)

// Modules returns the closed set of protected modules in stable order.
func Modules() []Module {
	return []Module{
		ModuleProducts,
		ModuleCategories,
		ModuleInventory,
		ModuleOrders,
		ModuleUsers,
		ModuleTax,
	}
}

// IsKnown reports whether the module belongs to the closed enum.
func (m Module) IsKnown() bool {
	switch m {
	case ModuleProducts, ModuleCategories, ModuleInventory, ModuleOrders, ModuleUsers, ModuleTax:
		return true
	default:
		return false
	}
}

// GrantKey is the permission-map key this module's grant is read from.
// Tax has no independent grant and deliberately reuses the products key;
// changing that would silently alter who can edit tax rules.
func (m Module) GrantKey() Module {
	if m == ModuleTax {
		return ModuleProducts
	}
	return m
}
