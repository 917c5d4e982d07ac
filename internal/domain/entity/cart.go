package entity

// CartItem is one entry in a patron's cart. It also doubles as the line-item
// shape embedded in orders, matching the wire format the storefront sends.
type CartItem struct {
	// ID is a server-assigned random string ("_" + 9 base36 chars), not a
	// database-level id.
	ID       string
	ItemName string
	Price    float64
	Quantity int
	Notes    string
	// StoreID names the vendor the item belongs to ("<ownerHex>-<digits>").
	StoreID string
	// FoodID references the catalog item's id inside that vendor's store.
	// Empty when the catalog item could not be resolved at add time.
	FoodID string
}

// Subtotal returns price times quantity for this entry.
func (ci CartItem) Subtotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// PartitionCartByVendor groups cart entries by the owning vendor's hex id,
// derived from each entry's composite store id. Entries whose store id has no
// valid owner prefix are skipped; checkout validates them separately.
// The returned order slice preserves first-appearance order of vendors so a
// checkout produces deterministic per-vendor orders.
func PartitionCartByVendor(cart []CartItem) (map[string][]CartItem, []string) {
	partitions := make(map[string][]CartItem)
	var vendorOrder []string

	for _, item := range cart {
		ownerID, err := OwnerIDFromStoreID(item.StoreID)
		if err != nil {
			continue
		}
		key := ownerID.Hex()
		if _, seen := partitions[key]; !seen {
			vendorOrder = append(vendorOrder, key)
		}
		partitions[key] = append(partitions[key], item)
	}

	return partitions, vendorOrder
}

// CartTotal sums price times quantity over the given entries.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}
