package entity

// ComplimentGroup is a batch of promotion codes a vendor issues in one go.
// A group owns its codes; a code never exists outside a group on the vendor
// side. Recipients get flat Compliment copies instead.
type ComplimentGroup struct {
	GroupID   string
	Title     string
	Amount    float64 // Discount value of each code in the group.
	StartDate string
	StartTime string
	EndTime   string
	Codes     []ComplimentCode
}

// ComplimentCode is one redeemable code inside a group.
type ComplimentCode struct {
	ID   string
	Code string
	Sent bool
}

// FirstUnsent returns the index of the first code not yet distributed,
// or -1 when the group is exhausted.
func (g *ComplimentGroup) FirstUnsent() int {
	for i := range g.Codes {
		if !g.Codes[i].Sent {
			return i
		}
	}

	return -1
}

// Compliment is a promotion code as received by a follower: a flat copy of
// the vendor's code enriched with delivery metadata.
type Compliment struct {
	ID          string
	Code        string
	Title       string
	Amount      float64
	StoreID     string
	Recipient   string // Follower email the code was sent to.
	Sent        bool
	KitchenSent bool // Whether the code shows up in the kitchen view.
}
