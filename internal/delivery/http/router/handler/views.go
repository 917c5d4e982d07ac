package handler

import (
	"flyingpot/internal/domain/entity"
)

// View DTOs map domain entities onto the camelCase wire format the
// storefront expects. The password hash never crosses this boundary.

// UserView is the outward shape of an account.
type UserView struct {
	ID               string                `json:"_id"`
	Name             string                `json:"name"`
	Username         string                `json:"username"`
	Email            string                `json:"email"`
	Kind             string                `json:"kind"`
	Verified         bool                  `json:"verified"`
	Store            *StoreView            `json:"store,omitempty"`
	Cart             []CartItemView        `json:"cart"`
	Orders           []OrderView           `json:"orders"`
	PatronOrders     []OrderView           `json:"patronOrders"`
	ComplimentGroups []ComplimentGroupView `json:"complimentGroups"`
	Compliments      []ComplimentView      `json:"compliments"`
}

// StoreView is the outward shape of a vendor store.
type StoreView struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StoreID     string     `json:"storeId"`
	Items       []ItemView `json:"items"`
}

// ItemView is one catalog entry.
type ItemView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

// CartItemView is one cart entry or order line item.
type CartItemView struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	StoreID  string  `json:"storeId"`
	FoodID   string  `json:"foodId"`
}

// OrderView is one order on either the vendor or the patron view.
type OrderView struct {
	Mainkey     string         `json:"mainkey"`
	OrderNumber int            `json:"orderNumber"`
	Items       []CartItemView `json:"items"`
	Timestamp   string         `json:"timestamp"`
	CCName      string         `json:"ccName"`
	CartTotal   float64        `json:"cartTotal"`
	Status      string         `json:"status"`
	PatronID    string         `json:"patronId,omitempty"`
	Tip         float64        `json:"tip"`
}

// ComplimentGroupView is one issued promotion batch.
type ComplimentGroupView struct {
	GroupID   string               `json:"groupId"`
	Title     string               `json:"title"`
	Amount    float64              `json:"amount"`
	StartDate string               `json:"startDate"`
	StartTime string               `json:"startTime"`
	EndTime   string               `json:"endTime"`
	Codes     []ComplimentCodeView `json:"codes"`
}

// ComplimentCodeView is one code inside a group.
type ComplimentCodeView struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Sent bool   `json:"sent"`
}

// ComplimentView is one received promotion code.
type ComplimentView struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	StoreID     string  `json:"storeId"`
	Recipient   string  `json:"recipient"`
	Sent        bool    `json:"sent"`
	KitchenSent bool    `json:"kitchenSent"`
}

// StoreListingView is the flattened store+owner browsing projection.
type StoreListingView struct {
	OwnerID    string    `json:"ownerId"`
	OwnerName  string    `json:"ownerName"`
	OwnerEmail string    `json:"ownerEmail"`
	Store      StoreView `json:"store"`
}

func userView(u *entity.User) UserView {
	view := UserView{
		ID:               u.ID.Hex(),
		Name:             u.Name,
		Username:         u.Username,
		Email:            u.Email,
		Kind:             u.Kind.String(),
		Verified:         u.Verified,
		Cart:             cartItemViews(u.Cart),
		Orders:           orderViews(u.Orders),
		PatronOrders:     orderViews(u.PatronOrders),
		ComplimentGroups: groupViews(u.ComplimentGroups),
		Compliments:      complimentViews(u.Compliments),
	}
	if u.Store != nil {
		sv := storeView(*u.Store)
		view.Store = &sv
	}

	return view
}

func storeView(s entity.Store) StoreView {
	items := make([]ItemView, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, ItemView(it))
	}

	return StoreView{
		Name:        s.Name,
		Description: s.Description,
		Location:    s.Location,
		StoreID:     s.StoreID,
		Items:       items,
	}
}

func storeListingView(l *entity.StoreListing) StoreListingView {
	return StoreListingView{
		OwnerID:    l.OwnerID.Hex(),
		OwnerName:  l.OwnerName,
		OwnerEmail: l.OwnerEmail,
		Store:      storeView(l.Store),
	}
}

func cartItemViews(items []entity.CartItem) []CartItemView {
	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, CartItemView(item))
	}

	return views
}

func orderView(o entity.Order) OrderView {
	view := OrderView{
		Mainkey:     o.Mainkey,
		OrderNumber: o.OrderNumber,
		Items:       cartItemViews(o.Items),
		Timestamp:   o.Timestamp,
		CCName:      o.CCName,
		CartTotal:   o.CartTotal,
		Status:      o.Status.String(),
		Tip:         o.Tip,
	}
	if !o.PatronID.IsZero() {
		view.PatronID = o.PatronID.Hex()
	}

	return view
}

func orderViews(orders []entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o))
	}

	return views
}

func groupViews(groups []entity.ComplimentGroup) []ComplimentGroupView {
	views := make([]ComplimentGroupView, 0, len(groups))
	for _, g := range groups {
		codes := make([]ComplimentCodeView, 0, len(g.Codes))
		for _, code := range g.Codes {
			codes = append(codes, ComplimentCodeView(code))
		}
		views = append(views, ComplimentGroupView{
			GroupID:   g.GroupID,
			Title:     g.Title,
			Amount:    g.Amount,
			StartDate: g.StartDate,
			StartTime: g.StartTime,
			EndTime:   g.EndTime,
			Codes:     codes,
		})
	}

	return views
}

func complimentViews(compliments []entity.Compliment) []ComplimentView {
	views := make([]ComplimentView, 0, len(compliments))
	for _, c := range compliments {
		views = append(views, ComplimentView(c))
	}

	return views
}
