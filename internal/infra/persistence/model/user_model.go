// Package model contains the persistence representations of the domain
// entities, tagged for the document store. Mapping keeps the entities free
// of driver concerns.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// UserModel mirrors one document in the 'users' collection. Everything a
// user owns lives embedded in this single document.
type UserModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Kind         string             `bson:"kind"`
	Verified     bool               `bson:"verified"`

	Store            *StoreModel            `bson:"store,omitempty"`
	Cart             []CartItemModel        `bson:"cart,omitempty"`
	Orders           []OrderModel           `bson:"orders,omitempty"`
	PatronOrders     []OrderModel           `bson:"patronOrders,omitempty"`
	ComplimentGroups []ComplimentGroupModel `bson:"complimentGroups,omitempty"`
	Compliments      []ComplimentModel      `bson:"compliments,omitempty"`
}

// StoreModel mirrors the embedded vendor store.
type StoreModel struct {
	Name        string      `bson:"name"`
	Description string      `bson:"description"`
	Location    string      `bson:"location"`
	StoreID     string      `bson:"storeId"`
	Items       []ItemModel `bson:"items"`
}

// ItemModel mirrors one catalog entry inside a store.
type ItemModel struct {
	ID          string  `bson:"id"`
	Title       string  `bson:"title"`
	Price       float64 `bson:"price"`
	Quantity    int     `bson:"quantity"`
	Description string  `bson:"description"`
}

// CartItemModel mirrors one cart entry; the same shape is embedded in orders.
type CartItemModel struct {
	ID       string  `bson:"id"`
	ItemName string  `bson:"itemName"`
	Price    float64 `bson:"price"`
	Quantity int     `bson:"quantity"`
	Notes    string  `bson:"notes"`
	StoreID  string  `bson:"storeId"`
	FoodID   string  `bson:"foodId"`
}

// OrderModel mirrors one order in either the vendor or the patron view.
type OrderModel struct {
	Mainkey     string             `bson:"mainkey"`
	OrderNumber int                `bson:"orderNumber"`
	Items       []CartItemModel    `bson:"items"`
	Timestamp   string             `bson:"timestamp"`
	CCName      string             `bson:"ccName"`
	CartTotal   float64            `bson:"cartTotal"`
	Status      string             `bson:"status"`
	PatronID    primitive.ObjectID `bson:"patronId,omitempty"`
	Tip         float64            `bson:"tip"`
}

// ComplimentGroupModel mirrors one promotion code batch on the vendor side.
type ComplimentGroupModel struct {
	GroupID   string                `bson:"groupId"`
	Title     string                `bson:"title"`
	Amount    float64               `bson:"amount"`
	StartDate string                `bson:"startDate"`
	StartTime string                `bson:"startTime"`
	EndTime   string                `bson:"endTime"`
	Codes     []ComplimentCodeModel `bson:"codes"`
}

// ComplimentCodeModel mirrors one redeemable code inside a group.
type ComplimentCodeModel struct {
	ID   string `bson:"id"`
	Code string `bson:"code"`
	Sent bool   `bson:"sent"`
}

// ComplimentModel mirrors one received promotion copy on the follower side.
type ComplimentModel struct {
	ID          string  `bson:"id"`
	Code        string  `bson:"code"`
	Title       string  `bson:"title"`
	Amount      float64 `bson:"amount"`
	StoreID     string  `bson:"storeId"`
	Recipient   string  `bson:"recipient"`
	Sent        bool    `bson:"sent"`
	KitchenSent bool    `bson:"kitchenSent"`
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:               m.ID,
		Name:             m.Name,
		Username:         m.Username,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash,
		Kind:             entity.Role(m.Kind),
		Verified:         m.Verified,
		Store:            ToStoreDomain(m.Store),
		Cart:             ToCartDomain(m.Cart),
		Orders:           toOrdersDomain(m.Orders),
		PatronOrders:     toOrdersDomain(m.PatronOrders),
		ComplimentGroups: toGroupsDomain(m.ComplimentGroups),
		Compliments:      toComplimentsDomain(m.Compliments),
	}
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	if user == nil {
		return nil
	}

	return &UserModel{
		ID:               user.ID,
		Name:             user.Name,
		Username:         user.Username,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		Kind:             user.Kind.String(),
		Verified:         user.Verified,
		Store:            FromStoreDomain(user.Store),
		Cart:             FromCartDomain(user.Cart),
		Orders:           fromOrdersDomain(user.Orders),
		PatronOrders:     fromOrdersDomain(user.PatronOrders),
		ComplimentGroups: fromGroupsDomain(user.ComplimentGroups),
		Compliments:      fromComplimentsDomain(user.Compliments),
	}
}

// ToStoreDomain maps an embedded store model to its entity.
func ToStoreDomain(m *StoreModel) *entity.Store {
	if m == nil {
		return nil
	}

	items := make([]entity.Item, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entity.Item(it))
	}

	return &entity.Store{
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		StoreID:     m.StoreID,
		Items:       items,
	}
}

// FromStoreDomain maps a store entity to its persistence model.
func FromStoreDomain(store *entity.Store) *StoreModel {
	if store == nil {
		return nil
	}

	items := make([]ItemModel, 0, len(store.Items))
	for _, it := range store.Items {
		items = append(items, ItemModel(it))
	}

	return &StoreModel{
		Name:        store.Name,
		Description: store.Description,
		Location:    store.Location,
		StoreID:     store.StoreID,
		Items:       items,
	}
}

// ToCartDomain maps cart item models to entities.
func ToCartDomain(models []CartItemModel) []entity.CartItem {
	if models == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(models))
	for _, m := range models {
		items = append(items, entity.CartItem(m))
	}

	return items
}

// FromCartDomain maps cart item entities to models.
func FromCartDomain(items []entity.CartItem) []CartItemModel {
	if items == nil {
		return nil
	}

	models := make([]CartItemModel, 0, len(items))
	for _, it := range items {
		models = append(models, CartItemModel(it))
	}

	return models
}

// ToOrderDomain maps one order model to its entity.
func ToOrderDomain(m OrderModel) entity.Order {
	return entity.Order{
		Mainkey:     m.Mainkey,
		OrderNumber: m.OrderNumber,
		Items:       ToCartDomain(m.Items),
		Timestamp:   m.Timestamp,
		CCName:      m.CCName,
		CartTotal:   m.CartTotal,
		Status:      entity.OrderStatus(m.Status),
		PatronID:    m.PatronID,
		Tip:         m.Tip,
	}
}

// FromOrderDomain maps one order entity to its model.
func FromOrderDomain(order entity.Order) OrderModel {
	return OrderModel{
		Mainkey:     order.Mainkey,
		OrderNumber: order.OrderNumber,
		Items:       FromCartDomain(order.Items),
		Timestamp:   order.Timestamp,
		CCName:      order.CCName,
		CartTotal:   order.CartTotal,
		Status:      order.Status.String(),
		PatronID:    order.PatronID,
		Tip:         order.Tip,
	}
}

func toOrdersDomain(models []OrderModel) []entity.Order {
	if models == nil {
		return nil
	}

	orders := make([]entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, ToOrderDomain(m))
	}

	return orders
}

func fromOrdersDomain(orders []entity.Order) []OrderModel {
	if orders == nil {
		return nil
	}

	models := make([]OrderModel, 0, len(orders))
	for _, o := range orders {
		models = append(models, FromOrderDomain(o))
	}

	return models
}

// ToGroupDomain maps one compliment group model to its entity.
func ToGroupDomain(m ComplimentGroupModel) entity.ComplimentGroup {
	codes := make([]entity.ComplimentCode, 0, len(m.Codes))
	for _, c := range m.Codes {
		codes = append(codes, entity.ComplimentCode(c))
	}

	return entity.ComplimentGroup{
		GroupID:   m.GroupID,
		Title:     m.Title,
		Amount:    m.Amount,
		StartDate: m.StartDate,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Codes:     codes,
	}
}

// FromGroupDomain maps one compliment group entity to its model.
func FromGroupDomain(group entity.ComplimentGroup) ComplimentGroupModel {
	codes := make([]ComplimentCodeModel, 0, len(group.Codes))
	for _, c := range group.Codes {
		codes = append(codes, ComplimentCodeModel(c))
	}

	return ComplimentGroupModel{
		GroupID:   group.GroupID,
		Title:     group.Title,
		Amount:    group.Amount,
		StartDate: group.StartDate,
		StartTime: group.StartTime,
		EndTime:   group.EndTime,
		Codes:     codes,
	}
}

func toGroupsDomain(models []ComplimentGroupModel) []entity.ComplimentGroup {
	if models == nil {
		return nil
	}

	groups := make([]entity.ComplimentGroup, 0, len(models))
	for _, m := range models {
		groups = append(groups, ToGroupDomain(m))
	}

	return groups
}

func fromGroupsDomain(groups []entity.ComplimentGroup) []ComplimentGroupModel {
	if groups == nil {
		return nil
	}

	models := make([]ComplimentGroupModel, 0, len(groups))
	for _, g := range groups {
		models = append(models, FromGroupDomain(g))
	}

	return models
}

func toComplimentsDomain(models []ComplimentModel) []entity.Compliment {
	if models == nil {
		return nil
	}

	compliments := make([]entity.Compliment, 0, len(models))
	for _, m := range models {
		compliments = append(compliments, entity.Compliment(m))
	}

	return compliments
}

func fromComplimentsDomain(compliments []entity.Compliment) []ComplimentModel {
	if compliments == nil {
		return nil
	}

	models := make([]ComplimentModel, 0, len(compliments))
	for _, c := range compliments {
		models = append(models, ComplimentModel(c))
	}

	return models
}
