package orders

// OrderQuery is a conjunction of optional predicates over orders.
// An empty query matches every order.
type OrderQuery struct {
	CustomerID  *uint
	IsCompleted *bool
}

// NewOrderQuery creates a query matching all orders
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{}
}

// ByCustomer restricts the query to orders placed by customerID
func (q *OrderQuery) ByCustomer(customerID uint) *OrderQuery {
	q.CustomerID = &customerID
	return q
}

// ByCompletion restricts the query to orders whose completion flag equals completed
func (q *OrderQuery) ByCompletion(completed bool) *OrderQuery {
	q.IsCompleted = &completed
	return q
}
