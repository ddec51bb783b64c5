package http

// GetOrder godoc
// @Summary Get order by ID
// @Description Get an order together with its line items in one call
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create an order with its line items; a product may appear at most once per order
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{user_id=int,date_added=string,order_products=array} true "Order data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order by ID; its line items are removed with it
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}
