package http

// TopUsers godoc
// @Summary Top buyers report
// @Description Users whose total spend over the trailing six months exceeds the threshold, sorted by spend; cached per page for five minutes
// @Tags Users
// @Produce json
// @Param pageNumber query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} object{execution_time_ms=int,data=object}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/users/top-users [get]
func (h *UserHandler) TopUsersDoc() {}

// CreateUser godoc
// @Summary Create a new user
// @Description Create a new user; name is required
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object{name=string} true "User data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// ListUsers godoc
// @Summary List all users
// @Description Get a paginated list of users
// @Tags Users
// @Produce json
// @Param pageNumber query int false "Page number (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} object{data=array,current_page=int,page_size=int,total_count=int,total_pages=int,has_previous_page=bool,has_next_page=bool}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get user by ID
// @Description Get a specific user by its ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// UpdateUser godoc
// @Summary Update a user
// @Description Replace an existing user's fields
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{name=string} true "User data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user by ID; blocked while orders still reference the user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}
