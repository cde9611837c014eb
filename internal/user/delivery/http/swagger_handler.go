package http

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object{token=string,user=object}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// Logout godoc
// @Summary Log out
// @Description Acknowledge logout so the client clears its stored token
// @Tags Auth
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /auth/logout [post]
func (h *UserHandler) LogoutDoc() {}

// Me godoc
// @Summary Current session user
// @Description Rehydrate the session user from the bearer token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /auth/me [get]
func (h *UserHandler) MeDoc() {}

// ListUsers godoc
// @Summary List users
// @Description List all user accounts
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}
