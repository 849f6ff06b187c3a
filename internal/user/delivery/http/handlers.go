package http

import (
	"tracker-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List users
// @Description Paginated user list. Requires manageUsers.
// @Tags Users
// @Produce json
// @Security Bearer
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param role query string false "Role filter"
// @Param search query string false "Username or name"
// @Param is_active query bool false "Active filter"
// @Success 200 {object} getResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /users [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newGetResp(o))
}

// @Summary Get user
// @Tags Users
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} userResp
// @Failure 404 {object} response.Resp
// @Router /users/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		return
	}

	o, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newUserResp(o.User))
}

// @Summary Current user
// @Description Profile of the caller with the derived capability set.
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /users/me [GET]
func (h *Handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		return
	}

	o, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newMeResp(o.User))
}

// @Summary Update own profile
// @Tags Users
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body updateProfileReq true "Profile"
// @Success 200 {object} userResp
// @Router /users/me [PUT]
func (h *Handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateProfileRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newUserResp(o.User))
}

// @Summary Create user
// @Description Creates an account with any known role. Requires manageUsers.
// @Tags Users
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createReq true "User"
// @Success 201 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /users [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.Created(c, h.newUserResp(o.User))
}

// @Summary Update user
// @Description Changes role, status or profile. Requires manageUsers.
// @Tags Users
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Param body body updateReq true "Changes"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /users/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateRequest(c)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	o, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, h.newUserResp(o.User))
}

// @Summary Delete user
// @Tags Users
// @Produce json
// @Security Bearer
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /users/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping, h.d)
		return
	}

	response.OK(c, nil)
}
