package http

import (
	"github.com/gin-gonic/gin"

	"todo-summary-assistant/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns every todo in insertion order.
// @Tags        Todos
// @Produce     json
// @Success     200 {array}  model.Task
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch todos"))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get todo detail
// @Description Returns a single todo by its ID.
// @Tags        Todos
// @Produce     json
// @Param       id  path     int true "Todo ID"
// @Success     200 {object} model.Task
// @Failure     400 {object} response.Resp "Invalid todo ID"
// @Failure     404 {object} response.Resp "Todo not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, "Failed to fetch todo"))
		return
	}

	response.OK(c, output.Todo)
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo. Title is required; dueDate accepts YYYY-MM-DD or a phrase like "tomorrow".
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body     createReq true "Todo data"
// @Success     201  {object} model.Task
// @Failure     400  {object} response.Resp "Invalid todo data"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, "Failed to create todo"))
		return
	}

	response.Created(c, output.Todo)
}

// Update godoc
// @Summary     Update a todo
// @Description Merges the supplied fields into an existing todo. Empty optional text clears the field.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path     int       true "Todo ID"
// @Param       body body     updateReq true "Fields to update"
// @Success     200  {object} model.Task
// @Failure     400  {object} response.Resp "Invalid todo ID or data"
// @Failure     404  {object} response.Resp "Todo not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, "Failed to update todo"))
		return
	}

	response.OK(c, output.Todo)
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo. Its ID is never reused.
// @Tags        Todos
// @Param       id path int true "Todo ID"
// @Success     204
// @Failure     400 {object} response.Resp "Invalid todo ID"
// @Failure     404 {object} response.Resp "Todo not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, "Failed to delete todo"))
		return
	}

	response.NoContent(c)
}
