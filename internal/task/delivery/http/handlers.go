package http

import (
	"github.com/gin-gonic/gin"

	"todo-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task in store order with its current deadline status.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.View(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.View: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Appends a pending task. The deadline must be DD/MM/YYYY.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     201  {object} addResp
// @Failure     400  {object} response.Resp "Invalid date format"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newAddResp(output))
}

// Search godoc
// @Summary     Search tasks
// @Description Case-sensitive substring search on descriptions.
// @Tags        Tasks
// @Produce     json
// @Param       keyword query string false "Keyword"
// @Success     200 {object} searchResp
// @Router      /api/v1/tasks/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Stats godoc
// @Summary     Task statistics
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// MarkDone godoc
// @Summary     Mark a task as done
// @Tags        Tasks
// @Produce     json
// @Param       index path int true "1-based task number"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Invalid task number"
// @Router      /api/v1/tasks/{index}/done [PATCH]
func (h *handler) MarkDone(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.MarkDone(ctx, req.Index); err != nil {
		h.l.Warnf(ctx, "uc.MarkDone: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task; later tasks move down by one position.
// @Tags        Tasks
// @Produce     json
// @Param       index path int true "1-based task number"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Invalid task number"
// @Router      /api/v1/tasks/{index} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIndexReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, req.Index); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Sort godoc
// @Summary     Sort tasks
// @Tags        Tasks
// @Produce     json
// @Param       by query string true "alpha or deadline"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/sort [POST]
func (h *handler) Sort(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSortReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if req.By == sortByAlpha {
		err = h.uc.SortAlphabetically(ctx)
	} else {
		err = h.uc.SortByDeadline(ctx)
	}
	if err != nil {
		h.l.Errorf(ctx, "uc.Sort %s: %v", req.By, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Save godoc
// @Summary     Save tasks to the task file
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Write failed"
// @Router      /api/v1/tasks/save [POST]
func (h *handler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Save(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Save: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Load godoc
// @Summary     Reload tasks from the task file
// @Description Replaces the in-memory list. A missing file loads as empty.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Read failed"
// @Router      /api/v1/tasks/load [POST]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Load(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.List(c)
}
