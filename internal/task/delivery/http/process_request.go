package http

import (
	"github.com/gin-gonic/gin"
)

// processAddReq binds and validates the add task request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSearchReq binds the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSortReq binds and validates the sort order.
func (h *handler) processSortReq(c *gin.Context) (sortReq, error) {
	var req sortReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIndexReq binds the 1-based task index from the URI.
// Range checks are left to the use case so they match the CLI.
func (h *handler) processIndexReq(c *gin.Context) (indexReq, error) {
	var req indexReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, errInvalidIndexParam
	}
	return req, nil
}
