package http

import (
	"todo-tracker/internal/task"
)

// --- Request DTOs ---

type addReq struct {
	Description string `json:"description" binding:"max=1000"`
	Deadline    string `json:"deadline"    binding:"required"`
}

func (r addReq) toInput() task.AddInput {
	return task.AddInput{
		Description: r.Description,
		Deadline:    r.Deadline,
	}
}

type searchReq struct {
	Keyword string `form:"keyword"`
}

func (r searchReq) toInput() task.SearchInput {
	return task.SearchInput{Keyword: r.Keyword}
}

const (
	sortByAlpha    = "alpha"
	sortByDeadline = "deadline"
)

type sortReq struct {
	By string `form:"by" binding:"required,oneof=alpha deadline"`
}

type indexReq struct {
	Index int `uri:"index" binding:"required"`
}

// --- Response DTOs ---

type rowResp struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Done        bool   `json:"done"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

func newRowResp(r task.Row) rowResp {
	return rowResp{
		Index:       r.Index,
		Description: r.Description,
		Deadline:    r.Deadline,
		Done:        r.IsDone,
		Status:      string(r.Status),
		StatusLabel: r.Status.Label(),
	}
}

func newRowResps(rows []task.Row) []rowResp {
	out := make([]rowResp, len(rows))
	for i, r := range rows {
		out[i] = newRowResp(r)
	}
	return out
}

type listResp struct {
	Tasks   []rowResp `json:"tasks"`
	Total   int       `json:"total"`
	Message string    `json:"message,omitempty"`
}

func (h *handler) newListResp(out task.ViewOutput) listResp {
	resp := listResp{
		Tasks: newRowResps(out.Rows),
		Total: out.Total,
	}
	if out.IsEmpty() {
		resp.Message = task.MessageNoTasks
	}
	return resp
}

type addResp struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Done        bool   `json:"done"`
}

func (h *handler) newAddResp(out task.AddOutput) addResp {
	return addResp{
		Index:       out.Index,
		Description: out.Task.Description,
		Deadline:    out.Task.Deadline,
		Done:        out.Task.IsDone,
	}
}

type searchResp struct {
	Keyword string    `json:"keyword"`
	Tasks   []rowResp `json:"tasks"`
	Count   int       `json:"count"`
	Total   int       `json:"total"`
	Message string    `json:"message,omitempty"`
}

func (h *handler) newSearchResp(out task.SearchOutput) searchResp {
	resp := searchResp{
		Keyword: out.Keyword,
		Tasks:   newRowResps(out.Rows),
		Count:   out.Count,
		Total:   out.Total,
	}
	switch {
	case out.Total == 0:
		resp.Message = task.MessageNoTasks
	case out.NoMatches():
		resp.Message = task.MessageNoMatches + out.Keyword
	}
	return resp
}

type statsResp struct {
	Total    int `json:"total"`
	Done     int `json:"done"`
	Pending  int `json:"pending"`
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	Upcoming int `json:"upcoming"`
	Invalid  int `json:"invalid"`
}

func (h *handler) newStatsResp(out task.StatsOutput) statsResp {
	return statsResp(out)
}
