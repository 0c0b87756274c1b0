package handler

import (
	"net/http"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/service"
	"github.com/gin-gonic/gin"
)

// PlanningHandler serves the scheduling board. Its endpoints keep the
// legacy wire contract: an error_code field the board treats as advisory
// (non-zero means "leave the local view unchanged"), always on HTTP 200
// for domain rejections.
type PlanningHandler struct {
	planning *service.PlanningService
	summary  *service.SummaryService
	lines    *service.LineService
}

func NewPlanningHandler(planning *service.PlanningService, summary *service.SummaryService, lines *service.LineService) *PlanningHandler {
	return &PlanningHandler{planning: planning, summary: summary, lines: lines}
}

// Lines returns the active production lines (cached option list).
func (h *PlanningHandler) Lines(c *gin.Context) {
	lines, err := h.lines.List(c.Request.Context())
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, lines)
}

type planningDataRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// Data returns the grid, contracted headcount and summary rows for a date
// range. An empty period renders as an empty board, never as an error.
func (h *PlanningHandler) Data(c *gin.Context) {
	var req planningDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": err.Error()})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": "invalid start_date"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": "invalid end_date"})
		return
	}

	board, err := h.planning.GetBoard(c.Request.Context(), start, end)
	if err != nil {
		status, code := errorCode(err)
		c.JSON(status, gin.H{"error_code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"error_code": CodeOK,
		"lines":      board.Lines,
		"orders":     board.Orders,
		"planning":   board.Planning,
		"contracts":  board.Contracts,
		"summary":    board.Summary,
	})
}

type planningSaveRequest struct {
	OrderUUID string `json:"order_uuid" binding:"required"`
	LineUUID  string `json:"lasworkline_uuid" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Hour      *int   `json:"hour" binding:"required"`
	Minute    *int   `json:"minute"`
	Workers   *int   `json:"workers" binding:"required"`
	ZoomLevel string `json:"zoom_level"`
}

// Save writes one cell of the grid; zoom_level "hour" fans the value to the
// four quarters of that hour.
func (h *PlanningHandler) Save(c *gin.Context) {
	var req planningSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": "invalid date"})
		return
	}

	minute := 0
	if req.Minute != nil {
		minute = *req.Minute
	}
	zoom := req.ZoomLevel
	if zoom == "" {
		zoom = service.ZoomQuarter
	}

	result, err := h.planning.SetSlot(c.Request.Context(), service.SaveSlotParams{
		LineID:  req.LineUUID,
		OrderID: req.OrderUUID,
		Date:    date,
		Hour:    *req.Hour,
		Minute:  minute,
		Workers: *req.Workers,
		Zoom:    zoom,
	})
	if err != nil {
		// Advisory for the board: the grid keeps its local view.
		_, code := errorCode(err)
		c.JSON(http.StatusOK, gin.H{"error_code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error_code": CodeOK, "planning_id": result.PlanningID})
}

type summarySaveRequest struct {
	SummaryType string `json:"summary_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Hour        *int   `json:"hour" binding:"required"`
	Minute      *int   `json:"minute"`
	Value       *int   `json:"value"`
	Reset       int    `json:"reset"`
	ZoomLevel   string `json:"zoom_level"`
}

// Summary writes or resets a manual correction to one summary cell.
func (h *PlanningHandler) Summary(c *gin.Context) {
	var req summarySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": err.Error()})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": "invalid date"})
		return
	}
	reset := req.Reset == 1
	if !reset && req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error_code": CodeValidation, "message": "value is required unless reset=1"})
		return
	}

	minute := 0
	if req.Minute != nil {
		minute = *req.Minute
	}
	value := 0
	if req.Value != nil {
		value = *req.Value
	}
	zoom := req.ZoomLevel
	if zoom == "" {
		zoom = service.ZoomQuarter
	}

	result, err := h.summary.SetOverride(c.Request.Context(), service.SetOverrideParams{
		Kind:   req.SummaryType,
		Date:   date,
		Hour:   *req.Hour,
		Minute: minute,
		Value:  value,
		Reset:  reset,
		Zoom:   zoom,
	})
	if err != nil {
		_, code := errorCode(err)
		c.JSON(http.StatusOK, gin.H{"error_code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error_code": CodeOK, "summary_id": result.SummaryID})
}
