package handler

import (
	"net/http"
	"strconv"

	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/repository"
	"github.com/adrirubim/laser-packaging-laravel-sub008/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.OrderListParams{
		Status: c.Query("status"),
		Page:   page,
		Size:   size,
	}
	orders, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, gin.H{"items": orders, "total": total, "page": page, "size": size})
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, order)
}

type updateOrderRequest struct {
	Quantity       *float64 `json:"quantity"`
	WorkedQuantity *float64 `json:"worked_quantity"`
	Status         *string  `json:"status"`
	StatusReason   string   `json:"status_reason"`
	DeliveryDate   *string  `json:"delivery_date"`
	ShiftMode      *int     `json:"shift_mode"`
	MorningShift   *bool    `json:"morning_shift"`
	AfternoonShift *bool    `json:"afternoon_shift"`
	SaturdayWork   *bool    `json:"saturday_work"`
	SelfCheck      *bool    `json:"self_check"`
	Notes          *string  `json:"notes"`
}

// Update applies a partial edit. A worked-quantity change replans the
// order's future slots inline; the result rides along in the response.
func (h *OrderHandler) Update(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}

	params := service.UpdateOrderParams{
		Quantity:       req.Quantity,
		WorkedQuantity: req.WorkedQuantity,
		Status:         req.Status,
		StatusReason:   req.StatusReason,
		ShiftMode:      req.ShiftMode,
		MorningShift:   req.MorningShift,
		AfternoonShift: req.AfternoonShift,
		SaturdayWork:   req.SaturdayWork,
		SelfCheck:      req.SelfCheck,
		Notes:          req.Notes,
	}
	if req.DeliveryDate != nil {
		date, err := parseDate(*req.DeliveryDate)
		if err != nil {
			Error(c, http.StatusBadRequest, CodeValidation, "invalid delivery_date")
			return
		}
		params.DeliveryDate = &date
	}

	order, replan, err := h.svc.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, gin.H{"order": order, "replan_result": replan})
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	order, err := h.svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason)
	if err != nil {
		status, code := errorCode(err)
		c.JSON(status, gin.H{"success": false, "code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

type semaphoreRequest struct {
	Labels    *int `json:"labels" binding:"required"`
	Packaging *int `json:"packaging" binding:"required"`
	Product   *int `json:"product" binding:"required"`
}

// SaveSemaphore persists the three readiness flags and reports whether the
// order may now move from STAGING to RELEASED.
func (h *OrderHandler) SaveSemaphore(c *gin.Context) {
	var req semaphoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	result, err := h.svc.SaveSemaphore(c.Request.Context(), c.Param("id"), *req.Labels, *req.Packaging, *req.Product)
	if err != nil {
		status, code := errorCode(err)
		c.JSON(status, gin.H{"success": false, "code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"order":      result.Order,
		"all_green":  result.AllGreen,
		"releasable": result.Releasable,
	})
}

type addOutputRequest struct {
	Quantity *float64 `json:"quantity" binding:"required"`
	Notes    string   `json:"notes"`
}

func (h *OrderHandler) AddOutput(c *gin.Context) {
	var req addOutputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, CodeValidation, err.Error())
		return
	}
	userID := c.GetString("user_id")
	output, replan, err := h.svc.AddOutput(c.Request.Context(), c.Param("id"), *req.Quantity, req.Notes, userID)
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, gin.H{"output": output, "replan_result": replan})
}

func (h *OrderHandler) RemoveOutput(c *gin.Context) {
	replan, err := h.svc.RemoveOutput(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code := errorCode(err)
		Error(c, status, code, err.Error())
		return
	}
	Success(c, gin.H{"replan_result": replan})
}
