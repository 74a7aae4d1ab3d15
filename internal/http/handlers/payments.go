package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PUT /api/v1/payments/:id/status (staff)
func UpdatePaymentStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if !BindValidated(c, &in) {
		return
	}

	payment, err := paymentService(c).UpdateStatus(id, in.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// PUT /api/v1/payments/:id/settlement (staff)
func UpdatePaymentSettlement(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	var in struct {
		SettlementStatus string `json:"settlement_status" binding:"required"`
		StaffNote        string `json:"staff_note"`
	}
	if !BindValidated(c, &in) {
		return
	}

	info, err := paymentService(c).UpdateSettlement(id, in.SettlementStatus, in.StaffNote)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GET /api/v1/payments/:id/settlement (staff)
func GetPaymentSettlement(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}

	svc := paymentService(c)
	if _, err := svc.PaymentRepo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	info, err := svc.PaymentRepo.GetAdminInfo(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
