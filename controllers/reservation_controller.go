package controllers

import (
	"strconv"
	"time"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/NebiyouChanie/sapore/pkg/resp"
	"github.com/NebiyouChanie/sapore/repository"
	"github.com/NebiyouChanie/sapore/services"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ReservationRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber" binding:"required,min=10"`
	NumberOfGuests int    `json:"numberOfGuests" binding:"required,min=1"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Message        string `json:"message"`
}

func (r *ReservationRequest) toEntity() (*entity.Reservation, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string][]string{
			"date": {"must be a valid date (YYYY-MM-DD)"},
		})
	}
	return &entity.Reservation{
		Name:           r.Name,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		NumberOfGuests: r.NumberOfGuests,
		Date:           date,
		Time:           r.Time,
		Message:        r.Message,
	}, nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// POST /reservations
func (ctl *ReservationController) Create(c *gin.Context) {
	var req ReservationRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[RESERVATION_POST]", err)
		return
	}

	res, err := req.toEntity()
	if err != nil {
		resp.Error(c, "[RESERVATION_POST]", err)
		return
	}

	delivered, err := ctl.service.Create(res)
	if err != nil {
		resp.Error(c, "[RESERVATION_POST]", err)
		return
	}
	resp.Created(c, gin.H{"reservation": res, "emailDelivered": delivered})
}

// GET /reservations?page=&pageSize=&startDate=&endDate=
func (ctl *ReservationController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filter := repository.ReservationFilter{Page: page, PageSize: pageSize}
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			resp.BadRequest(c, "Invalid startDate")
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			resp.BadRequest(c, "Invalid endDate")
			return
		}
		filter.EndDate = &t
	}

	reservations, total, err := ctl.service.List(filter)
	if err != nil {
		resp.Error(c, "[RESERVATION_LIST]", err)
		return
	}
	if len(reservations) == 0 {
		resp.Error(c, "[RESERVATION_LIST]", apperr.NotFound("No Reservation Found"))
		return
	}

	resp.OK(c, gin.H{
		"data":     reservations,
		"total":    total,
		"page":     filter.Page,
		"pageSize": filter.PageSize,
	})
}

// GET /reservations/:id
func (ctl *ReservationController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid reservation ID")
		return
	}

	res, err := ctl.service.Get(uint(id))
	if err != nil {
		resp.Error(c, "[RESERVATION_GET]", err)
		return
	}
	resp.OK(c, res)
}

// PUT /reservations/:id
// Enforces the same schema as POST; status is untouched here.
func (ctl *ReservationController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid reservation ID")
		return
	}

	var req ReservationRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[RESERVATION_PUT]", err)
		return
	}
	updated, err := req.toEntity()
	if err != nil {
		resp.Error(c, "[RESERVATION_PUT]", err)
		return
	}

	res, err := ctl.service.Update(uint(id), updated)
	if err != nil {
		resp.Error(c, "[RESERVATION_PUT]", err)
		return
	}
	resp.OK(c, res)
}

// DELETE /reservations/:id
func (ctl *ReservationController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid reservation ID")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		resp.Error(c, "[RESERVATION_DELETE]", err)
		return
	}
	resp.OK(c, gin.H{"message": "Reservation deleted successfully"})
}

// PATCH /reservations/:id
func (ctl *ReservationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid reservation ID")
		return
	}

	var req StatusRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, "[RESERVATION_PATCH]", err)
		return
	}

	result, err := ctl.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		resp.Error(c, "[RESERVATION_PATCH]", err)
		return
	}
	resp.OK(c, result)
}
