package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/expense"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkReimbursed(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.Service
}

func NewExpenseHandler(expenseService expense.Service) ExpenseHandler {
	return &expenseHandlerImpl{
		expenseService: expenseService,
	}
}

// Submit implements ExpenseHandler.
func (h *expenseHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req expense.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.expenseService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense claim submitted", result)
}

// Get implements ExpenseHandler.
func (h *expenseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.expenseService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ExpenseHandler.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := expense.Filter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	filter.Page = parsePositiveInt(r.URL.Query().Get("page"), 1)
	filter.Limit = parsePositiveInt(r.URL.Query().Get("limit"), 20)

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.expenseService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements ExpenseHandler.
func (h *expenseHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	result, err := h.expenseService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense claim approved", result)
}

// Reject implements ExpenseHandler.
func (h *expenseHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	result, err := h.expenseService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense claim rejected", result)
}

// MarkReimbursed implements ExpenseHandler.
func (h *expenseHandlerImpl) MarkReimbursed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.expenseService.MarkReimbursed(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense claim marked as reimbursed", result)
}

func (h *expenseHandlerImpl) decodeReview(w http.ResponseWriter, r *http.Request) (expense.ReviewRequest, bool) {
	var req expense.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return expense.ReviewRequest{}, false
	}
	req.ID = chi.URLParam(r, "id")
	return req, true
}
