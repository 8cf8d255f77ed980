package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/onboarding"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OnboardingHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	CompleteTask(w http.ResponseWriter, r *http.Request)
	SkipTask(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type onboardingHandlerImpl struct {
	onboardingService onboarding.Service
}

func NewOnboardingHandler(onboardingService onboarding.Service) OnboardingHandler {
	return &onboardingHandlerImpl{
		onboardingService: onboardingService,
	}
}

// Start implements OnboardingHandler.
func (h *onboardingHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req onboarding.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.onboardingService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Onboarding started", result)
}

// ListTasks implements OnboardingHandler.
func (h *onboardingHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.onboardingService.ListTasks(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CompleteTask implements OnboardingHandler.
func (h *onboardingHandlerImpl) CompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	result, err := h.onboardingService.CompleteTask(r.Context(), taskID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task completed", result)
}

// SkipTask implements OnboardingHandler.
func (h *onboardingHandlerImpl) SkipTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	result, err := h.onboardingService.SkipTask(r.Context(), taskID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task skipped", result)
}

// Progress implements OnboardingHandler.
func (h *onboardingHandlerImpl) Progress(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.onboardingService.Progress(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
