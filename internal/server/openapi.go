package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// tokenParams declares the {token} path parameter for the reflector;
// operations on parameterized paths are rejected without it.
type tokenParams struct {
	Token string `path:"token"`
}

// answerParams declares the {token} and {questionID} path parameters.
type answerParams struct {
	Token      string `path:"token"`
	QuestionID string `path:"questionID"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "RentCheck API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the rental-contract checklist wizard and cost calculator.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	postSession.SetSummary("Create session")
	postSession.SetDescription("Starts a fresh wizard session and returns its token with the first step.")
	postSession.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(postSession)

	// GET /api/sessions/{token}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{token}")
	getSession.AddReqStructure(tokenParams{})
	getSession.SetSummary("Get current step")
	getSession.SetDescription("Returns the current question, answer and navigation state.")
	getSession.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// PUT /api/sessions/{token}/answers/{questionID}
	putAnswer, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{token}/answers/{questionID}")
	putAnswer.AddReqStructure(answerParams{})
	putAnswer.SetSummary("Set answer")
	putAnswer.SetDescription("Replaces the answer for a question wholesale. Blocked once the wizard is completed.")
	putAnswer.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	putAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	putAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	putAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putAnswer)

	// POST /api/sessions/{token}/answers/{questionID}/toggle
	postToggle, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{token}/answers/{questionID}/toggle")
	postToggle.AddReqStructure(answerParams{})
	postToggle.SetSummary("Toggle selection")
	postToggle.SetDescription("Applies one click of a multi-select option, honoring the form's exclusivity rules.")
	postToggle.AddReqStructure(ToggleRequest{})
	postToggle.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	postToggle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postToggle.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postToggle)

	// POST /api/sessions/{token}/advance
	postAdvance, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{token}/advance")
	postAdvance.AddReqStructure(tokenParams{})
	postAdvance.SetSummary("Advance")
	postAdvance.SetDescription("Moves to the next step, or to the result state from the last step. Blocked while the current answer is incomplete.")
	postAdvance.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	postAdvance.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAdvance)

	// POST /api/sessions/{token}/retreat
	postRetreat, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{token}/retreat")
	postRetreat.AddReqStructure(tokenParams{})
	postRetreat.SetSummary("Retreat")
	postRetreat.SetDescription("Moves one step back; a no-op at the first step.")
	postRetreat.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postRetreat)

	// POST /api/sessions/{token}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{token}/reset")
	postReset.AddReqStructure(tokenParams{})
	postReset.SetSummary("Reset session")
	postReset.SetDescription("Clears answers, safety toggles and cost inputs back to the initial state.")
	postReset.AddRespStructure(StepView{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// PUT /api/sessions/{token}/safety-terms
	putSafety, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{token}/safety-terms")
	putSafety.AddReqStructure(tokenParams{})
	putSafety.SetSummary("Set safety clauses")
	putSafety.SetDescription("Sets the three safety-clause toggles on the result screen.")
	putSafety.AddRespStructure(SummaryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putSafety.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(putSafety)

	// GET /api/sessions/{token}/summary
	getSummary, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{token}/summary")
	getSummary.AddReqStructure(tokenParams{})
	getSummary.SetSummary("Get summary")
	getSummary.SetDescription("Returns the checklist table rows and generated special terms once the wizard is completed.")
	getSummary.AddRespStructure(SummaryResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSummary.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(getSummary)

	// PUT /api/sessions/{token}/costs
	putCosts, _ := r.NewOperationContext(http.MethodPut, "/api/sessions/{token}/costs")
	putCosts.AddReqStructure(tokenParams{})
	putCosts.SetSummary("Update cost inputs")
	putCosts.SetDescription("Stores the cost-calculator inputs and returns the derived estimate.")
	putCosts.AddRespStructure(CostEstimateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	putCosts.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(putCosts)

	// GET /api/sessions/{token}/costs
	getCosts, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{token}/costs")
	getCosts.AddReqStructure(tokenParams{})
	getCosts.SetSummary("Get cost estimate")
	getCosts.SetDescription("Returns the estimate derived from the stored cost inputs.")
	getCosts.AddRespStructure(CostEstimateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCosts)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
