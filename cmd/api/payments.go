package main

import (
	"net/http"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/response"
)

type GetPaymentTypesResponse = response.APIResponse[[]analytics.LabelCount]
type GetInstallmentsResponse = response.APIResponse[[]analytics.CityMetric]

func (app *application) handleGetPaymentTypes(w http.ResponseWriter, r *http.Request) {
	resp := &GetPaymentTypesResponse{
		Success: true,
		Data:    analytics.PaymentTypeDistribution(app.data.Orders),
		Message: "Payment type distribution",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetInstallmentsByCity(w http.ResponseWriter, r *http.Request) {
	means := analytics.AvgInstallmentsBySellerCity(app.data.Orders)

	resp := &GetInstallmentsResponse{
		Success: true,
		Data:    analytics.Top(means, cityRankingSize),
		Message: "Cities with highest average payment installments",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
