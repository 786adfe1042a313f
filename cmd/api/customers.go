package main

import (
	"net/http"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/response"
)

const rfmRankingSize = 5

type CustomerCityReport struct {
	Top    []analytics.RegionCount `json:"top"`
	Bottom []analytics.RegionCount `json:"bottom"`
}

type RFMReport struct {
	Averages     analytics.RFMAverages `json:"averages"`
	TopRecency   []analytics.RFMRow    `json:"top_recency"`
	TopFrequency []analytics.RFMRow    `json:"top_frequency"`
	TopMonetary  []analytics.RFMRow    `json:"top_monetary"`
	Customers    int                   `json:"customers"`
}

type GetCustomersByStateResponse = response.APIResponse[[]analytics.RegionCount]
type GetCustomersByCityResponse = response.APIResponse[CustomerCityReport]
type GetRFMResponse = response.APIResponse[RFMReport]

func (app *application) handleGetCustomersByState(w http.ResponseWriter, r *http.Request) {
	dateRange, err := app.parseRange(r)
	if err != nil {
		app.rangeError(w, err)
		return
	}

	filtered := analytics.FilterOrders(app.data.Orders, dateRange)

	resp := &GetCustomersByStateResponse{
		Success: true,
		Data:    analytics.CustomersByState(filtered),
		Message: "Customer distribution by state",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetCustomersByCity(w http.ResponseWriter, r *http.Request) {
	counts := analytics.CustomersByCity(app.data.Orders)

	resp := &GetCustomersByCityResponse{
		Success: true,
		Data: CustomerCityReport{
			Top:    analytics.Top(counts, cityRankingSize),
			Bottom: analytics.Bottom(counts, cityRankingSize),
		},
		Message: "Customer distribution by city",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetRFM(w http.ResponseWriter, r *http.Request) {
	dateRange, err := app.parseRange(r)
	if err != nil {
		app.rangeError(w, err)
		return
	}

	filtered := analytics.FilterOrders(app.data.Orders, dateRange)
	rows := analytics.RFMTable(filtered)

	resp := &GetRFMResponse{
		Success: true,
		Data: RFMReport{
			Averages:     analytics.RFMMeans(rows),
			TopRecency:   analytics.TopByRecency(rows, rfmRankingSize),
			TopFrequency: analytics.TopByFrequency(rows, rfmRankingSize),
			TopMonetary:  analytics.TopByMonetary(rows, rfmRankingSize),
			Customers:    len(rows),
		},
		Message: "Best customers based on RFM parameters",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
