package main

import (
	"net/http"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/dataset"
	"github.com/Hans4yu/commerce-insights/internal/response"
)

type CityRankingReport struct {
	Top    []analytics.CityMetric `json:"top"`
	Bottom []analytics.CityMetric `json:"bottom"`
}

type GetCityRankingResponse = response.APIResponse[CityRankingReport]

func (app *application) handleGetReviewScores(w http.ResponseWriter, r *http.Request) {
	app.writeCityRanking(w, analytics.ReviewScoreBySellerCity(app.data.Satisfaction),
		"Review scores by seller city")
}

func (app *application) handleGetDeliveryTimes(w http.ResponseWriter, r *http.Request) {
	app.writeCityRanking(w, analytics.AvgCarrierHandoffBySellerCity(app.data.Satisfaction),
		"Average delivery time to carrier by seller city")
}

func (app *application) handleGetLateDeliveries(w http.ResponseWriter, r *http.Request) {
	app.writeCityRanking(w, analytics.DeliveryStatusCounts(app.data.Satisfaction, dataset.DeliveryLate),
		"Late deliveries by seller city")
}

func (app *application) handleGetOnTimeDeliveries(w http.ResponseWriter, r *http.Request) {
	app.writeCityRanking(w, analytics.DeliveryStatusCounts(app.data.Satisfaction, dataset.DeliveryOnTime),
		"On-time deliveries by seller city")
}

func (app *application) writeCityRanking(w http.ResponseWriter, ranking []analytics.CityMetric, message string) {
	resp := &GetCityRankingResponse{
		Success: true,
		Data: CityRankingReport{
			Top:    analytics.Top(ranking, cityRankingSize),
			Bottom: analytics.Bottom(ranking, cityRankingSize),
		},
		Message: message,
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}
