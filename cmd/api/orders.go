package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/response"
)

const (
	productRankingSize = 5
	cityRankingSize    = 10
)

type DatasetBounds struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
	Orders  int       `json:"order_rows"`
}

type DailyOrdersReport struct {
	Summary analytics.OrdersSummary `json:"summary"`
	Days    []analytics.DailyOrders `json:"days"`
}

type ProductRankingReport struct {
	Best  []analytics.ProductVolume `json:"best"`
	Worst []analytics.ProductVolume `json:"worst"`
}

type ProductCountsReport struct {
	Top    []analytics.LabelCount `json:"top"`
	Bottom []analytics.LabelCount `json:"bottom"`
}

type SellerCityReport struct {
	Top    []analytics.LabelCount `json:"top"`
	Bottom []analytics.LabelCount `json:"bottom"`
}

type GetDatasetBoundsResponse = response.APIResponse[DatasetBounds]
type GetDailyOrdersResponse = response.APIResponse[DailyOrdersReport]
type GetProductRankingResponse = response.APIResponse[ProductRankingReport]
type GetProductCountsResponse = response.APIResponse[ProductCountsReport]
type GetSellerCityResponse = response.APIResponse[SellerCityReport]

func (app *application) handleGetDatasetBounds(w http.ResponseWriter, r *http.Request) {
	min, max := app.data.Bounds()

	resp := &GetDatasetBoundsResponse{
		Success: true,
		Data: DatasetBounds{
			MinDate: min,
			MaxDate: max,
			Orders:  len(app.data.Orders),
		},
		Message: "Dataset bounds",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetDailyOrders(w http.ResponseWriter, r *http.Request) {
	dateRange, err := app.parseRange(r)
	if err != nil {
		app.rangeError(w, err)
		return
	}

	filtered := analytics.FilterOrders(app.data.Orders, dateRange)
	rollup := analytics.DailyRollup(filtered)

	resp := &GetDailyOrdersResponse{
		Success: true,
		Data: DailyOrdersReport{
			Summary: analytics.RollupTotals(rollup),
			Days:    rollup,
		},
		Message: "Daily orders rollup",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetProductRanking(w http.ResponseWriter, r *http.Request) {
	dateRange, err := app.parseRange(r)
	if err != nil {
		app.rangeError(w, err)
		return
	}

	filtered := analytics.FilterOrders(app.data.Orders, dateRange)
	ranking := analytics.ProductVolumeRanking(filtered)

	resp := &GetProductRankingResponse{
		Success: true,
		Data: ProductRankingReport{
			Best:  analytics.Top(ranking, productRankingSize),
			Worst: analytics.Bottom(ranking, productRankingSize),
		},
		Message: "Best and worst performing products",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetProductCounts(w http.ResponseWriter, r *http.Request) {
	counts := analytics.ProductOrderCounts(app.data.Orders)

	resp := &GetProductCountsResponse{
		Success: true,
		Data: ProductCountsReport{
			Top:    analytics.Top(counts, cityRankingSize),
			Bottom: analytics.Bottom(counts, cityRankingSize),
		},
		Message: "Product sales distribution",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetOrdersBySellerCity(w http.ResponseWriter, r *http.Request) {
	counts := analytics.OrdersBySellerCity(app.data.Orders)

	resp := &GetSellerCityResponse{
		Success: true,
		Data: SellerCityReport{
			Top:    analytics.Top(counts, cityRankingSize),
			Bottom: analytics.Bottom(counts, cityRankingSize),
		},
		Message: "Order distribution by seller city",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) rangeError(w http.ResponseWriter, err error) {
	if errors.Is(err, analytics.ErrInvalidRange) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
