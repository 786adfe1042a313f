package main

import (
	"fmt"
	"net/http"

	"github.com/Hans4yu/commerce-insights/internal/analytics"
	"github.com/Hans4yu/commerce-insights/internal/geomap"
	"github.com/Hans4yu/commerce-insights/internal/response"
)

type GetGeoPointsResponse = response.APIResponse[[]analytics.BucketedPoint]

func (app *application) handleGetGeoPoints(w http.ResponseWriter, r *http.Request) {
	if !app.data.GeoAvailable {
		writeJSONError(w, http.StatusServiceUnavailable, app.data.GeoWarning)
		return
	}

	resp := &GetGeoPointsResponse{
		Success: true,
		Data:    analytics.BucketByState(app.data.Geo, len(geomap.Palette)),
		Message: "Geospatial customer distribution",
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to write response")
	}
}

func (app *application) handleGetGeoMap(w http.ResponseWriter, r *http.Request) {
	if !app.data.GeoAvailable {
		writeJSONError(w, http.StatusServiceUnavailable, app.data.GeoWarning)
		return
	}

	points := analytics.BucketByState(app.data.Geo, len(geomap.Palette))
	boundary := app.resolveBoundary(r.Context())

	png, err := geomap.RenderPNG(points, boundary)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to render map: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", geomap.ExportFilename))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
