package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Hans4yu/commerce-insights/internal/logger"
)

// Load reads the three fact files from dir and assembles the session store.
// Order and satisfaction tables are mandatory; the geo table is optional and
// its absence (or a failed schema check) only disables the geospatial section.
func Load(dir string, enc Encoding, appLogger *logger.Logger) (*Store, error) {
	const component = "DatasetLoader"

	store := &Store{}

	orderDf, err := OpenFileAndDecode(FileForTable(dir, OrderFacts), enc)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", TableNames[OrderFacts], err)
	}
	if err := ValidateSchema(orderDf, OrderFacts); err != nil {
		return nil, err
	}
	store.Orders = OrderFactsFromDataFrame(orderDf)

	satisfactionDf, err := OpenFileAndDecode(FileForTable(dir, SatisfactionFacts), enc)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", TableNames[SatisfactionFacts], err)
	}
	if err := ValidateSchema(satisfactionDf, SatisfactionFacts); err != nil {
		return nil, err
	}
	store.Satisfaction = SatisfactionFactsFromDataFrame(satisfactionDf)

	geoDf, err := OpenFileAndDecode(FileForTable(dir, GeoFacts), enc)
	if err != nil {
		store.GeoWarning = fmt.Sprintf("geo table unavailable: %v", err)
		appLogger.Warn(component, "Geo table unavailable, geospatial section disabled: %v", err)
	} else if err := ValidateSchema(geoDf, GeoFacts); err != nil {
		var missing *MissingColumnError
		if errors.As(err, &missing) {
			store.GeoWarning = fmt.Sprintf("geospatial visualization requires latitude/longitude data: %v", err)
			appLogger.Warn(component, "Geo schema check failed, geospatial section disabled: %v", err)
		} else {
			return nil, err
		}
	} else {
		store.Geo = GeoPointsFromDataFrame(geoDf)
		store.GeoAvailable = true
	}

	// Orders are kept sorted by approval timestamp; rows without one sort
	// first and are skipped by the time-based aggregates.
	sort.SliceStable(store.Orders, func(i, j int) bool {
		return store.Orders[i].ApprovedAt.Before(store.Orders[j].ApprovedAt)
	})
	store.computeBounds()

	appLogger.Info(component, "Dataset loaded: orders=%d satisfaction=%d geo=%d geoAvailable=%t",
		len(store.Orders), len(store.Satisfaction), len(store.Geo), store.GeoAvailable)

	return store, nil
}
