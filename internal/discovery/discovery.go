// Package discovery implements garage filtering and search for the locator
// screen: a category pass and a free-text pass applied as independent
// narrowing predicates over the in-memory garage set, plus resolution of a
// selected result into a navigation or external-map action.
package discovery

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/motorhub/carcare/pkg/models"
)

// FilterAll is the sentinel category key that keeps the set unchanged
const FilterAll = "all"

// Filter applies the category pass then the query pass and returns the
// display-ready subset in source order. It never re-sorts: the supplier of
// the garage set owns ordering.
//
// Category pass: a garage survives when any of its service tags contains the
// key as a case-sensitive substring (tags are pre-normalized lower-case
// tokens). Unknown keys match nothing. Query pass: a garage survives when the
// query is a case-insensitive substring of its name or of any service tag.
func Filter(garages []models.Garage, filterKey, query string) []models.Garage {
	filtered := garages

	if filterKey != FilterAll {
		filtered = filterByCategory(filtered, filterKey)
	}

	if query != "" {
		filtered = filterByQuery(filtered, query)
	}

	return filtered
}

func filterByCategory(garages []models.Garage, key string) []models.Garage {
	result := make([]models.Garage, 0, len(garages))
	for _, garage := range garages {
		for _, service := range garage.Services {
			if strings.Contains(service, key) {
				result = append(result, garage)
				break
			}
		}
	}
	return result
}

func filterByQuery(garages []models.Garage, query string) []models.Garage {
	q := strings.ToLower(query)
	result := make([]models.Garage, 0, len(garages))
	for _, garage := range garages {
		if garageMatchesQuery(garage, q) {
			result = append(result, garage)
		}
	}
	return result
}

func garageMatchesQuery(garage models.Garage, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(garage.Name), loweredQuery) {
		return true
	}
	for _, service := range garage.Services {
		if strings.Contains(strings.ToLower(service), loweredQuery) {
			return true
		}
	}
	return false
}

// Choice is the action picked for a selected garage
type Choice int

const (
	ChoiceDismiss Choice = iota
	ChoiceGetDirections
	ChoiceViewDetails
)

// Navigator receives navigation intents. The module performs no navigation
// itself.
type Navigator interface {
	ViewGarageDetails(garageID uuid.UUID)
}

// MapOpener opens an external directions view for a garage
type MapOpener interface {
	OpenDirections(garage models.Garage)
}

// Source supplies the geographically scoped garage set
type Source interface {
	FetchGarages(ctx context.Context) ([]models.Garage, error)
}

// Module holds the garage set and the active filter/query for one screen
// context. State is owned exclusively by that context, so no locking is
// needed; concurrent mutation is not supported.
type Module struct {
	source Source
	nav    Navigator
	maps   MapOpener

	garages   []models.Garage
	filterKey string
	query     string

	// generation stamps Refresh calls so a superseded in-flight fetch
	// cannot clobber a newer result.
	generation uint64
}

// New creates a discovery module with the "all" filter and an empty query
func New(source Source, nav Navigator, maps MapOpener) *Module {
	return &Module{
		source:    source,
		nav:       nav,
		maps:      maps,
		filterKey: FilterAll,
	}
}

// SetGarages replaces the garage set, preserving the supplied order
func (m *Module) SetGarages(garages []models.Garage) {
	m.garages = garages
}

// SetFilter selects the active category filter key
func (m *Module) SetFilter(key string) {
	m.filterKey = key
}

// SetQuery sets the free-text search query
func (m *Module) SetQuery(query string) {
	m.query = query
}

// Refresh reloads the garage set from the source. A refresh that was
// superseded by a newer one before its data arrived discards the stale
// result and reports no error.
func (m *Module) Refresh(ctx context.Context) error {
	m.generation++
	gen := m.generation

	garages, err := m.source.FetchGarages(ctx)
	if err != nil {
		return err
	}

	if gen != m.generation {
		return nil
	}

	m.garages = garages
	return nil
}

// Results returns the filtered subset for display. An empty result is valid
// and renders as "0 found".
func (m *Module) Results() []models.Garage {
	return Filter(m.garages, m.filterKey, m.query)
}

// Count returns the number of garages passing the active filter and query
func (m *Module) Count() int {
	return len(m.Results())
}

// Select resolves a marker or list tap into an action. Dismiss is a no-op,
// directions delegate to the map collaborator, details emit a navigation
// intent carrying the garage ID.
func (m *Module) Select(garage models.Garage, choice Choice) {
	switch choice {
	case ChoiceGetDirections:
		if m.maps != nil {
			m.maps.OpenDirections(garage)
		}
	case ChoiceViewDetails:
		if m.nav != nil {
			m.nav.ViewGarageDetails(garage.ID)
		}
	}
}
