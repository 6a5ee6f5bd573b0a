package catalog

import (
	"net/http"

	"gulffloat/utils"

	"github.com/julienschmidt/httprouter"
)

// Service is a catalog entry. The catalog is defined at process start and
// never mutated, so handlers may read it without locking.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Description string  `json:"description"`
}

// Operating window shown to clients; not enforced on cart mutations.
const (
	OpeningTime = "09:00"
	ClosingTime = "23:00"
)

var services = map[string]Service{
	"crystal_kayak": {
		ID:          "crystal_kayak",
		Name:        "Crystal-Clear Kayak Rental (2 person)",
		Price:       60.0,
		Duration:    "hourly",
		Description: "See straight through to the emerald Gulf floor in a fully transparent two-seater kayak.",
	},
	"canoe": {
		ID:          "canoe",
		Name:        "Canoe Rental (2+ people)",
		Price:       75.0,
		Duration:    "hourly",
		Description: "Roomy canoe for families and groups, paddles and life jackets included.",
	},
	"paddle_board": {
		ID:          "paddle_board",
		Name:        "Paddle Board Rental",
		Price:       75.0,
		Duration:    "hourly",
		Description: "Stand-up paddle board with adjustable paddle and ankle leash.",
	},
	"luxury_cabana_hourly": {
		ID:          "luxury_cabana_hourly",
		Name:        "Luxury Floating Cabana (per person per hour)",
		Price:       50.0,
		Duration:    "hourly",
		Description: "Shaded floating cabana with seating, anchored just off the beach.",
	},
	"luxury_cabana_3hr": {
		ID:          "luxury_cabana_3hr",
		Name:        "Luxury Floating Cabana (3 hours)",
		Price:       100.0,
		Duration:    "3 hours",
		Description: "Three full hours on a private floating cabana.",
	},
	"luxury_cabana_4hr": {
		ID:          "luxury_cabana_4hr",
		Name:        "Luxury Floating Cabana (4 hours, 6 person max)",
		Price:       400.0,
		Duration:    "4 hours",
		Description: "Our largest cabana for the afternoon, up to six guests.",
	},
}

// Lookup returns the catalog entry for id. A missing id is an ordinary
// not-found, never an error.
func Lookup(id string) (Service, bool) {
	s, ok := services[id]
	return s, ok
}

// All returns the full catalog keyed by service id.
func All() map[string]Service {
	return services
}

// GetServices handles GET /api/services
func GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"services": services,
		"operating_hours": utils.M{
			"open":  OpeningTime,
			"close": ClosingTime,
		},
	})
}
