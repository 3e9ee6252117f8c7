package cab

import "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"

func Card(url string) a2a.AgentCard {
	modes := []string{"text", "data"}
	return a2a.AgentCard{
		Name:        "Cab Booking Agent",
		Description: "Books airport transfers in 41 cities with vehicle, driver and surge-priced fare details",
		URL:         url,
		Version:     "2.0.0",
		Skills: []a2a.AgentSkill{{
			ID:          ActionBook,
			Name:        ActionBook,
			Description: "Book a cab with vehicle type, driver information and a fare breakdown",
			Tags:        []string{"cab", "booking", "transport"},
			InputModes:  modes,
			OutputModes: modes,
		}},
		DefaultInputModes:  modes,
		DefaultOutputModes: modes,
	}
}
