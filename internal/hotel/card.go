package hotel

import "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"

func Card(url string) a2a.AgentCard {
	modes := []string{"text", "data"}
	return a2a.AgentCard{
		Name:        "Hotel Booking Agent",
		Description: "Books hotels across 53 destinations with category, room type and peak-season pricing",
		URL:         url,
		Version:     "2.0.0",
		Skills: []a2a.AgentSkill{{
			ID:          ActionBook,
			Name:        ActionBook,
			Description: "Book a hotel stay with amenities, policies and a full pricing breakdown",
			Tags:        []string{"hotel", "booking", "accommodation"},
			InputModes:  modes,
			OutputModes: modes,
		}},
		DefaultInputModes:  modes,
		DefaultOutputModes: modes,
	}
}
