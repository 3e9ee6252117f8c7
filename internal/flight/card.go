package flight

import "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"

// Card describes the flight agent for discovery. An empty url is filled in
// from the request host when served.
func Card(url string) a2a.AgentCard {
	skill := func(id, desc string, tags ...string) a2a.AgentSkill {
		return a2a.AgentSkill{ID: id, Name: id, Description: desc, InputModes: []string{"text", "data"}, OutputModes: []string{"text", "data"}, Tags: tags}
	}
	return a2a.AgentCard{
		Name:        "Flight Booking Agent",
		Description: "Searches, books, rebooks and cancels flights on a global route table",
		URL:         url,
		Version:     "2.0.0",
		Skills: []a2a.AgentSkill{
			skill(ActionSearch, "Search for available flights between cities", "flights", "search"),
			skill(ActionComprehensive, "Book the best flight on a route with a full itinerary", "flights", "booking"),
			skill(ActionBook, "Book a specific flight", "flights", "booking"),
			skill(ActionRebook, "Move an existing booking to a different flight", "flights", "rebooking"),
			skill(ActionCancel, "Cancel an existing flight booking", "flights", "cancellation"),
			skill(ActionFindAlternatives, "Find alternative flights for rebooking", "flights", "alternatives"),
			skill(ActionStats, "Get flight database statistics", "statistics"),
		},
		DefaultInputModes:  []string{"text", "data"},
		DefaultOutputModes: []string{"text", "data"},
	}
}
