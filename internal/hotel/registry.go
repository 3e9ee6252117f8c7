package hotel

type City struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Timezone   string  `json:"timezone"`
	PeakFactor float64 `json:"peak_factor"`
}

type Category struct {
	Name        string   `json:"name"`
	StarRating  string   `json:"star_rating"`
	BaseRate    float64  `json:"base_rate"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Brands      []string `json:"brands"`
}

type RoomType struct {
	Name           string  `json:"type"`
	Occupancy      int     `json:"occupancy"`
	Beds           string  `json:"beds"`
	Size           string  `json:"size"`
	RateMultiplier float64 `json:"-"`
}

var citySeed = []City{
	{"Mumbai", "India", "Asia/Kolkata", 1.3},
	{"Delhi", "India", "Asia/Kolkata", 1.2},
	{"Bangalore", "India", "Asia/Kolkata", 1.4},
	{"Chennai", "India", "Asia/Kolkata", 1.2},
	{"Kolkata", "India", "Asia/Kolkata", 1.1},
	{"Hyderabad", "India", "Asia/Kolkata", 1.3},
	{"Pune", "India", "Asia/Kolkata", 1.2},
	{"Goa", "India", "Asia/Kolkata", 1.8},
	{"Jaipur", "India", "Asia/Kolkata", 1.4},
	{"Udaipur", "India", "Asia/Kolkata", 1.6},

	{"New York", "USA", "America/New_York", 2.0},
	{"London", "UK", "Europe/London", 1.8},
	{"Paris", "France", "Europe/Paris", 1.9},
	{"Tokyo", "Japan", "Asia/Tokyo", 2.2},
	{"Singapore", "Singapore", "Asia/Singapore", 1.7},
	{"Dubai", "UAE", "Asia/Dubai", 1.9},
	{"Sydney", "Australia", "Australia/Sydney", 1.6},
	{"San Francisco", "USA", "America/Los_Angeles", 2.1},
	{"Toronto", "Canada", "America/Toronto", 1.5},
	{"Bangkok", "Thailand", "Asia/Bangkok", 1.3},
	{"Hong Kong", "Hong Kong", "Asia/Hong_Kong", 1.8},
	{"Berlin", "Germany", "Europe/Berlin", 1.4},
	{"Amsterdam", "Netherlands", "Europe/Amsterdam", 1.6},
	{"Stockholm", "Sweden", "Europe/Stockholm", 1.5},
	{"Zurich", "Switzerland", "Europe/Zurich", 2.0},
	{"Milan", "Italy", "Europe/Rome", 1.7},
	{"Barcelona", "Spain", "Europe/Madrid", 1.5},
	{"Vienna", "Austria", "Europe/Vienna", 1.6},
	{"Copenhagen", "Denmark", "Europe/Copenhagen", 1.7},
	{"Oslo", "Norway", "Europe/Oslo", 1.8},
	{"Helsinki", "Finland", "Europe/Helsinki", 1.5},
	{"Brussels", "Belgium", "Europe/Brussels", 1.4},
	{"Prague", "Czech Republic", "Europe/Prague", 1.2},
	{"Budapest", "Hungary", "Europe/Budapest", 1.1},
	{"Warsaw", "Poland", "Europe/Warsaw", 1.0},
	{"Moscow", "Russia", "Europe/Moscow", 1.3},
	{"Istanbul", "Turkey", "Europe/Istanbul", 1.2},
	{"Cairo", "Egypt", "Africa/Cairo", 1.0},
	{"Tel Aviv", "Israel", "Asia/Jerusalem", 1.6},
	{"Seoul", "South Korea", "Asia/Seoul", 1.7},
	{"Beijing", "China", "Asia/Shanghai", 1.5},
	{"Shanghai", "China", "Asia/Shanghai", 1.6},
	{"Kuala Lumpur", "Malaysia", "Asia/Kuala_Lumpur", 1.3},
	{"Jakarta", "Indonesia", "Asia/Jakarta", 1.2},
	{"Manila", "Philippines", "Asia/Manila", 1.1},
	{"Ho Chi Minh City", "Vietnam", "Asia/Ho_Chi_Minh", 1.0},
	{"Bali", "Indonesia", "Asia/Makassar", 1.8},
	{"Phuket", "Thailand", "Asia/Bangkok", 1.6},
	{"Maldives", "Maldives", "Indian/Maldives", 2.5},
	{"Mauritius", "Mauritius", "Indian/Mauritius", 2.0},
	{"Seychelles", "Seychelles", "Indian/Mahe", 2.3},
	{"Santorini", "Greece", "Europe/Athens", 2.1},
	{"Mykonos", "Greece", "Europe/Athens", 2.0},
}

// Category order is the search order.
var categorySeed = []Category{
	{
		Name:        "Budget",
		StarRating:  "2-3",
		BaseRate:    2500,
		Amenities:   []string{"WiFi", "AC", "24/7 Reception", "Room Service"},
		Description: "Comfortable budget accommodation with essential amenities",
		Brands:      []string{"OYO", "Treebo", "FabHotels", "RedDoorz", "Zostel"},
	},
	{
		Name:        "Business",
		StarRating:  "3-4",
		BaseRate:    6000,
		Amenities:   []string{"WiFi", "AC", "Business Center", "Conference Rooms", "Gym", "Restaurant"},
		Description: "Professional business hotels with modern facilities",
		Brands:      []string{"Lemon Tree", "Sarovar", "Country Inn", "Park Inn", "Holiday Inn Express"},
	},
	{
		Name:        "Luxury",
		StarRating:  "4-5",
		BaseRate:    15000,
		Amenities:   []string{"Premium WiFi", "Spa", "Pool", "Fine Dining", "Concierge", "Valet", "Butler Service"},
		Description: "Luxury hotels with premium amenities and services",
		Brands:      []string{"Taj", "Oberoi", "ITC", "Hyatt", "Marriott", "Hilton", "Four Seasons"},
	},
	{
		Name:        "Resort",
		StarRating:  "4-5",
		BaseRate:    20000,
		Amenities:   []string{"All-Inclusive", "Multiple Pools", "Spa", "Water Sports", "Kids Club", "Entertainment"},
		Description: "Resort properties with recreational facilities and activities",
		Brands:      []string{"Club Mahindra", "Sterling", "Radisson Blu Resort", "Le Meridien Resort", "Grand Hyatt"},
	},
}

var roomSeed = []RoomType{
	{"Single", 1, "1 Single Bed", "180-220 sq ft", 1.0},
	{"Double", 2, "1 Double Bed or 2 Single Beds", "250-300 sq ft", 1.3},
	{"Suite", 3, "1 King Bed + Sofa Bed", "400-600 sq ft", 2.0},
	{"Family", 4, "2 Double Beds or 1 King + 2 Single", "350-450 sq ft", 1.8},
}

// categoriesForRating narrows the categories by a requested star rating.
func categoriesForRating(rating int) []string {
	switch rating {
	case 4:
		return []string{"Business", "Luxury"}
	case 5:
		return []string{"Luxury", "Resort"}
	default:
		return nil
	}
}
