package cab

type City struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Timezone    string  `json:"timezone"`
	SurgeFactor float64 `json:"surge_factor"`
}

type Vehicle struct {
	Type        string   `json:"type"`
	BaseRate    float64  `json:"base_rate"`
	PerKM       float64  `json:"per_km"`
	Capacity    int      `json:"capacity"`
	Models      []string `json:"models"`
	Features    []string `json:"features"`
	Description string   `json:"description"`
}

var citySeed = []City{
	{"Mumbai", "India", "Asia/Kolkata", 1.2},
	{"Delhi", "India", "Asia/Kolkata", 1.1},
	{"Bangalore", "India", "Asia/Kolkata", 1.3},
	{"Chennai", "India", "Asia/Kolkata", 1.1},
	{"Kolkata", "India", "Asia/Kolkata", 1.0},
	{"Hyderabad", "India", "Asia/Kolkata", 1.2},
	{"Pune", "India", "Asia/Kolkata", 1.1},
	{"Gurgaon", "India", "Asia/Kolkata", 1.4},

	{"New York", "USA", "America/New_York", 1.5},
	{"London", "UK", "Europe/London", 1.3},
	{"Paris", "France", "Europe/Paris", 1.2},
	{"Tokyo", "Japan", "Asia/Tokyo", 1.6},
	{"Singapore", "Singapore", "Asia/Singapore", 1.4},
	{"Dubai", "UAE", "Asia/Dubai", 1.3},
	{"Sydney", "Australia", "Australia/Sydney", 1.2},
	{"San Francisco", "USA", "America/Los_Angeles", 1.7},
	{"Toronto", "Canada", "America/Toronto", 1.2},
	{"Bangkok", "Thailand", "Asia/Bangkok", 1.1},
	{"Hong Kong", "Hong Kong", "Asia/Hong_Kong", 1.4},
	{"Berlin", "Germany", "Europe/Berlin", 1.1},
	{"Amsterdam", "Netherlands", "Europe/Amsterdam", 1.2},
	{"Stockholm", "Sweden", "Europe/Stockholm", 1.3},
	{"Zurich", "Switzerland", "Europe/Zurich", 1.5},
	{"Milan", "Italy", "Europe/Rome", 1.2},
	{"Barcelona", "Spain", "Europe/Madrid", 1.1},
	{"Vienna", "Austria", "Europe/Vienna", 1.2},
	{"Copenhagen", "Denmark", "Europe/Copenhagen", 1.3},
	{"Oslo", "Norway", "Europe/Oslo", 1.4},
	{"Helsinki", "Finland", "Europe/Helsinki", 1.2},
	{"Brussels", "Belgium", "Europe/Brussels", 1.1},
	{"Prague", "Czech Republic", "Europe/Prague", 1.0},
	{"Budapest", "Hungary", "Europe/Budapest", 0.9},
	{"Warsaw", "Poland", "Europe/Warsaw", 0.8},
	{"Moscow", "Russia", "Europe/Moscow", 1.0},
	{"Istanbul", "Turkey", "Europe/Istanbul", 0.9},
	{"Cairo", "Egypt", "Africa/Cairo", 0.7},
	{"Tel Aviv", "Israel", "Asia/Jerusalem", 1.2},
	{"Seoul", "South Korea", "Asia/Seoul", 1.3},
	{"Beijing", "China", "Asia/Shanghai", 1.1},
	{"Shanghai", "China", "Asia/Shanghai", 1.2},
	{"Kuala Lumpur", "Malaysia", "Asia/Kuala_Lumpur", 1.0},
}

var vehicleSeed = []Vehicle{
	{
		Type: "Sedan", BaseRate: 12, PerKM: 8, Capacity: 4,
		Models:      []string{"Toyota Camry", "Honda Accord", "Hyundai Elantra", "Maruti Dzire", "Tata Tigor"},
		Features:    []string{"AC", "GPS", "Music System", "Phone Charger"},
		Description: "Comfortable sedan for city rides",
	},
	{
		Type: "SUV", BaseRate: 18, PerKM: 12, Capacity: 7,
		Models:      []string{"Toyota Innova", "Mahindra XUV500", "Ford Endeavour", "Hyundai Creta", "Tata Safari"},
		Features:    []string{"AC", "GPS", "Music System", "Phone Charger", "Extra Luggage Space"},
		Description: "Spacious SUV for families and groups",
	},
	{
		Type: "Luxury", BaseRate: 35, PerKM: 25, Capacity: 4,
		Models:      []string{"Mercedes E-Class", "BMW 5 Series", "Audi A6", "Jaguar XF", "Volvo S90"},
		Features:    []string{"Premium AC", "GPS", "Premium Sound", "WiFi", "Leather Seats", "Chauffeur"},
		Description: "Premium luxury vehicles with professional chauffeurs",
	},
	{
		Type: "Electric", BaseRate: 15, PerKM: 10, Capacity: 4,
		Models:      []string{"Tesla Model 3", "Tata Nexon EV", "Hyundai Kona Electric", "MG ZS EV", "BMW i3"},
		Features:    []string{"Silent Drive", "Eco-Friendly", "GPS", "AC", "Fast Charging"},
		Description: "Eco-friendly electric vehicles",
	},
}

var driverSeed = []string{
	"Rajesh Kumar", "Amit Singh", "Pradeep Sharma", "Suresh Yadav", "Vikash Gupta",
	"Mohammad Ali", "Ravi Verma", "Santosh Jain", "Deepak Tiwari", "Ajay Mehta",
	"John Smith", "Michael Johnson", "David Brown", "James Wilson", "Robert Davis",
	"Wei Chen", "Hiroshi Tanaka", "Ahmed Hassan", "Carlos Rodriguez", "Pierre Martin",
}

var (
	plateStates = []string{"DL", "MH", "KA", "TN"}
	plateSeries = []string{"AB", "CD", "EF"}
)
