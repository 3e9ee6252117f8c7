package flight

import (
	"fmt"
	"strings"
)

type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type route struct {
	airlineCode, airline         string
	origin, destination          string
	departure, arrival, duration string
	aircraft                     string
	availableSeats, totalSeats   int
	economy, business, first     float64
}

var airportSeed = []Airport{
	{"DEL", "Indira Gandhi International", "Delhi", "India", "Asia/Kolkata", 28.5562, 77.1000},
	{"BOM", "Chhatrapati Shivaji International", "Mumbai", "India", "Asia/Kolkata", 19.0896, 72.8656},
	{"BLR", "Kempegowda International", "Bangalore", "India", "Asia/Kolkata", 13.1986, 77.7066},
	{"MAA", "Chennai International", "Chennai", "India", "Asia/Kolkata", 12.9941, 80.1709},
	{"CCU", "Netaji Subhas Chandra Bose International", "Kolkata", "India", "Asia/Kolkata", 22.6543, 88.4468},
	{"HYD", "Rajiv Gandhi International", "Hyderabad", "India", "Asia/Kolkata", 17.2313, 78.4298},
	{"PNQ", "Pune Airport", "Pune", "India", "Asia/Kolkata", 18.5793, 73.9089},
	{"AMD", "Sardar Vallabhbhai Patel International", "Ahmedabad", "India", "Asia/Kolkata", 23.0772, 72.6347},

	{"JFK", "John F. Kennedy International", "New York", "USA", "America/New_York", 40.6413, -73.7781},
	{"LAX", "Los Angeles International", "Los Angeles", "USA", "America/Los_Angeles", 33.9425, -118.4081},
	{"LHR", "Heathrow", "London", "UK", "Europe/London", 51.4700, -0.4543},
	{"CDG", "Charles de Gaulle", "Paris", "France", "Europe/Paris", 49.0097, 2.5479},
	{"FRA", "Frankfurt am Main", "Frankfurt", "Germany", "Europe/Berlin", 50.0379, 8.5622},
	{"NRT", "Narita International", "Tokyo", "Japan", "Asia/Tokyo", 35.7720, 140.3929},
	{"HND", "Haneda", "Tokyo", "Japan", "Asia/Tokyo", 35.5494, 139.7798},
	{"ICN", "Incheon International", "Seoul", "South Korea", "Asia/Seoul", 37.4602, 126.4407},
	{"SIN", "Singapore Changi", "Singapore", "Singapore", "Asia/Singapore", 1.3644, 103.9915},
	{"DXB", "Dubai International", "Dubai", "UAE", "Asia/Dubai", 25.2532, 55.3657},
	{"DOH", "Hamad International", "Doha", "Qatar", "Asia/Qatar", 25.2606, 51.6138},
	{"IST", "Istanbul Airport", "Istanbul", "Turkey", "Europe/Istanbul", 41.2619, 28.7279},
	{"SYD", "Sydney Kingsford Smith", "Sydney", "Australia", "Australia/Sydney", -33.9399, 151.1753},
	{"MEL", "Melbourne Tullamarine", "Melbourne", "Australia", "Australia/Melbourne", -37.6690, 144.8410},
	{"YYZ", "Toronto Pearson International", "Toronto", "Canada", "America/Toronto", 43.6777, -79.6248},
	{"YVR", "Vancouver International", "Vancouver", "Canada", "America/Vancouver", 49.1967, -123.1815},

	{"BCN", "Barcelona El Prat", "Barcelona", "Spain", "Europe/Madrid", 41.2974, 2.0833},
	{"MAD", "Adolfo Suárez Madrid-Barajas", "Madrid", "Spain", "Europe/Madrid", 40.4719, -3.5626},
	{"FCO", "Leonardo da Vinci–Fiumicino", "Rome", "Italy", "Europe/Rome", 41.8003, 12.2389},
	{"MXP", "Milan Malpensa", "Milan", "Italy", "Europe/Rome", 45.6300, 8.7231},
	{"AMS", "Amsterdam Schiphol", "Amsterdam", "Netherlands", "Europe/Amsterdam", 52.3105, 4.7683},
	{"ZUR", "Zurich Airport", "Zurich", "Switzerland", "Europe/Zurich", 47.4647, 8.5492},
	{"VIE", "Vienna International", "Vienna", "Austria", "Europe/Vienna", 48.1103, 16.5697},

	{"BKK", "Suvarnabhumi", "Bangkok", "Thailand", "Asia/Bangkok", 13.6900, 100.7501},
	{"KUL", "Kuala Lumpur International", "Kuala Lumpur", "Malaysia", "Asia/Kuala_Lumpur", 2.7456, 101.7072},
	{"CGK", "Soekarno-Hatta International", "Jakarta", "Indonesia", "Asia/Jakarta", -6.1275, 106.6537},
	{"MNL", "Ninoy Aquino International", "Manila", "Philippines", "Asia/Manila", 14.5086, 121.0194},
	{"HKG", "Hong Kong International", "Hong Kong", "China", "Asia/Hong_Kong", 22.3080, 113.9185},
	{"PVG", "Shanghai Pudong International", "Shanghai", "China", "Asia/Shanghai", 31.1443, 121.8083},
	{"PEK", "Beijing Capital International", "Beijing", "China", "Asia/Shanghai", 40.0799, 116.6031},
	{"CAN", "Guangzhou Baiyun International", "Guangzhou", "China", "Asia/Shanghai", 23.3924, 113.2988},
}

// Flight ids are derived from a route's position, so order matters.
var routeSeed = []route{
	{"AI", "Air India", "DEL", "BOM", "02:15", "04:45", "2h 30m", "Boeing 787", 180, 350, 8500, 25000, 75000},
	{"6E", "IndiGo", "DEL", "BLR", "06:00", "08:45", "2h 45m", "Airbus A320", 156, 180, 7200, 22000, 65000},
	{"SG", "SpiceJet", "BOM", "MAA", "14:30", "16:15", "1h 45m", "Boeing 737", 145, 189, 6800, 20000, 58000},
	{"UK", "Vistara", "DEL", "HYD", "09:15", "11:30", "2h 15m", "Airbus A321", 158, 188, 7800, 24000, 68000},
	{"6E", "IndiGo", "BOM", "CCU", "19:20", "21:45", "2h 25m", "Airbus A320", 162, 180, 8200, 26000, 70000},
	{"AI", "Air India", "BLR", "DEL", "22:30", "01:15", "2h 45m", "Boeing 787", 175, 350, 8800, 27000, 78000},

	{"AI", "Air India", "DEL", "JFK", "01:30", "06:45", "14h 15m", "Boeing 777", 245, 370, 65000, 185000, 420000},
	{"EK", "Emirates", "BOM", "DXB", "03:15", "05:45", "3h 30m", "Airbus A380", 280, 615, 22000, 65000, 145000},
	{"QR", "Qatar Airways", "DEL", "DOH", "02:45", "04:30", "4h 45m", "Boeing 787", 210, 335, 28000, 82000, 185000},
	{"TK", "Turkish Airlines", "BOM", "IST", "01:20", "06:15", "7h 55m", "Airbus A330", 198, 289, 35000, 95000, 210000},
	{"LH", "Lufthansa", "DEL", "FRA", "01:45", "06:30", "7h 45m", "Airbus A340", 185, 298, 42000, 115000, 245000},
	{"BA", "British Airways", "BOM", "LHR", "02:30", "07:15", "9h 45m", "Boeing 787", 216, 337, 48000, 125000, 285000},
	{"AF", "Air France", "DEL", "CDG", "01:15", "06:45", "8h 30m", "Airbus A350", 205, 324, 45000, 120000, 275000},
	{"SQ", "Singapore Airlines", "BOM", "SIN", "23:45", "06:30", "5h 45m", "Airbus A350", 195, 337, 32000, 88000, 195000},
	{"JL", "Japan Airlines", "DEL", "NRT", "00:30", "13:15", "9h 45m", "Boeing 787", 0, 335, 52000, 135000, 295000},
	{"KE", "Korean Air", "BOM", "ICN", "01:45", "14:30", "8h 45m", "Boeing 777", 201, 368, 48000, 128000, 285000},
	{"NH", "ANA", "DEL", "HND", "02:15", "15:30", "10h 15m", "Boeing 777", 189, 350, 55000, 140000, 300000},
	{"JL", "Japan Airlines", "DEL", "HND", "08:45", "21:30", "9h 45m", "Boeing 777", 156, 335, 58000, 148000, 315000},

	{"AA", "American Airlines", "JFK", "LAX", "08:00", "11:30", "6h 30m", "Boeing 777", 220, 365, 45000, 125000, 285000},
	{"DL", "Delta", "LAX", "JFK", "23:30", "07:45", "5h 15m", "Airbus A330", 198, 293, 42000, 118000, 265000},
	{"BA", "British Airways", "LHR", "JFK", "10:15", "13:30", "8h 15m", "Boeing 747", 245, 469, 38000, 105000, 235000},
	{"VS", "Virgin Atlantic", "JFK", "LHR", "21:15", "08:30", "7h 15m", "Airbus A340", 205, 343, 40000, 110000, 245000},
	{"LH", "Lufthansa", "FRA", "JFK", "14:30", "17:45", "8h 15m", "Airbus A380", 320, 526, 45000, 125000, 285000},
	{"AF", "Air France", "CDG", "JFK", "11:20", "14:15", "8h 55m", "Boeing 777", 235, 381, 43000, 120000, 275000},
	{"KL", "KLM", "AMS", "JFK", "10:45", "13:20", "8h 35m", "Boeing 787", 215, 344, 41000, 115000, 265000},
	{"SQ", "Singapore Airlines", "SIN", "JFK", "23:35", "06:30", "18h 55m", "Airbus A350", 185, 337, 85000, 225000, 485000},

	{"CX", "Cathay Pacific", "HKG", "NRT", "08:15", "13:45", "3h 30m", "Airbus A330", 168, 298, 25000, 68000, 145000},
	{"NH", "ANA", "NRT", "ICN", "18:30", "21:15", "2h 45m", "Boeing 787", 145, 335, 22000, 62000, 135000},
	{"TG", "Thai Airways", "BKK", "SIN", "14:20", "17:40", "2h 20m", "Airbus A330", 155, 289, 18000, 52000, 115000},
	{"MH", "Malaysia Airlines", "KUL", "SIN", "19:45", "20:50", "1h 5m", "Boeing 737", 138, 189, 8500, 25000, 55000},
	{"PR", "Philippine Airlines", "MNL", "HKG", "07:30", "09:15", "1h 45m", "Airbus A321", 142, 199, 12000, 35000, 78000},

	{"LH", "Lufthansa", "FRA", "LHR", "15:20", "16:05", "1h 45m", "Airbus A320", 148, 180, 18000, 52000, 115000},
	{"AF", "Air France", "CDG", "FRA", "12:30", "14:15", "1h 45m", "Airbus A319", 124, 156, 16000, 48000, 105000},
	{"KL", "KLM", "AMS", "LHR", "16:45", "17:15", "1h 30m", "Boeing 737", 135, 189, 15000, 45000, 98000},
	{"BA", "British Airways", "LHR", "CDG", "18:20", "20:45", "1h 25m", "Airbus A320", 144, 180, 16500, 49000, 108000},
	{"IB", "Iberia", "MAD", "LHR", "11:15", "12:30", "2h 15m", "Airbus A330", 165, 289, 22000, 65000, 142000},

	{"QF", "Qantas", "SYD", "MEL", "07:00", "08:25", "1h 25m", "Boeing 737", 138, 189, 12000, 35000, 78000},
	{"JQ", "Jetstar", "MEL", "SYD", "19:30", "20:55", "1h 25m", "Airbus A320", 145, 180, 11500, 32000, 72000},
	{"QF", "Qantas", "SYD", "SIN", "21:35", "05:25", "8h 50m", "Airbus A380", 295, 484, 45000, 125000, 285000},
	{"SQ", "Singapore Airlines", "SIN", "SYD", "01:20", "12:15", "7h 55m", "Boeing 777", 218, 368, 42000, 118000, 265000},
}

var indiaNeighbours = map[string]bool{
	"Pakistan": true, "Bangladesh": true, "Sri Lanka": true, "Nepal": true, "Bhutan": true, "Myanmar": true,
}

func routeType(originCountry, destCountry string) string {
	switch {
	case originCountry == destCountry:
		return "domestic"
	case originCountry == "India" && indiaNeighbours[destCountry]:
		return "regional"
	default:
		return "international"
	}
}

// buildFlights materialises the seed routes into fresh, independently
// mutable flight records.
func buildFlights(airports map[string]Airport) (map[string]*Flight, []string) {
	flights := make(map[string]*Flight, len(routeSeed))
	order := make([]string, 0, len(routeSeed))
	for i, r := range routeSeed {
		id := fmt.Sprintf("%s%d", r.airlineCode, 1000+i)
		origin, dest := airports[r.origin], airports[r.destination]
		flights[id] = &Flight{
			ID:              id,
			Airline:         r.airline,
			AirlineCode:     r.airlineCode,
			Number:          fmt.Sprintf("%s %d", r.airlineCode, 1000+i),
			Origin:          origin.City,
			OriginCode:      r.origin,
			Destination:     dest.City,
			DestinationCode: r.destination,
			DepartureTime:   r.departure,
			ArrivalTime:     r.arrival,
			Duration:        r.duration,
			Aircraft:        r.aircraft,
			AvailableSeats:  r.availableSeats,
			TotalSeats:      r.totalSeats,
			PriceEconomy:    r.economy,
			PriceBusiness:   r.business,
			PriceFirst:      r.first,
			RouteType:       routeType(origin.Country, dest.Country),
		}
		order = append(order, id)
	}
	return flights, order
}

func buildAirports() (map[string]Airport, int) {
	airports := make(map[string]Airport, len(airportSeed)*2)
	for _, a := range airportSeed {
		airports[a.Code] = a
		airports[strings.ToLower(a.City)] = a
	}
	return airports, len(airportSeed)
}
