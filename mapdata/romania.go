package mapdata

// RomaniaTarget is the city the built-in straight-line table is measured to.
const RomaniaTarget = "Bucharest"

// Romania returns a fresh copy of the classic 20-city Romania road map with
// straight-line distances to Bucharest. Callers may modify the result.
func Romania() *Map {
	m := &Map{
		Name:   "romania",
		Target: RomaniaTarget,
		Cities: []City{
			{Name: "Arad", X: 91, Y: 492},
			{Name: "Bucharest", X: 400, Y: 327},
			{Name: "Craiova", X: 253, Y: 288},
			{Name: "Drobeta", X: 165, Y: 299},
			{Name: "Eforie", X: 562, Y: 293},
			{Name: "Fagaras", X: 305, Y: 449},
			{Name: "Giurgiu", X: 375, Y: 270},
			{Name: "Hirsova", X: 534, Y: 350},
			{Name: "Iasi", X: 473, Y: 506},
			{Name: "Lugoj", X: 165, Y: 379},
			{Name: "Mehadia", X: 168, Y: 339},
			{Name: "Neamt", X: 406, Y: 537},
			{Name: "Oradea", X: 131, Y: 571},
			{Name: "Pitesti", X: 320, Y: 368},
			{Name: "Rimnicu Vilcea", X: 233, Y: 410},
			{Name: "Sibiu", X: 207, Y: 457},
			{Name: "Timisoara", X: 94, Y: 410},
			{Name: "Urziceni", X: 456, Y: 350},
			{Name: "Vaslui", X: 509, Y: 444},
			{Name: "Zerind", X: 108, Y: 531},
		},
		Roads: []Road{
			{From: "Arad", To: "Zerind", Distance: 75},
			{From: "Arad", To: "Sibiu", Distance: 140},
			{From: "Arad", To: "Timisoara", Distance: 118},
			{From: "Bucharest", To: "Urziceni", Distance: 85},
			{From: "Bucharest", To: "Pitesti", Distance: 101},
			{From: "Bucharest", To: "Giurgiu", Distance: 90},
			{From: "Bucharest", To: "Fagaras", Distance: 211},
			{From: "Craiova", To: "Drobeta", Distance: 120},
			{From: "Craiova", To: "Rimnicu Vilcea", Distance: 146},
			{From: "Craiova", To: "Pitesti", Distance: 138},
			{From: "Drobeta", To: "Mehadia", Distance: 75},
			{From: "Eforie", To: "Hirsova", Distance: 86},
			{From: "Fagaras", To: "Sibiu", Distance: 99},
			{From: "Hirsova", To: "Urziceni", Distance: 98},
			{From: "Iasi", To: "Vaslui", Distance: 92},
			{From: "Iasi", To: "Neamt", Distance: 87},
			{From: "Lugoj", To: "Timisoara", Distance: 111},
			{From: "Lugoj", To: "Mehadia", Distance: 70},
			{From: "Oradea", To: "Zerind", Distance: 71},
			{From: "Oradea", To: "Sibiu", Distance: 151},
			{From: "Pitesti", To: "Rimnicu Vilcea", Distance: 97},
			{From: "Rimnicu Vilcea", To: "Sibiu", Distance: 80},
			{From: "Urziceni", To: "Vaslui", Distance: 142},
		},
		StraightLine: map[string]float64{
			"Arad":           366,
			"Bucharest":      0,
			"Craiova":        160,
			"Drobeta":        242,
			"Eforie":         161,
			"Fagaras":        176,
			"Giurgiu":        77,
			"Hirsova":        151,
			"Iasi":           226,
			"Lugoj":          244,
			"Mehadia":        241,
			"Neamt":          234,
			"Oradea":         380,
			"Pitesti":        100,
			"Rimnicu Vilcea": 193,
			"Sibiu":          253,
			"Timisoara":      329,
			"Urziceni":       80,
			"Vaslui":         199,
			"Zerind":         374,
		},
	}

	return m
}
