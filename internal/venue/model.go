// README: Venue records and the static fallback catalog.
package venue

// Venue is a single place the itinerary may cite. The ID is the stable
// place key used in (Source: ...) citations.
type Venue struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
}

// FallbackVenues is served whenever the database yields nothing for a city.
// Keeping a curated Toronto set means generation always has a grounded
// catalog to cite, even with no database at all.
var FallbackVenues = []Venue{
	{
		ID:          "cn_tower",
		Name:        "CN Tower",
		Category:    "Entertainment",
		Address:     "290 Bremner Blvd, Toronto, ON M5V 3L9",
		Description: "Iconic 553m observation tower with glass floor, 360 Restaurant and the EdgeWalk experience overlooking the city and Lake Ontario.",
		SourceURL:   "https://www.cntower.ca/",
	},
	{
		ID:          "rom",
		Name:        "Royal Ontario Museum",
		Category:    "Culture and History",
		Address:     "100 Queens Park, Toronto, ON M5S 2C6",
		Description: "Canada's largest museum of world cultures and natural history, with dinosaur galleries, ancient Egypt collections and the crystal-shaped entrance.",
		SourceURL:   "https://www.rom.on.ca/",
	},
	{
		ID:          "st_lawrence_market",
		Name:        "St. Lawrence Market",
		Category:    "Food and Beverage",
		Address:     "93 Front St E, Toronto, ON M5E 1C3",
		Description: "Historic market hall with over 100 vendors selling fresh produce, baked goods and the famous peameal bacon sandwich.",
		SourceURL:   "https://www.stlawrencemarket.com/",
	},
	{
		ID:          "ripley_aquarium",
		Name:        "Ripley's Aquarium of Canada",
		Category:    "Entertainment",
		Address:     "288 Bremner Blvd, Toronto, ON M5V 3L9",
		Description: "Downtown aquarium with a moving walkway through the Dangerous Lagoon shark tunnel and interactive touch pools.",
		SourceURL:   "https://www.ripleyaquariums.com/canada/",
	},
	{
		ID:          "high_park",
		Name:        "High Park",
		Category:    "Natural Place",
		Address:     "1873 Bloor St W, Toronto, ON M6R 2Z3",
		Description: "Toronto's largest public park featuring hiking trails, Grenadier Pond, a zoo and spring cherry blossoms.",
		SourceURL:   "https://www.toronto.ca/explore-enjoy/parks-gardens-beaches/",
	},
	{
		ID:          "distillery_district",
		Name:        "Distillery District",
		Category:    "Culture and History",
		Address:     "55 Mill St, Toronto, ON M5A 3C4",
		Description: "Pedestrian-only village of Victorian industrial buildings housing galleries, boutiques, cafes and restaurants.",
		SourceURL:   "https://www.thedistillerydistrict.com/",
	},
	{
		ID:          "kensington_market",
		Name:        "Kensington Market",
		Category:    "Food and Beverage",
		Address:     "Kensington Ave, Toronto, ON",
		Description: "Bohemian neighbourhood packed with vintage shops, international food stalls and street art.",
		SourceURL:   "https://www.kensington-market.ca/",
	},
	{
		ID:          "hockey_hall_of_fame",
		Name:        "Hockey Hall of Fame",
		Category:    "Sport",
		Address:     "30 Yonge St, Toronto, ON M5E 1X8",
		Description: "Shrine to ice hockey with the original Stanley Cup, interactive shooting and goaltending games and NHL memorabilia.",
		SourceURL:   "https://www.hhof.com/",
	},
	{
		ID:          "casa_loma",
		Name:        "Casa Loma",
		Category:    "Culture and History",
		Address:     "1 Austin Terrace, Toronto, ON M5R 1X8",
		Description: "Gothic Revival castle with decorated suites, secret passages, an 800-foot tunnel and gardens overlooking downtown.",
		SourceURL:   "https://casaloma.ca/",
	},
	{
		ID:          "ago",
		Name:        "Art Gallery of Ontario",
		Category:    "Culture and History",
		Address:     "317 Dundas St W, Toronto, ON M5T 1G4",
		Description: "One of North America's largest art museums, with Canadian, Indigenous and European collections in a Frank Gehry-designed building.",
		SourceURL:   "https://ago.ca/",
	},
	{
		ID:          "toronto_islands",
		Name:        "Toronto Islands",
		Category:    "Natural Place",
		Address:     "Toronto Islands, Toronto, ON",
		Description: "Car-free island chain a short ferry ride from downtown, with beaches, bike rentals and skyline views.",
		SourceURL:   "https://www.toronto.ca/explore-enjoy/parks-gardens-beaches/toronto-island-park/",
	},
	{
		ID:          "harbourfront_centre",
		Name:        "Harbourfront Centre",
		Category:    "Entertainment",
		Address:     "235 Queens Quay W, Toronto, ON M5J 2G8",
		Description: "Lakeside arts and culture campus with festivals, concerts, craft studios and a winter skating rink.",
		SourceURL:   "https://harbourfrontcentre.com/",
	},
	{
		ID:          "bata_shoe_museum",
		Name:        "Bata Shoe Museum",
		Category:    "Culture and History",
		Address:     "327 Bloor St W, Toronto, ON M5S 1W7",
		Description: "Museum dedicated to footwear spanning 4,500 years, from Chinese bound-foot shoes to celebrity sneakers.",
		SourceURL:   "https://batashoemuseum.ca/",
	},
	{
		ID:          "toronto_zoo",
		Name:        "Toronto Zoo",
		Category:    "Natural Place",
		Address:     "2000 Meadowvale Rd, Toronto, ON M1B 5K7",
		Description: "Canada's largest zoo, home to over 3,000 animals across seven zoogeographic regions including the Tundra Trek.",
		SourceURL:   "https://www.torontozoo.com/",
	},
	{
		ID:          "aga_khan_museum",
		Name:        "Aga Khan Museum",
		Category:    "Culture and History",
		Address:     "77 Wynford Dr, Toronto, ON M3C 1K1",
		Description: "Museum of Islamic art and Muslim civilizations with manuscripts, ceramics and a landscaped park of reflecting pools.",
		SourceURL:   "https://agakhanmuseum.org/",
	},
}
