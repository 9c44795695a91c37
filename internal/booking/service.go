// README: Deep links to accommodation and transportation providers.
package booking

import (
	"fmt"
	"net/url"
	"strings"

	"wayfarer/internal/prefs"
)

// cityTravel carries the Skyscanner airport code and the Busbud slug and
// geohash for the Canadian cities the planner knows how to route between.
type cityTravel struct {
	IATA    string
	Slug    string
	Geohash string
}

var cityTravelInfo = map[string]cityTravel{
	"toronto":     {IATA: "yto", Slug: "toronto-ontario", Geohash: "dpz88g"},
	"ottawa":      {IATA: "yow", Slug: "ottawa-ontario", Geohash: "f241fd"},
	"montreal":    {IATA: "ymq", Slug: "montreal-quebec", Geohash: "f25dvk"},
	"vancouver":   {IATA: "yvr", Slug: "vancouver-british-columbia", Geohash: "c2b2nq"},
	"calgary":     {IATA: "yyc", Slug: "calgary-alberta", Geohash: "c3nfnj"},
	"edmonton":    {IATA: "yeg", Slug: "edmonton-alberta", Geohash: "c3x48d"},
	"winnipeg":    {IATA: "ywg", Slug: "winnipeg-manitoba", Geohash: "cbfg5u"},
	"halifax":     {IATA: "yhz", Slug: "halifax-nova-scotia", Geohash: "dxgyzk"},
	"quebec city": {IATA: "yqb", Slug: "quebec-city-quebec", Geohash: "f2m673"},
	"kingston":    {IATA: "ygk", Slug: "kingston-ontario", Geohash: "drdc32"},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Links builds provider deep links according to the stated booking intent.
// Missing prerequisites simply drop the affected link rather than failing
// the enrichment.
func (s *Service) Links(p prefs.TripPreferences) map[string]string {
	links := map[string]string{}
	if p.BookingIntent == prefs.BookingNone || p.BookingIntent == "" {
		return links
	}

	wantStay := p.BookingIntent == prefs.BookingAccommodation || p.BookingIntent == prefs.BookingBoth
	wantTravel := p.BookingIntent == prefs.BookingTransportation || p.BookingIntent == prefs.BookingBoth

	if wantStay {
		if link := airbnbLink(p); link != "" {
			links["airbnb"] = link
		}
	}
	if wantTravel && p.SourceLocation != "" {
		if link := skyscannerLink(p); link != "" {
			links["skyscanner"] = link
		}
		if link := busbudLink(p); link != "" {
			links["busbud"] = link
		}
	}
	return links
}

func airbnbLink(p prefs.TripPreferences) string {
	if p.City == "" || p.StartDate == "" || p.EndDate == "" {
		return ""
	}
	dest := p.City
	if p.Country != "" {
		dest = p.City + ", " + p.Country
	}
	q := url.Values{}
	q.Set("checkin", p.StartDate)
	q.Set("checkout", p.EndDate)
	q.Set("adults", "2")
	return fmt.Sprintf("https://www.airbnb.ca/s/%s/homes?%s", url.QueryEscape(dest), q.Encode())
}

func skyscannerLink(p prefs.TripPreferences) string {
	from, okFrom := cityTravelInfo[strings.ToLower(p.SourceLocation)]
	to, okTo := cityTravelInfo[strings.ToLower(p.City)]
	if !okFrom || !okTo || len(p.StartDate) != 10 || len(p.EndDate) != 10 {
		return ""
	}
	// Skyscanner uses YYMMDD path segments.
	out := strings.ReplaceAll(p.StartDate[2:], "-", "")
	back := strings.ReplaceAll(p.EndDate[2:], "-", "")
	return fmt.Sprintf("https://www.skyscanner.ca/transport/flights/%s/%s/%s/%s/",
		from.IATA, to.IATA, out, back)
}

func busbudLink(p prefs.TripPreferences) string {
	from, okFrom := cityTravelInfo[strings.ToLower(p.SourceLocation)]
	to, okTo := cityTravelInfo[strings.ToLower(p.City)]
	if !okFrom || !okTo || p.StartDate == "" || p.EndDate == "" {
		return ""
	}
	q := url.Values{}
	q.Set("outbound_date", p.StartDate)
	q.Set("return_date", p.EndDate)
	return fmt.Sprintf("https://www.busbud.com/en-ca/bus-%s-%s/r/%s-%s?%s",
		from.Slug, to.Slug, from.Geohash, to.Geohash, q.Encode())
}
