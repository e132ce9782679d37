package feed

import (
	"sort"

	"negative-mentions/internal/domain/entity"
)

// TrendPoint is one (year, company) group of the yearly trend, sized for a
// multi-series line chart: one series per company, x = year, y = count.
type TrendPoint struct {
	Year    int    `json:"year"`
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// Trends counts mentions per (year, company) over the given records.
// Years in which a company has no mentions produce no point. The output is
// sorted by year ascending, then company ascending, so identical inputs yield
// identical JSON.
func Trends(mentions []entity.Mention) []TrendPoint {
	type group struct {
		year    int
		company string
	}

	counts := make(map[group]int)
	for _, m := range mentions {
		counts[group{year: m.Year(), company: m.Company}]++
	}

	points := make([]TrendPoint, 0, len(counts))
	for g, n := range counts {
		points = append(points, TrendPoint{Year: g.year, Company: g.company, Count: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Year != points[j].Year {
			return points[i].Year < points[j].Year
		}
		return points[i].Company < points[j].Company
	})
	return points
}
