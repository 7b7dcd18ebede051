package report

// DefaultCategoryExclude are audience labels that drown out real event
// categories in the hackathon category treemap.
var DefaultCategoryExclude = []string{
	"undergraduate",
	"engineering students",
	"postgraduate",
	"all",
	"mba students",
	"school students",
	"awards",
}

// Settings tunes the catalogue.
type Settings struct {
	// CategoryExclude is applied to hackathon categories.
	CategoryExclude []string
	// TopN bounds "top 10" style bar and pie charts.
	TopN int
	// TreemapCompanies bounds the internship company treemap.
	TreemapCompanies int
	// WordCloudWords bounds the words per word cloud.
	WordCloudWords int
	// Width and Height size each chart (CSS units).
	Width  string
	Height string
}

// DefaultSettings mirrors the original dashboard.
func DefaultSettings() Settings {
	return Settings{
		CategoryExclude:  append([]string(nil), DefaultCategoryExclude...),
		TopN:             10,
		TreemapCompanies: 15,
		WordCloudWords:   200,
	}
}

func (s Settings) topN() int {
	if s.TopN <= 0 {
		return 10
	}
	return s.TopN
}

func (s Settings) treemapCompanies() int {
	if s.TreemapCompanies <= 0 {
		return 15
	}
	return s.TreemapCompanies
}
