package model

type Plan struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        float64  `json:"price"` // EUR
	DurationDays int      `json:"durationDays"`
	Features     []string `json:"features,omitempty"`
	Popular      bool     `json:"popular,omitempty"`
}

var Plans = []Plan{
	{
		ID:           "p1",
		Title:        "1 Month",
		Price:        9.99,
		DurationDays: 30,
		Features:     []string{"Full HD Quality", "24/7 Support", "All European Channels"},
	},
	{
		ID:           "p3",
		Title:        "3 Months",
		Price:        24.99,
		DurationDays: 90,
		Features:     []string{"Save 15%", "Premium Sports", "Movie Channels", "Mobile App"},
	},
	{
		ID:           "p12",
		Title:        "12 Months",
		Price:        49.99,
		DurationDays: 365,
		Features:     []string{"Best Value", "4K Quality", "Priority Support", "VIP Access"},
		Popular:      true,
	},
}

func FindPlan(id string) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var Countries = []Country{
	{"FR", "France"},
	{"DE", "Germany"},
	{"IT", "Italy"},
	{"ES", "Spain"},
	{"PT", "Portugal"},
	{"NL", "Netherlands"},
	{"BE", "Belgium"},
	{"LU", "Luxembourg"},
	{"IE", "Ireland"},
	{"AT", "Austria"},
	{"FI", "Finland"},
	{"GR", "Greece"},
	{"SK", "Slovakia"},
	{"SI", "Slovenia"},
	{"CY", "Cyprus"},
	{"MT", "Malta"},
	{"EE", "Estonia"},
	{"LV", "Latvia"},
	{"LT", "Lithuania"},
	{"GB", "United Kingdom"},
	{"CH", "Switzerland"},
	{"SE", "Sweden"},
	{"DK", "Denmark"},
	{"NO", "Norway"},
	{"PL", "Poland"},
	{"CZ", "Czech Republic"},
}

func IsKnownCountry(code string) bool {
	for _, c := range Countries {
		if c.Code == code {
			return true
		}
	}
	return false
}
