package learning

const AllCategories = "All"

type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

var Categories = []string{AllCategories, "Education", "Core", "Awareness", "Growth", "Media"}

var Modules = []Module{
	{ID: "sex-ed", Title: "Reproductive Health Education", Category: "Education", Description: "Anatomy, consent, respect, and safe practices.", Progress: 20},
	{ID: "consent", Title: "Consent", Category: "Core", Description: "Understanding, asking, and honoring consent.", Progress: 40},
	{ID: "harassment", Title: "Harassment", Category: "Awareness", Description: "Recognize, prevent, and respond responsibly.", Progress: 10},
	{ID: "abuse", Title: "Abuse", Category: "Awareness", Description: "Legal and moral awareness to protect and support.", Progress: 0},
	{ID: "relationships", Title: "Healthy Relationships", Category: "Growth", Description: "Empathy, communication, and accountability.", Progress: 65},
	{ID: "podcasts", Title: "Podcasts & YouTube", Category: "Media", Description: "Listen with transcripts and watch trusted videos.", Progress: 0},
}

// ByCategory returns the modules in category, keeping catalog order.
func ByCategory(modules []Module, category string) []Module {
	out := []Module{}
	for _, m := range modules {
		if category == "" || category == AllCategories || m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
