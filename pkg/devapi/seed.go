package devapi

import "github.com/amiskov/folio/pkg/post"

const (
	DemoName     = "Channing Winchester"
	DemoEmail    = "admin@folio.dev"
	DemoPassword = "admin123"
)

var seedProjects = []Project{
	{
		ID:          "1",
		Title:       "Starlight Series",
		Description: "Digital illustrations inspired by Mucha, mixing classical ornament with modern tooling.",
		Image:       "/images/project1.jpg",
		Tags:        []string{"illustration", "design", "art"},
		CreatedAt:   "2024-01-15",
		Link:        "#",
	},
	{
		ID:          "2",
		Title:       "Classical Revival",
		Description: "A modern reading of traditional art styles where history meets the future.",
		Image:       "/images/project2.jpg",
		Tags:        []string{"design", "branding", "UI/UX"},
		CreatedAt:   "2024-01-10",
		Link:        "#",
	},
	{
		ID:          "3",
		Title:       "Poetic Code",
		Description: "Algorithms turned into visual poems: generative, interactive digital art.",
		Image:       "/images/project3.jpg",
		Tags:        []string{"development", "creative coding", "interaction"},
		CreatedAt:   "2024-01-05",
		Link:        "#",
	},
}

var seedPosts = []post.Post{
	{
		ID:        "1",
		Title:     "Mucha and Art Nouveau",
		Excerpt:   "How Alphonse Mucha fused natural forms with decorative art into a world of elegant lines and soft colour.",
		Content:   "Full article text goes here.",
		Author:    DemoName,
		CreatedAt: "2024-01-20",
		Tags:      []string{"art", "design", "history"},
		Comments: []post.Comment{
			{ID: "1", Author: "Art lover", Content: "A wonderful analysis!", CreatedAt: "2024-01-21"},
		},
	},
	{
		ID:        "2",
		Title:     "Classical Aesthetics in the Digital Age",
		Excerpt:   "Respecting and reinventing traditional art forms so classical beauty lives on in modern design.",
		Content:   "Full article text goes here.",
		Author:    DemoName,
		CreatedAt: "2024-01-15",
		Tags:      []string{"design", "technology", "aesthetics"},
		Comments:  []post.Comment{},
	},
	{
		ID:        "3",
		Title:     "Colour Psychology in UI Design",
		Excerpt:   "Learning from Mucha's palettes how colour shapes mood in interfaces that are both beautiful and useful.",
		Content:   "Full article text goes here.",
		Author:    DemoName,
		CreatedAt: "2024-01-10",
		Tags:      []string{"UI/UX", "psychology", "colour"},
		Comments:  []post.Comment{},
	},
}
