package studio

// DefaultPages are created on first use so the site is never empty
var DefaultPages = []PageInput{
	{
		Slug:      "home",
		MenuLabel: "Home",
		Title:     "Welcome to Our Pilates Studio",
		Content:   "Build strength, flexibility, and focus with professional pilates classes for all levels.",
		SortOrder: 1,
		IsActive:  true,
	},
	{
		Slug:      "about",
		MenuLabel: "About",
		Title:     "About Our Studio",
		Content:   "We are passionate about helping members move better and feel better every day.",
		SortOrder: 2,
		IsActive:  true,
	},
	{
		Slug:      "classes",
		MenuLabel: "Classes",
		Title:     "Classes",
		Content:   "Explore mat pilates, reformer sessions, private coaching, and group programs.",
		SortOrder: 3,
		IsActive:  true,
	},
	{
		Slug:      "schedule",
		MenuLabel: "Schedule",
		Title:     "Class Schedule",
		Content:   "Morning and evening slots are available throughout the week.",
		SortOrder: 4,
		IsActive:  true,
	},
	{
		Slug:      "pricing",
		MenuLabel: "Pricing",
		Title:     "Membership Pricing",
		Content:   "Choose a package that suits your goals with flexible monthly plans.",
		SortOrder: 5,
		IsActive:  true,
	},
	{
		Slug:      "trainers",
		MenuLabel: "Trainers",
		Title:     "Meet Our Trainers",
		Content:   "Certified instructors ready to guide your journey safely and effectively.",
		SortOrder: 6,
		IsActive:  true,
	},
	{
		Slug:      "testimonials",
		MenuLabel: "Testimonials",
		Title:     "What Members Say",
		Content:   "Real stories from members who transformed their posture and confidence.",
		SortOrder: 7,
		IsActive:  true,
	},
	{
		Slug:      "contact",
		MenuLabel: "Contact",
		Title:     "Contact Us",
		Content:   "Reach out via phone, WhatsApp, or visit our studio for a free consultation.",
		SortOrder: 8,
		IsActive:  true,
	},
}
