package content

// Recognized page sections. Content rows for anything else are never queried
// by the read path.
const (
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionContact = "contact"
	SectionFooter  = "footer"
)

// defaults is the single compiled-in catalog of page copy. Every section the
// site renders has a non-empty entry here, so a page never renders blank even
// when the content table is missing or unreachable. Each component used to
// carry its own copy of these maps; keeping one catalog stops them drifting
// apart.
var defaults = map[string]map[string]string{
	SectionHero: {
		"greeting":       "Available for new projects",
		"name":           "Valentin Kosev",
		"tagline":        "I turn wild ideas into visual stories that make people stop scrolling",
		"description":    "Creative director & graphic designer in Sofia, Bulgaria. Specializing in brands that dare to be different.",
		"cta_primary":    "See My Work",
		"cta_secondary":  "Let's Create Magic",
		"stats_projects": "50+",
		"stats_years":    "5+",
		"stats_clients":  "3000",
	},
	SectionAbout: {
		"title":       "Behind The Creative Mind",
		"subtitle":    "I'm not just a designer, I'm a visual problem solver who believes great design can change the world, one project at a time.",
		"story_title": "From Dreamer to Creative Director",
		"story_p1":    "My journey started with a simple belief: design should make people feel something. Whether it's excitement, trust, or pure joy, every pixel should have a purpose.",
		"story_p2":    "Based in the vibrant city of Sofia, Bulgaria, I've had the privilege of working with incredible clients who aren't afraid to think different and be bold.",
		"story_p3":    "When I'm not crafting visual stories, you'll find me exploring new design trends and constantly asking \"What if we tried this instead?\"",
		"image_url":   "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=600",
	},
	SectionContact: {
		"title":         "Ready To Create Something Amazing?",
		"subtitle":      "I'm always excited to work on new projects and collaborate with creative minds. Let's turn your vision into reality.",
		"email":         "hello@vkdesigns.studio",
		"phone":         "+359 88 123 4567",
		"location":      "Sofia, Bulgaria",
		"instagram":     "@vk.designs",
		"instagram_url": "https://www.instagram.com/vk.designs",
	},
	SectionFooter: {
		"description": "Creating meaningful visual experiences that connect brands with their audiences. Based in Sofia, Bulgaria, working with clients worldwide.",
		"copyright":   "VK Designs. All rights reserved.",
		"email":       "hello@vkdesigns.studio",
		"phone":       "+359 88 123 4567",
		"instagram_url": "https://www.instagram.com/vk.designs",
	},
}

// Defaults returns a copy of the compiled-in mapping for a section. Unknown
// sections yield an empty, non-nil map.
func Defaults(section string) map[string]string {
	out := make(map[string]string)
	for key, value := range defaults[section] {
		out[key] = value
	}
	return out
}

// Sections lists the recognized sections in page order.
func Sections() []string {
	return []string{SectionHero, SectionAbout, SectionContact, SectionFooter}
}

// Recognized reports whether section has a compiled-in catalog entry.
func Recognized(section string) bool {
	_, ok := defaults[section]
	return ok
}
