package content

// AllCategories is the filter label that selects every project.
const AllCategories = "All"

// Categories returns "All" followed by the distinct non-empty project
// categories in first-seen order. Labels are compared exactly, so "Web"
// and "Web " are separate tabs.
func Categories(projects []Project) []string {
	categories := []string{AllCategories}
	seen := map[string]struct{}{}
	for _, project := range projects {
		category := project.Category
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}

// FilterByCategory returns the projects whose category equals label, in
// their original order. "All" and the empty label return every project.
func FilterByCategory(projects []Project, label string) []Project {
	if label == "" || label == AllCategories {
		return projects
	}
	filtered := make([]Project, 0, len(projects))
	for _, project := range projects {
		if project.Category == label {
			filtered = append(filtered, project)
		}
	}
	return filtered
}
