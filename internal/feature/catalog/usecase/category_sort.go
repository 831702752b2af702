package usecase

import (
	"sort"
	"strings"

	"shop_backend/internal/feature/catalog/domain/entity"
)

// SortCategories orders categories for display: the one named priority
// (case-insensitive) first, then the rest alphabetically ignoring case, with
// ties broken by id. The input slice is sorted in place and returned.
func SortCategories(cats []entity.Category, priority string) []entity.Category {
	priority = strings.ToLower(strings.TrimSpace(priority))
	sort.SliceStable(cats, func(i, j int) bool {
		a, b := strings.ToLower(cats[i].Name), strings.ToLower(cats[j].Name)
		if pa, pb := priority != "" && a == priority, priority != "" && b == priority; pa != pb {
			return pa
		}
		if a != b {
			return a < b
		}
		return cats[i].ID < cats[j].ID
	})
	return cats
}
