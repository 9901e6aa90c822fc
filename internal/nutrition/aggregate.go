package nutrition

// Aggregate sums meal macros. When averaging, the four macro sums are divided
// by divisor while MealCount stays the raw number of meals in the window.
func Aggregate(meals []Meal, divisor int, isAverage bool) NutritionTotals {
	totals := NutritionTotals{
		MealCount: len(meals),
		IsAverage: isAverage,
	}
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.Protein += m.Protein
		totals.Carbohydrates += m.Carbohydrates
		totals.Fats += m.Fats
	}

	if !isAverage {
		return totals
	}
	if divisor <= 0 {
		divisor = 1
	}

	d := float64(divisor)
	totals.Calories /= d
	totals.Protein /= d
	totals.Carbohydrates /= d
	totals.Fats /= d

	return totals
}
