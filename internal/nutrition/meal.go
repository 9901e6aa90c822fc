package nutrition

import "time"

// Meal is a logged meal. Missing macro values are read as 0.
type Meal struct {
	MealID        string    `json:"mealId"`
	OwnerID       string    `json:"ownerId"`
	Name          string    `json:"name,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fats          float64   `json:"fats"`
}

type NutritionTotals struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
	MealCount     int     `json:"mealCount"`
	IsAverage     bool    `json:"isAverage"`
}

type Summary struct {
	MemberID  string          `json:"memberId"`
	Date      string          `json:"date,omitempty"`
	Range     Range           `json:"range"`
	Window    WindowView      `json:"window"`
	MealsList []Meal          `json:"mealsList"`
	Totals    NutritionTotals `json:"totals"`
}

type WindowView struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Divisor int       `json:"divisor"`
}
