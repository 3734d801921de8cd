package services

// NutrientProgress reports consumed versus target for one nutrient.
// Percent is omitted when the target is zero — never a division by zero.
type NutrientProgress struct {
	Current int  `json:"current"`
	Target  int  `json:"target"`
	Percent *int `json:"percent,omitempty"`
}

// CalorieProgress additionally carries the signed goal adjustment that went
// into the target.
type CalorieProgress struct {
	Current    int  `json:"current"`
	Target     int  `json:"target"`
	Adjustment int  `json:"adjustment"`
	Percent    *int `json:"percent,omitempty"`
}

type DailySummary struct {
	Calories CalorieProgress  `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Carbs    NutrientProgress `json:"carbs"`
	Fats     NutrientProgress `json:"fats"`
}

// WeeklyDay is one day of the weekly calorie view.
type WeeklyDay struct {
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	GoalMet  bool   `json:"goalMet"`
}

type WeeklyReport struct {
	Days        []WeeklyDay `json:"weeklyData"`
	CalorieGoal int         `json:"calorieGoal"`
}

// ComposeSummary merges targets and consumed totals into the display
// report. All values round to whole numbers; consumed values floor at 0.
func ComposeSummary(targets NutritionTargets, totals NutritionTotals) DailySummary {
	return DailySummary{
		Calories: CalorieProgress{
			Current:    clampRound(totals.Calories),
			Target:     targets.Calories.Target,
			Adjustment: targets.Calories.Adjustment,
			Percent:    percent(totals.Calories, targets.Calories.Target),
		},
		Protein: nutrientProgress(totals.Protein, targets.Protein.Target),
		Carbs:   nutrientProgress(totals.Carbs, targets.Carbs.Target),
		Fats:    nutrientProgress(totals.Fats, targets.Fats.Target),
	}
}

// ComposeWeekly flags each day against the calorie target. Goal met is a
// plain threshold: consumed ≥ target, no tolerance band.
func ComposeWeekly(days []DayTotals, calorieTarget int) WeeklyReport {
	report := WeeklyReport{
		Days:        make([]WeeklyDay, 0, len(days)),
		CalorieGoal: calorieTarget,
	}
	for _, d := range days {
		cals := clampRound(d.Totals.Calories)
		report.Days = append(report.Days, WeeklyDay{
			Date:     d.Date.Format("2006-01-02"),
			Calories: cals,
			GoalMet:  cals >= calorieTarget,
		})
	}
	return report
}

func nutrientProgress(current float64, target int) NutrientProgress {
	return NutrientProgress{
		Current: clampRound(current),
		Target:  target,
		Percent: percent(current, target),
	}
}

func percent(current float64, target int) *int {
	if target <= 0 {
		return nil
	}
	p := round(current / float64(target) * 100)
	return &p
}

func clampRound(v float64) int {
	if v < 0 {
		return 0
	}
	return round(v)
}
