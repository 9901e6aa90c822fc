package workoutplans

import (
	log "github.com/sirupsen/logrus"
)

// Assemble places every plan in its day slot. When two plans claim the same day
// the most recently updated one wins; on equal timestamps the later one in
// plans wins. Plans with an invalid day are skipped.
func Assemble(plans []WorkoutPlan) WeeklySchedule {
	var schedule WeeklySchedule
	for i := range plans {
		plan := plans[i]
		if !ValidDayOfWeek(plan.DayOfWeek) {
			log.Warnf("skipping plan %s with invalid day %d", plan.PlanID, plan.DayOfWeek)
			continue
		}

		current := schedule[plan.DayOfWeek]
		if current != nil {
			log.Warnf(
				"member %s has plans %s and %s on day %d",
				plan.MemberID, current.PlanID, plan.PlanID, plan.DayOfWeek,
			)
			if plan.UpdatedAt.Before(current.UpdatedAt) {
				continue
			}
		}
		schedule[plan.DayOfWeek] = &plan
	}
	return schedule
}

// Upsert applies update to the plan of update.DayOfWeek found in existing, or
// creates a new plan from meta when there is none. Only fields set in update
// change an existing plan. The returned bool reports whether a plan was created.
func Upsert(existing []WorkoutPlan, update DayPlanUpdate, meta NewPlanMeta) (WorkoutPlan, bool) {
	for _, plan := range existing {
		if plan.DayOfWeek != update.DayOfWeek {
			continue
		}

		updated := plan
		if update.DayPlan.Set {
			updated.DayPlan = update.DayPlan.Value
		}
		if update.Exercises.Set {
			updated.Exercises = renumber(update.Exercises.Value)
		} else {
			updated.Exercises = cloneExercises(plan.Exercises)
		}
		updated.UpdatedAt = meta.Now
		return updated, false
	}

	return WorkoutPlan{
		PlanID:    meta.PlanID,
		MemberID:  meta.MemberID,
		GymID:     meta.GymID,
		DayOfWeek: update.DayOfWeek,
		DayName:   update.DayName,
		DayPlan:   update.DayPlan.Or(""),
		Exercises: renumber(update.Exercises.Or(nil)),
		CreatedBy: meta.CreatedBy,
		CreatedAt: meta.Now,
		UpdatedAt: meta.Now,
	}, true
}
