package workoutplans

// Append returns a copy of plan with exercise added at the end of the list.
// Existing entries keep their order.
//
// Append and Remove never return a nil Exercises list, so an empty plan
// encodes as "exercises": [].
func Append(plan WorkoutPlan, exercise Exercise) WorkoutPlan {
	exercises := make([]Exercise, 0, len(plan.Exercises)+1)
	exercises = append(exercises, renumber(plan.Exercises)...)
	exercise.Order = len(exercises) + 1
	plan.Exercises = append(exercises, exercise)
	return plan
}

// Remove returns a copy of plan without the exercise at order, with the rest
// renumbered 1..n in their previous sequence. A missing order is a no-op.
func Remove(plan WorkoutPlan, order int) WorkoutPlan {
	exercises := make([]Exercise, 0, len(plan.Exercises))
	for _, e := range plan.Exercises {
		if e.Order == order {
			continue
		}
		exercises = append(exercises, e)
	}
	plan.Exercises = renumber(exercises)
	return plan
}

// renumber returns a copy of exercises with order set to 1..n. Never nil.
func renumber(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		e.Order = i + 1
		out[i] = e
	}
	return out
}

func cloneExercises(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}
