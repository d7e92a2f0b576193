package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vitalis-health/backend/internal/domain/exerciselog"
	"github.com/vitalis-health/backend/internal/domain/foodlog"
	"github.com/vitalis-health/backend/internal/domain/healthgoal"
	"github.com/vitalis-health/backend/internal/domain/sleeplog"
	"github.com/vitalis-health/backend/internal/domain/waterlog"
)

// RegisterValidators wires domain enum checks into gin's binding engine
// so request DTOs can use them as struct tags.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("goaltype", func(fl validator.FieldLevel) bool {
		return healthgoal.GoalType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("goalpriority", func(fl validator.FieldLevel) bool {
		return healthgoal.GoalPriority(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("drinktype", func(fl validator.FieldLevel) bool {
		return waterlog.DrinkType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("sleepquality", func(fl validator.FieldLevel) bool {
		return sleeplog.SleepQuality(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("activitytype", func(fl validator.FieldLevel) bool {
		return exerciselog.ActivityType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("mealtype", func(fl validator.FieldLevel) bool {
		return foodlog.MealType(fl.Field().String()).Valid()
	})
}
