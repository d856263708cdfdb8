package budget_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/predictor"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	ProvideBudgetModel,
	ProvideBudgetService,
	ProvideBudgetController)

// ProvideBudgetModel loads the trained artifact once at startup. The
// process refuses to come up without it; there is no lazy loading and no
// reload.
func ProvideBudgetModel() predictor.Model {
	path := os.Getenv("BUDGET_MODEL_PATH")
	if path == "" {
		path = "budget_model.json"
	}

	model, err := predictor.Load(path)
	if err != nil {
		log.Fatalf("Failed to load budget model from %s: %v", path, err)
	}

	log.Printf("Loaded budget model from %s with %d columns", path, len(model.Columns()))
	return model
}

func ProvideBudgetService(model predictor.Model) services.BudgetServiceInterface {
	return services.NewBudgetService(model)
}

func ProvideBudgetController(
	budgetService services.BudgetServiceInterface,
) *controllers.BudgetController {
	return controllers.NewBudgetController(budgetService)
}
