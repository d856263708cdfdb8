package itinerary_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/api/controllers"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryService,
	ProvideItineraryController)

func ProvideItineraryService(
	completion utils.CompletionClientInterface,
	usageRepo repositories.UsageRepositoryInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(completion, usageRepo)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
