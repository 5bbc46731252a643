package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"p9e.in/agrimon/handlers"
	"p9e.in/agrimon/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(auth *handlers.AuthHandler, tokens *middleware.TokenService) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", auth.Register).Methods("POST")
	r.HandleFunc("/login", auth.Login).Methods("POST")

	// =====================================================
	// Protected Routes (require bearer token)
	// =====================================================
	api := r.PathPrefix("/").Subrouter()
	api.Use(tokens.Middleware)

	api.HandleFunc("/profile", auth.Profile).Methods("GET")

	registerCRUDRoutes(api, "/users", crudHandlers{
		getAll: handlers.GetAllUsers,
		create: auth.CreateUser,
		getOne: handlers.GetUser,
		update: handlers.UpdateUser,
		delete: handlers.DeleteUser,
	})

	registerCRUDRoutes(api, "/sensors", crudHandlers{
		getAll: handlers.GetAllSensors,
		create: handlers.CreateSensor,
		getOne: handlers.GetSensor,
		update: handlers.UpdateSensor,
		delete: handlers.DeleteSensor,
	})

	// Fixed sensor-data paths must be registered before /{id}.
	api.HandleFunc("/sensor-data/by-sensor/{sensor_id:[0-9]+}", handlers.GetSensorDataBySensor).Methods("GET")
	api.HandleFunc("/sensor-data/summary", handlers.SensorDataSummary).Methods("GET")
	api.HandleFunc("/sensor-data/export", handlers.ExportSensorData).Methods("GET")
	registerCRUDRoutes(api, "/sensor-data", crudHandlers{
		getAll: handlers.GetAllSensorData,
		create: handlers.CreateSensorData,
		getOne: handlers.GetSensorData,
		update: handlers.UpdateSensorData,
		delete: handlers.DeleteSensorData,
	})

	api.HandleFunc("/irrigation/by-farm/{farm_id:[0-9]+}", handlers.GetIrrigationSystemsByFarm).Methods("GET")
	registerCRUDRoutes(api, "/irrigation", crudHandlers{
		getAll: handlers.GetAllIrrigationSystems,
		create: handlers.CreateIrrigationSystem,
		getOne: handlers.GetIrrigationSystem,
		update: handlers.UpdateIrrigationSystem,
		delete: handlers.DeleteIrrigationSystem,
	})

	registerCRUDRoutes(api, "/weather", crudHandlers{
		getAll: handlers.GetAllWeatherData,
		create: handlers.CreateWeatherData,
		getOne: handlers.GetWeatherData,
		update: handlers.UpdateWeatherData,
		delete: handlers.DeleteWeatherData,
	})

	registerCRUDRoutes(api, "/crops", crudHandlers{
		getAll: handlers.GetAllCrops,
		create: handlers.CreateCrop,
		getOne: handlers.GetCrop,
		update: handlers.UpdateCrop,
		delete: handlers.DeleteCrop,
	})

	api.HandleFunc("/fertilization/by-farm/{farm_id:[0-9]+}", handlers.GetFertilizationSystemsByFarm).Methods("GET")
	registerCRUDRoutes(api, "/fertilization", crudHandlers{
		getAll: handlers.GetAllFertilizationSystems,
		create: handlers.CreateFertilizationSystem,
		getOne: handlers.GetFertilizationSystem,
		update: handlers.UpdateFertilizationSystem,
		delete: handlers.DeleteFertilizationSystem,
	})

	api.HandleFunc("/pest-detections/by-crop/{crop_id:[0-9]+}", handlers.GetPestDetectionsByCrop).Methods("GET")
	registerCRUDRoutes(api, "/pest-detections", crudHandlers{
		getAll: handlers.GetAllPestDetections,
		create: handlers.CreatePestDetection,
		getOne: handlers.GetPestDetection,
		update: handlers.UpdatePestDetection,
		delete: handlers.DeletePestDetection,
	})

	api.HandleFunc("/transactions/by-crop/{crop_id:[0-9]+}", handlers.GetTransactionsByCrop).Methods("GET")
	registerCRUDRoutes(api, "/transactions", crudHandlers{
		getAll: handlers.GetAllTransactions,
		create: handlers.CreateTransaction,
		getOne: handlers.GetTransaction,
		update: handlers.UpdateTransaction,
		delete: handlers.DeleteTransaction,
	})

	return r
}

// crudHandlers holds handlers for a CRUD resource
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers the standard quintet for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path+"/", h.getAll).Methods("GET")
	router.HandleFunc(path+"/", h.create).Methods("POST")
	router.HandleFunc(path+"/{id:[0-9]+}", h.getOne).Methods("GET")
	router.HandleFunc(path+"/{id:[0-9]+}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id:[0-9]+}", h.delete).Methods("DELETE")
}
